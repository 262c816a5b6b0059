package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasker/internal/core/task"
	"github.com/colonyops/tasker/internal/tracker"
)

// MarkCmd implements the tasker mark-in-progress and mark-done commands.
type MarkCmd struct {
	flags *Flags
	app   *tracker.App
}

// NewMarkCmd creates a new mark command.
func NewMarkCmd(flags *Flags, app *tracker.App) *MarkCmd {
	return &MarkCmd{flags: flags, app: app}
}

// Register adds the mark commands to the application.
func (cmd *MarkCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "mark-in-progress",
			Usage:     "Mark a task as in progress",
			UsageText: "tasker mark-in-progress <id>",
			Action: func(ctx context.Context, c *cli.Command) error {
				return cmd.run(ctx, c, cmd.app.Tasks.MarkInProgress)
			},
		},
		&cli.Command{
			Name:      "mark-done",
			Usage:     "Mark a task as done",
			UsageText: "tasker mark-done <id>",
			Action: func(ctx context.Context, c *cli.Command) error {
				return cmd.run(ctx, c, cmd.app.Tasks.MarkDone)
			},
		},
	)

	return app
}

func (cmd *MarkCmd) run(ctx context.Context, c *cli.Command, mark func(context.Context, int) (task.Task, error)) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: tasker %s <id>", c.Name)
	}

	id, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid task id %q", c.Args().Get(0))
	}

	t, err := mark(ctx, id)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "marked task %d as %s\n", t.ID, t.Status)
	return nil
}
