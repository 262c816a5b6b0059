package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasker/internal/tracker"
)

// DeleteCmd implements the tasker delete command.
type DeleteCmd struct {
	flags *Flags
	app   *tracker.App
}

// NewDeleteCmd creates a new delete command.
func NewDeleteCmd(flags *Flags, app *tracker.App) *DeleteCmd {
	return &DeleteCmd{flags: flags, app: app}
}

// Register adds the delete command to the application.
func (cmd *DeleteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a task permanently",
		UsageText: "tasker delete <id>",
		Description: `Removes a task. Its id is never reused.

Examples:
  tasker delete 3`,
		Action: cmd.run,
	})

	return app
}

func (cmd *DeleteCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: tasker delete <id>")
	}

	id, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid task id %q", c.Args().Get(0))
	}

	if err := cmd.app.Tasks.Delete(ctx, id); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "deleted task %d\n", id)
	return nil
}
