package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasker/internal/tracker"
)

// AddCmd implements the tasker add command.
type AddCmd struct {
	flags *Flags
	app   *tracker.App

	due string
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags, app *tracker.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a new task",
		UsageText: `tasker add "<description>" [--due <expr>]`,
		Description: `Creates a task with status todo.

The due date accepts relative expressions (+3d, +2w, +1m) and absolute
dates (YYYY-MM-DD, YYYY/MM/DD, or YYYY-MM-DD HH:MM).

Examples:
  tasker add "Buy groceries"
  tasker add "Write report" --due +1w
  tasker add "File taxes" --due 2026-04-15`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "due",
				Aliases:     []string{"d"},
				Usage:       "due date expression",
				Destination: &cmd.due,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf(`usage: tasker add "<description>" [--due <expr>]`)
	}

	t, err := cmd.app.Tasks.Add(ctx, c.Args().Get(0), cmd.due)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "added task %d\n", t.ID)
	return nil
}
