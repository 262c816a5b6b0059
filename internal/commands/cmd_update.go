package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasker/internal/tracker"
)

// UpdateCmd implements the tasker update command.
type UpdateCmd struct {
	flags *Flags
	app   *tracker.App

	description string
	due         string
}

// NewUpdateCmd creates a new update command.
func NewUpdateCmd(flags *Flags, app *tracker.App) *UpdateCmd {
	return &UpdateCmd{flags: flags, app: app}
}

// Register adds the update command to the application.
func (cmd *UpdateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "update",
		Usage:     "Update a task's description or due date",
		UsageText: "tasker update <id> [--description <text>] [--due <expr>]",
		Description: `Updates the given fields and leaves the rest unchanged.

Passing --due with an empty string clears the due date; omitting the
flag preserves it.

Examples:
  tasker update 3 --description "Buy groceries and cook dinner"
  tasker update 3 --due +2d
  tasker update 3 --due ""`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"m"},
				Usage:       "new task description",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "due",
				Aliases:     []string{"d"},
				Usage:       "new due date expression (empty clears it)",
				Destination: &cmd.due,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *UpdateCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: tasker update <id> [--description <text>] [--due <expr>]")
	}

	id, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid task id %q", c.Args().Get(0))
	}

	// Omitted flags mean "leave unchanged", so only set flags are
	// forwarded. --due "" deliberately clears the due date.
	var description, due *string
	if c.IsSet("description") {
		description = &cmd.description
	}
	if c.IsSet("due") {
		due = &cmd.due
	}

	if description == nil && due == nil {
		return fmt.Errorf("nothing to update: pass --description or --due")
	}

	t, err := cmd.app.Tasks.Update(ctx, id, description, due)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "updated task %d\n", t.ID)
	return nil
}
