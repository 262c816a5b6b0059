package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasker/internal/core/task"
	"github.com/colonyops/tasker/internal/tracker"
	"github.com/colonyops/tasker/pkg/iojson"
)

const displayTime = "2006-01-02 15:04"

// ListCmd implements the tasker list command.
type ListCmd struct {
	flags *Flags
	app   *tracker.App

	status     string
	sortBy     string
	jsonOutput bool
}

// NewListCmd creates a new list command.
func NewListCmd(flags *Flags, app *tracker.App) *ListCmd {
	return &ListCmd{flags: flags, app: app}
}

// Register adds the list command to the application.
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List tasks",
		UsageText: "tasker list [--status <status>] [--sort <mode>] [--json]",
		Description: `Displays a table of tasks. Overdue tasks carry a * in the DUE column.

Sort modes: due (default), created, updated, status, id.

Use --json for machine-readable output as JSON lines.

Examples:
  tasker list
  tasker list --status todo
  tasker list --sort status
  tasker list --status done --json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "filter by status (todo, in-progress, done)",
				Destination: &cmd.status,
			},
			&cli.StringFlag{
				Name:        "sort",
				Usage:       "sort mode (due, created, updated, status, id)",
				Destination: &cmd.sortBy,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	sortBy := cmd.sortBy
	if sortBy == "" {
		sortBy = cmd.flags.Config.DefaultSort
	}

	rows, err := cmd.app.Tasks.List(ctx, task.ListFilter{
		Status: task.Status(cmd.status),
		Sort:   task.SortMode(sortBy),
	})
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, row := range rows {
			if err := iojson.WriteLine(out, row); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil
	}

	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "No tasks found\n")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tDESCRIPTION\tSTATUS\tDUE\tCREATED\tUPDATED")

	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			row.ID,
			row.Description,
			row.Status,
			formatDue(row),
			row.CreatedAt.Format(displayTime),
			row.UpdatedAt.Format(displayTime),
		)
	}

	return w.Flush()
}

// formatDue renders the due column: "-" when no deadline is set, and a
// trailing * marker when the task is overdue.
func formatDue(row task.Row) string {
	if row.DueDate == nil {
		return "-"
	}

	due := row.DueDate.Format(displayTime)
	if row.Overdue {
		due += " *"
	}
	return due
}
