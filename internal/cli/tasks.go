package cli

import (
	"fmt"
	"strconv"
	"strings"

	"tasknav/internal/format"
	"tasknav/internal/model"
	"tasknav/internal/tasks"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Scriptable access to the vault's checklist tasks",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksToggleCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var (
		query     string
		completed bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks (one completion partition at a time)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.resolveStore()
			if err != nil {
				return err
			}
			index := tasks.NewIndex(st)
			if err := index.Rebuild(); err != nil {
				return err
			}
			if n := index.SkippedDocuments(); n > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipped %d unreadable document(s)\n", n)
			}

			var out []*model.Task
			if strings.TrimSpace(query) != "" {
				out = tasks.Filter(index.Records(), query, completed)
			} else {
				// No query: list the whole partition. (The interactive filter
				// treats an empty query as "show nothing"; a listing command
				// treats it as "no restriction".)
				for _, t := range index.Records() {
					if t.Completed == completed {
						out = append(out, t)
					}
				}
			}
			if out == nil {
				out = []*model.Task{}
			}
			return format.Write(cmd.OutOrStdout(), out, app.Format, app.PrettyJSON)
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Substring filter (case-insensitive, matches raw task text)")
	cmd.Flags().BoolVar(&completed, "completed", false, "List completed tasks instead of incomplete ones")
	return cmd
}

func newTasksToggleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <document> <line>",
		Short: "Flip the checkbox on one checklist line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.resolveStore()
			if err != nil {
				return err
			}

			line, err := strconv.Atoi(args[1])
			if err != nil || line < 1 {
				return fmt.Errorf("invalid line number %q", args[1])
			}

			doc, err := st.Resolve(args[0])
			if err != nil {
				return err
			}
			content, err := st.ReadText(doc)
			if err != nil {
				return err
			}

			var rec *model.Task
			for _, t := range tasks.Extract(doc, content) {
				if t.LineNumber == line {
					rec = t
					break
				}
			}
			if rec == nil {
				return fmt.Errorf("%s:%d is not a checklist line", doc.ID, line)
			}

			if err := tasks.ApplyCompletion(st, rec, !rec.Completed); err != nil {
				return err
			}
			return format.Write(cmd.OutOrStdout(), rec, app.Format, app.PrettyJSON)
		},
	}
	return cmd
}
