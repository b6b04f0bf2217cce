package cli

import (
	"os"
	"strings"

	"tasknav/internal/store"
	"tasknav/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "tasknav",
		Short:        "Checklist search for a markdown note vault (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the interactive search overlay over the current vault
  tasknav

  # Scriptable commands
  tasknav tasks list --query milk
  tasknav tasks list --completed --format edn
  tasknav tasks toggle notes/today.md 12
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive overlay.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TASKNAV_DIR", ""), "Vault directory (default: discovered from the working directory)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TASKNAV_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newTasksCmd(app))
	return cmd
}

func (app *App) resolveStore() (store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
	}
	return store.Store{Dir: dir}, nil
}

func runTUI(app *App) error {
	st, err := app.resolveStore()
	if err != nil {
		return err
	}
	return tui.Run(st)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
