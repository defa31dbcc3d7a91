package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/sajee05/effortless-time-tracker/internal/api"
	"github.com/sajee05/effortless-time-tracker/internal/config"
	"github.com/sajee05/effortless-time-tracker/internal/server"
)

// RootCommand is the `ett` command tree. Subcommands share the App and run
// under a per-invocation timeout; serve and dashboard run unbounded because
// they live until interrupted.
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	server *server.Server
	config *config.Config
}

// NewRootCommand builds the root cobra command with all subcommands attached.
func NewRootCommand(apiInstance api.API, srv *server.Server, conf *config.Config) *RootCommand {
	root := &RootCommand{
		app:    NewApp(apiInstance, conf),
		server: srv,
		config: conf,
	}

	root.cmd = &cobra.Command{
		Use:   "ett",
		Short: "Effortless study time tracking",
		Long: `Effortless Time Tracker (ett) keeps a study log you control with a
single toggle. Bind "ett toggle" to a hotkey, watch the overlay in OBS,
and review totals, streaks and rewards whenever you like.

EXAMPLES:
  ett toggle                 # start or stop the timer
  ett status                 # what is the timer doing right now
  ett add today 45           # log 45 minutes by hand
  ett deduct today 15        # take 15 minutes back off today
  ett log --limit 10         # the ten newest sessions
  ett stats                  # totals, averages and streaks
  ett heatmap --year 2025    # a year of study at a glance
  ett export -o backup.json  # the whole log as JSON
  ett serve                  # overlay server for OBS
  ett dashboard              # full-screen dashboard

CONFIGURATION:
  Settings come from config.yaml in the data directory (default ~/.ett),
  ETT_* environment variables and the global flags below, in rising
  order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags registers the boot-time flags. Their values are applied
// while loading the configuration, before this command tree exists; they
// are declared here so cobra accepts and documents them.
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()
	flags.String("config", "", "config file to load (default: config.yaml in the data dir)")
	flags.String("db", "", "database file to use (overrides the configured one)")
}

// runTimeout is the context deadline for one-shot commands.
func (r *RootCommand) runTimeout() time.Duration {
	if r.config != nil && r.config.Timeout() > 0 {
		return r.config.Timeout()
	}
	return 30 * time.Second
}

// runCtx builds the bounded context one-shot commands execute under.
func (r *RootCommand) runCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.runTimeout())
}

// addSubcommands attaches every ett subcommand to the root.
func (r *RootCommand) addSubcommands() {
	toggleCmd := &cobra.Command{
		Use:   "toggle",
		Short: "Start or stop the timer",
		Long:  "Flip the persisted timer: start it when idle, stop and record a session when running. Stops shorter than a second are discarded.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()
			return NewToggleCommand(r.app).Execute(ctx)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the timer and today's total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()
			return NewStatusCommand(r.app).Execute(ctx)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <date> <minutes>",
		Short: "Log a manual session",
		Long:  "Record a session of the given length on a calendar day. The date is YYYY-MM-DD, today or yesterday; minutes are 1 to 1440.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()
			return NewAddCommand(r.app).Execute(ctx, args[0], args[1])
		},
	}

	deductCmd := &cobra.Command{
		Use:   "deduct <date> <minutes>",
		Short: "Remove logged time from a day",
		Long:  "Take minutes back off a day, newest session first. Removing more than the day holds empties the day.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()
			return NewDeductCommand(r.app).Execute(ctx, args[0], args[1])
		},
	}

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "List recent sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()
			limit, _ := cmd.Flags().GetInt("limit")
			return NewLogCommand(r.app).Execute(ctx, limit)
		},
	}
	logCmd.Flags().IntP("limit", "n", 20, "number of sessions to show, 0 for all")

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Adjust or rewrite a logged session",
		Long: `Change a session after the fact.

With --minutes the session grows or shrinks by that many minutes; a
session shrunk to nothing is deleted. With --start and --end the
interval is replaced outright (RFC 3339 timestamps).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()
			opts := EditOptions{}
			opts.DeltaMinutes, _ = cmd.Flags().GetInt64("minutes")
			opts.HasDelta = cmd.Flags().Changed("minutes")
			opts.Start, _ = cmd.Flags().GetString("start")
			opts.End, _ = cmd.Flags().GetString("end")
			return NewEditCommand(r.app).Execute(ctx, args[0], opts)
		},
	}
	editCmd.Flags().Int64P("minutes", "m", 0, "signed minute adjustment, e.g. -m=-15")
	editCmd.Flags().String("start", "", "new start time (RFC 3339)")
	editCmd.Flags().String("end", "", "new end time (RFC 3339)")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session from the log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()
			return NewDeleteCommand(r.app).Execute(ctx, args[0])
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals, averages and streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()
			return NewStatsCommand(r.app).Execute(ctx)
		},
	}

	heatmapCmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Draw a year of study intensity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()
			year, _ := cmd.Flags().GetInt("year")
			if year == 0 {
				year = timeNow().Year()
			}
			return NewHeatmapCommand(r.app).Execute(ctx, year)
		},
	}
	heatmapCmd.Flags().Int("year", 0, "calendar year to draw (default: current)")

	rewardsCmd := &cobra.Command{
		Use:   "rewards",
		Short: "Show coins and reward progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()
			return NewRewardsCommand(r.app).Execute(ctx)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the session log as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()
			output, _ := cmd.Flags().GetString("output")
			return NewExportCommand(r.app).Execute(ctx, output)
		},
	}
	exportCmd.Flags().StringP("output", "o", "", "file to write (default: stdout)")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON export into the log",
		Long:  "Validate and append every session from a JSON export. The existing log is backed up first; a payload with any invalid record is rejected whole.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()
			return NewImportCommand(r.app).Execute(ctx, args[0])
		},
	}

	// serve runs until interrupted; a run timeout would kill it mid-flight.
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the overlay HTTP server",
		Long:  "Serve the OBS overlay page and the JSON API until interrupted. Add the printed URL as a browser source in OBS.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewServeCommand(r.app, r.server).Execute(context.Background())
		},
	}

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the terminal dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDashboardCommand(r.app).Execute(context.Background())
		},
	}

	r.cmd.AddCommand(
		toggleCmd,
		statusCmd,
		addCmd,
		deductCmd,
		logCmd,
		editCmd,
		deleteCmd,
		statsCmd,
		heatmapCmd,
		rewardsCmd,
		exportCmd,
		importCmd,
		serveCmd,
		dashboardCmd,
	)
}
