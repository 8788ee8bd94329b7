package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"sourdough-tracker/internal/config"
	"sourdough-tracker/internal/logging"
	"sourdough-tracker/internal/repository/configfile"
	"sourdough-tracker/internal/repository/tracker"
	"sourdough-tracker/internal/services"
)

// DefaultRatio is used by init when --ratio is not given
const DefaultRatio = "1:2:2"

// ServiceFactory builds the starter service once settings are resolved
type ServiceFactory func(settings *config.Config, logger *slog.Logger) services.StarterService

// DefaultServiceFactory wires the JSON config file and the log backend chosen by file extension
func DefaultServiceFactory(settings *config.Config, logger *slog.Logger) services.StarterService {
	return services.NewStarterService(configfile.New(), tracker.StoreFor(settings.LogPath()), settings, logger)
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	newService ServiceFactory
	app        *App
	diagLog    *logging.DiagnosticLog
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(newService ServiceFactory) *RootCommand {
	root := &RootCommand{
		newService: newService,
	}

	root.cmd = &cobra.Command{
		Use:   "sourdough",
		Short: "Track sourdough starter feedings",
		Long: `sourdough keeps a log of starter feedings and works out how much to discard and feed.

EXAMPLES:
  sourdough init --jar-weight 500 --keep-target 100 --ratio 1:2:2
  sourdough feed --weight 650 --smell yeasty --peak-hours 6
  sourdough stats --limit 10

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    SOURDOUGH_DIR                          Data directory (default: .)
    SOURDOUGH_CONFIG_FILE                  Starter config file (default: config.json)
    SOURDOUGH_LOG_FILE                     Feeding log, .xlsx or .db (default: starter_log.xlsx)
    SOURDOUGH_DIAG_LOG                     Diagnostic log (default: sourdough.log)
    SOURDOUGH_STATS_LIMIT                  Rows shown by stats (default: 5)
    SOURDOUGH_DEBUG                        Debug level diagnostics (default: off)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Close releases the diagnostic log
func (r *RootCommand) Close() error {
	if r.diagLog == nil {
		return nil
	}
	return r.diagLog.Close()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("dir", "", "Data directory (overrides SOURDOUGH_DIR)")
	flags.String("config-file", "", "Starter config file (overrides SOURDOUGH_CONFIG_FILE)")
	flags.String("log-file", "", "Feeding log file (overrides SOURDOUGH_LOG_FILE)")
	flags.String("diag-log", "", "Diagnostic log file (overrides SOURDOUGH_DIAG_LOG)")
	flags.Bool("debug", false, "Write debug records to the diagnostic log (overrides SOURDOUGH_DEBUG)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var initOpts InitOptions
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Save starter settings and create the feeding log",
		Long: `Save the empty jar weight, the amount of starter to keep and the feeding ratio,
then create the feeding log. An existing log is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewInitCommand(r.app).Execute(cmd.Context(), initOpts)
		},
	}
	initCmd.Flags().IntVar(&initOpts.JarWeight, "jar-weight", 0, "Weight of the empty jar in grams")
	initCmd.Flags().IntVar(&initOpts.KeepTarget, "keep-target", 0, "Grams of starter to keep after discarding")
	initCmd.Flags().StringVar(&initOpts.Ratio, "ratio", DefaultRatio, "Feeding ratio as starter:flour:water")
	_ = initCmd.MarkFlagRequired("jar-weight")
	_ = initCmd.MarkFlagRequired("keep-target")

	var feedOpts FeedOptions
	var peakHours int
	feedCmd := &cobra.Command{
		Use:   "feed",
		Short: "Work out a feeding and log it",
		Long: `Weigh the jar with starter in it and pass the total. feed prints the weight to
discard down to and how much flour and water to add, then appends the feeding to the log.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := feedOpts
			if cmd.Flags().Changed("peak-hours") {
				opts.PeakHours = &peakHours
			}
			return NewFeedCommand(r.app).Execute(cmd.Context(), opts)
		},
	}
	feedCmd.Flags().IntVar(&feedOpts.Weight, "weight", 0, "Total weight of jar and starter in grams")
	feedCmd.Flags().StringVar(&feedOpts.Smell, "smell", "", "How the starter smells")
	feedCmd.Flags().IntVar(&peakHours, "peak-hours", 0, "Hours the last feeding took to peak")
	feedCmd.Flags().StringVar(&feedOpts.Notes, "notes", "", "Free-form notes")
	_ = feedCmd.MarkFlagRequired("weight")

	var limit int
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the most recent feedings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := r.app.settings.Stats.DefaultLimit
			if cmd.Flags().Changed("limit") {
				n = limit
			}
			return NewStatsCommand(r.app).Execute(cmd.Context(), n)
		},
	}
	statsCmd.Flags().IntVar(&limit, "limit", 0, fmt.Sprintf("Number of feedings to show (default: SOURDOUGH_STATS_LIMIT, else %d)",
		config.NewConfig().Stats.DefaultLimit))

	r.cmd.AddCommand(initCmd, feedCmd, statsCmd)
}

// setup resolves settings, opens the diagnostic log and builds the App
func (r *RootCommand) setup(cmd *cobra.Command) error {
	settings, err := config.NewLoader().LoadWithOverrides(r.overridesFromFlags())
	if err != nil {
		return err
	}

	printer := NewPrinter(cmd.OutOrStdout(), IsTerminal(cmd.OutOrStdout())).WithStderr(cmd.ErrOrStderr())

	logger := logging.Discard()
	if diag, err := logging.OpenDiagnosticLog(settings.DiagLogPath(), settings.Debug); err != nil {
		printer.Warn("could not open diagnostic log %s, continuing without it", settings.DiagLogPath())
		logging.Debugf("diagnostic log: %v\n", err)
	} else {
		_ = r.Close()
		r.diagLog = diag
		logger = diag.Logger
	}

	logger.Debug("running command", "command", cmd.Name(),
		"dir", settings.Paths.Dir, "config", settings.ConfigPath(), "log", settings.LogPath())

	r.app = NewApp(r.newService(settings, logger), settings, printer, logger)
	return nil
}

// overridesFromFlags collects the persistent flags the user actually set
func (r *RootCommand) overridesFromFlags() *config.Overrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.Overrides{}

	if flags.Changed("dir") {
		v, _ := flags.GetString("dir")
		overrides.Dir = &v
	}
	if flags.Changed("config-file") {
		v, _ := flags.GetString("config-file")
		overrides.ConfigFile = &v
	}
	if flags.Changed("log-file") {
		v, _ := flags.GetString("log-file")
		overrides.LogFile = &v
	}
	if flags.Changed("diag-log") {
		v, _ := flags.GetString("diag-log")
		overrides.DiagLog = &v
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		overrides.Debug = &v
	}

	return overrides
}
