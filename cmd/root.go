package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/armory/battlenet"
	"github.com/s0up4200/armory/config"
	"github.com/s0up4200/armory/filter"
	"github.com/s0up4200/armory/format"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *battlenet.Client
	filters *filter.Manager

	// selectedFormat is the parsed output format
	selectedFormat format.Format

	// Command flags
	outputFormat string
	verbose      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "armory",
	Short: "Query the Battle.net World of Warcraft community API",
	Long: `armory is a CLI for the Battle.net WoW community API. It fetches any
catalog resource (items, characters, guilds, realm status, ...), optionally
narrows list-shaped responses with filter expressions, and prints JSON or YAML.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: json or yaml (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// initializeApp loads the configuration and builds the Battle.net client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	logger = setupLogger(cfg.Logging)

	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFormat
	}
	if selectedFormat, err = format.ParseFormat(cfg.Output.Format); err != nil {
		return err
	}

	client, err = battlenet.NewClient(battlenet.Config{
		APIKey: cfg.BattleNet.APIKey,
		Region: battlenet.Region(cfg.BattleNet.Region),
	},
		battlenet.WithTimeout(cfg.BattleNet.Timeout),
		battlenet.WithUserAgent("armory/"+version),
		battlenet.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create Battle.net client: %w", err)
	}

	filters = filter.NewManager()
	presets := make(map[string]string, len(cfg.Filter.Presets))
	for name, preset := range cfg.Filter.Presets {
		presets[name] = preset.Expression
	}
	if err := filters.RegisterFilters(presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("region", string(client.Region())).
		Int("presets", len(presets)).
		Msg("Battle.net client ready")

	return nil
}

// writeOutput encodes v to w in the selected output format
func writeOutput(w io.Writer, v any) error {
	return format.Write(w, selectedFormat, v)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; no colour when stderr is piped
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
