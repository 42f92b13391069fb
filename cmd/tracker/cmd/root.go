package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradetrack/config"
	"github.com/rustyeddy/tradetrack/journal"
	"github.com/rustyeddy/tradetrack/market"
	"github.com/rustyeddy/tradetrack/pkg/id"
)

var (
	cfgFile  string
	dbPath   string
	logLevel string

	cfg     config.Config
	logger  zerolog.Logger
	runID   string
	catalog = market.DefaultCatalog()
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Price risk and reward for leveraged trades and keep the results",
	Long: `Tracker prices stop-loss, take-profit and realized exits for leveraged
positions in instrument-native units, converts them to USD, solves the
inverse question ("what price gives me $X"), and keeps every saved trade in
a local SQLite ledger for win-rate and P/L analysis.

All rates and prices are user-supplied; tracker never fetches market data.`,
	SilenceUsage:      true,
	PersistentPreRunE: initRun,
}

// Execute runs the root command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	pf.StringVar(&dbPath, "db", "", "SQLite ledger path (overrides config)")
	pf.StringVar(&logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
}

func initRun(cmd *cobra.Command, args []string) error {
	cfg = config.Default()
	if cfgFile != "" {
		loaded, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	runID = id.New()
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Str("run_id", runID).Logger()
	return nil
}

func openStore() (*journal.Store, error) {
	ttl, err := cfg.CacheTTLDuration()
	if err != nil {
		return nil, err
	}
	return journal.Open(cfg.DBPath,
		journal.WithCacheTTL(ttl),
		journal.WithLogger(logger),
	)
}
