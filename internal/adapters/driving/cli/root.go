package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docket-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/docket-cli/internal/adapters/driven/config"
	"github.com/custodia-labs/docket-cli/internal/adapters/driven/delivery"
	"github.com/custodia-labs/docket-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docket-cli/internal/connectors/teamdocs"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docket-cli/internal/core/services"
	"github.com/custodia-labs/docket-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by commands. Tests replace these with mocks; when nil,
// commands build them from the loaded config.
var (
	exporter   driving.Exporter
	runHistory driving.RunHistory
)

// Loaded configuration shared by commands.
var (
	cfg     *config.Config
	cfgPath string
)

// Persistent flags.
var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docket",
	Short: "Export document catalogues to CSV reports",
	Long: `Docket exports a team's document catalogue from the content API into a
CSV report and delivers it to the configured destination.

Configure credentials with 'docket auth set', then run 'docket export'.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return loadConfig()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&flagConfig, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(
		&flagVerbose, "verbose", "v", false, "Enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the config path and loads the configuration.
// A missing config file is not an error; defaults apply until
// 'docket auth set' fills in credentials.
func loadConfig() error {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	cfg = loaded
	cfgPath = path
	return nil
}

// ensureExporter builds the export pipeline from the loaded config.
// The returned cleanup closes the run ledger.
func ensureExporter() (func(), error) {
	if exporter != nil {
		return func() {}, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tokens := auth.NewClientCredentialsProvider(
		cfg.Auth.TokenURL, cfg.Auth.ClientID, cfg.Auth.ClientSecret)
	source := teamdocs.NewSource(sourceConfig(), tokens)

	dialer, err := sinkDialer()
	if err != nil {
		return nil, err
	}
	sink := delivery.NewRetrier(dialer)

	runs, cleanup := openRunLedger()
	assembler := services.NewAssembler(cfg.Export.FilePrefix)
	exporter = services.NewExportService(source, sink, runs, assembler, cfg.Delivery.Backend)
	return cleanup, nil
}

// ensureRunHistory builds the run history service from the loaded config.
// The returned cleanup closes the run ledger.
func ensureRunHistory() (func(), error) {
	if runHistory != nil {
		return func() {}, nil
	}

	runs, cleanup := openRunLedger()
	runHistory = services.NewHistoryService(runs)
	return cleanup, nil
}

// sourceConfig maps the API section of the config onto the connector.
func sourceConfig() *teamdocs.Config {
	sc := teamdocs.NewConfig(cfg.API.BaseURL)
	if cfg.API.PageSize > 0 {
		sc.PageSize = cfg.API.PageSize
	}
	if cfg.API.Concurrency > 0 {
		sc.MaxInFlight = cfg.API.Concurrency
	}
	if cfg.API.RequestsPerSecond > 0 {
		sc.RequestsPerSecond = cfg.API.RequestsPerSecond
	}
	return sc
}

// sinkDialer selects the delivery backend from the config.
func sinkDialer() (driven.SinkDialer, error) {
	switch cfg.Delivery.Backend {
	case "dropbox":
		return delivery.NewDropboxDialer(cfg.Delivery.DropboxToken, cfg.Delivery.DropboxFolder), nil
	case "local":
		return delivery.NewLocalDialer(cfg.Delivery.LocalDir), nil
	default:
		return nil, fmt.Errorf("unknown delivery backend %q", cfg.Delivery.Backend)
	}
}

// openRunLedger opens the run store. The ledger is best-effort: on failure
// the export still runs, just unrecorded.
func openRunLedger() (driven.RunStore, func()) {
	store, err := sqlite.NewStore(cfg.Storage.DataDir)
	if err != nil {
		logger.Warn("Run ledger unavailable: %v", err)
		return nil, func() {}
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close run ledger: %v", err)
		}
	}
	return store.RunStore(), cleanup
}
