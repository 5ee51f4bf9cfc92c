package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/scrapline/claimd/pkg/catalog"
	"github.com/scrapline/claimd/pkg/claims"
	"github.com/scrapline/claimd/pkg/events"
	"github.com/scrapline/claimd/pkg/httpserver"
	"github.com/scrapline/claimd/pkg/logging"
	"github.com/scrapline/claimd/pkg/players"
	"github.com/scrapline/claimd/pkg/settlement"
	"github.com/scrapline/claimd/pkg/status"
)

var (
	version     = "dev" // Will be set during build
	cfgFile     string
	showVersion bool
)

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

var rootCmd = &cobra.Command{
	Use:           "claimd",
	Short:         "Wasteland claim engine",
	SilenceUsage:  false,
	SilenceErrors: true,
	Long: `Wasteland claim engine (claimd) - location-gated survival rewards over HTTP

The daemon serves the claim/craft/equip loop for wallet-keyed players:
geofenced location claims with cooldowns, weighted loot, random encounters,
crafting, equipment and leveling, with rewards settled against an external
chain service (or simulated).

Configuration file must be in JSON format with the following structure:
{
    "listen_addr": "0.0.0.0",
    "port": 8080,
    "catalog_path": "data/catalog.yaml",
    "database_path": "data/players.db",
    "cooldown_seconds": 300,
    "settle_timeout_seconds": 5,
    "chain_url": "http://localhost:9090",
    "simulate_chain": true,
    "ops_log_path": "log/claimd-ops.log",
    "app_log_path": "log/claimd.log",
    "log_level": "info",
    "status_dir": "status",
    "status_interval_seconds": 60
}

Every value can be overridden with a CLAIMD_* environment variable; a .env
file next to the working directory is honored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("Wasteland claim engine %s\n", version)
			return nil
		}

		if cfgFile == "" {
			return fmt.Errorf("config file is required (use --config)")
		}

		// Pick up a .env file before config parsing so env overrides see it
		_ = godotenv.Load()

		// Convert to absolute path if needed
		if !filepath.IsAbs(cfgFile) {
			var err error
			cfgFile, err = filepath.Abs(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to get absolute path: %v", err)
			}
		}

		var config Config
		if err := LoadConfig(cfgFile, &config); err != nil {
			return fmt.Errorf("failed to load config: %v", err)
		}

		if err := logging.Initialize(config.OpsLogPath, config.AppLogPath, logging.LogLevel(config.LogLevel)); err != nil {
			return fmt.Errorf("failed to initialize logging: %v", err)
		}

		// Static game content
		content, err := catalog.LoadFile(afero.NewOsFs(), config.CatalogPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %v", err)
		}

		// Player store
		var source players.Source
		if config.DatabasePath != "" {
			sqliteSource, err := players.NewSQLiteSource(config.DatabasePath)
			if err != nil {
				return fmt.Errorf("failed to open player database: %v", err)
			}
			defer sqliteSource.Close()
			source = sqliteSource
		} else {
			logging.App.Warn("No database_path configured, player records are in-memory only")
			source = players.NewMemorySource()
		}
		repo := players.NewRepository(source)

		// Settlement collaborators
		var minter settlement.Minter
		var tokens settlement.TokenMinter
		if config.SimulateChain {
			sim := settlement.NewSimulatedMinter()
			minter, tokens = sim, sim
		} else {
			chain := settlement.NewChainMinter(config.ChainURL, time.Duration(config.SettleTimeoutSeconds)*time.Second)
			minter, tokens = chain, chain
		}

		orch := claims.New(repo, content, minter, tokens, claims.Config{
			Cooldown:      time.Duration(config.CooldownSeconds) * time.Second,
			SettleTimeout: time.Duration(config.SettleTimeoutSeconds) * time.Second,
		})

		server := httpserver.New(&httpserver.Config{
			ListenAddr: config.ListenAddr,
			Port:       config.Port,
		}, orch, repo, events.NewSchedule())

		// Status files for external supervisors
		var statusWriter *status.Writer
		if config.StatusDir != "" {
			statusWriter, err = status.New(config.StatusDir, time.Duration(config.StatusIntervalSeconds)*time.Second, version)
			if err != nil {
				return fmt.Errorf("failed to create status writer: %v", err)
			}
			statusWriter.SetMetricsProvider(server)
			if err := statusWriter.WriteStartFile(); err != nil {
				logging.App.Error("Failed to write start file", "error", err)
			}
			statusWriter.StartHeartbeat()
		}

		logging.App.Info("Starting claim engine",
			"version", version,
			"addr", config.ListenAddr, "port", config.Port,
			"locations", len(content.Locations()),
			"simulate_chain", config.SimulateChain)
		fmt.Printf("Starting wasteland claim engine %s on %s:%d\n", version, config.ListenAddr, config.Port)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		stopReason := "server_error"
		select {
		case sig := <-sigCh:
			stopReason = "signal_" + sig.String()
			logging.App.Info("Shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logging.App.Error("Graceful shutdown failed", "error", err)
			}
			<-errCh
			err = nil
		case err = <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				err = nil
			}
		}

		if statusWriter != nil {
			statusWriter.Stop()
			if werr := statusWriter.WriteStopFile(stopReason, time.Since(server.StartTime())); werr != nil {
				logging.App.Error("Failed to write stop file", "error", werr)
			}
		}
		return err
	},
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "path to config file (required)")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "show version information")
}
