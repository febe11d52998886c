// Package main provides the entry point for serverstat.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quakeworld/serverstat"
	"github.com/quakeworld/serverstat/internal/config"
	"github.com/quakeworld/serverstat/internal/monitor"
)

var (
	configPath string
	timeout    time.Duration
	jsonOutput bool
	watch      bool
	interval   time.Duration
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "serverstat [flags] ADDRESS...",
	Short: "Query QuakeWorld servers for their live status",
	Long: "Queries QuakeWorld game servers, QTV relays and QWFWD proxies over " +
		"their out-of-band UDP protocol and prints players, spectators, teams " +
		"and stream info.",
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to optional configuration file")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "Per-query timeout (default 1s)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of tables")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Poll the servers periodically and re-render")
	rootCmd.Flags().DurationVarP(&interval, "interval", "i", 0, "Poll interval in watch mode (default 30s)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (default warning)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	addresses := append(append([]string{}, cfg.Servers...), args...)
	if len(addresses) == 0 {
		return fmt.Errorf("no server addresses given (arguments or config servers list)")
	}

	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}

	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	client := serverstat.NewClient(log, serverstat.Options{
		Timeout: cfg.Query.Timeout,
	})

	if watch {
		return runWatch(cmd, log, client, cfg, addresses)
	}

	return runOnce(cmd, client, cfg, addresses)
}

// loadConfig merges the optional config file with flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Query.Timeout = timeout
	}

	if cmd.Flags().Changed("interval") {
		cfg.Output.Interval = interval
	}

	if jsonOutput {
		cfg.Output.JSON = true
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// runOnce queries every address once and renders the results.
func runOnce(cmd *cobra.Command, client *serverstat.Client, cfg *config.Config, addresses []string) error {
	results := client.ServerInfoMany(cmd.Context(), addresses)

	failures := 0

	for _, result := range results {
		if result.Err != nil {
			failures++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", result.Address, result.Err)
			continue
		}

		if err := render(cmd, result.Server, cfg.Output.JSON); err != nil {
			return err
		}
	}

	if failures == len(results) {
		return fmt.Errorf("all %d queries failed", failures)
	}

	return nil
}

// runWatch polls the addresses until interrupted.
func runWatch(cmd *cobra.Command, log logrus.FieldLogger, client *serverstat.Client, cfg *config.Config, addresses []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info("Received shutdown signal")
		cancel()
	}()

	var renderMu sync.Mutex

	svc := monitor.NewService(log, monitor.Config{
		Addresses: addresses,
		Interval:  cfg.Output.Interval,
	}, client, func(address string, server *serverstat.QuakeServer, err error) {
		renderMu.Lock()
		defer renderMu.Unlock()

		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", address, err)
			return
		}

		if renderErr := render(cmd, server, cfg.Output.JSON); renderErr != nil {
			log.WithError(renderErr).Warn("Render failed")
		}
	})

	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start monitor: %w", err)
	}

	<-ctx.Done()

	if err := svc.Stop(); err != nil {
		log.WithError(err).Warn("Error stopping monitor")
	}

	return nil
}

// render prints one server in the selected output format.
func render(cmd *cobra.Command, server *serverstat.QuakeServer, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, server)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderServer(server))

	return nil
}
