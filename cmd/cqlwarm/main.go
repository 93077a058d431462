package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"

	"github.com/trigg3rX/triggerx-cql/internal/config"
	"github.com/trigg3rX/triggerx-cql/internal/server"
	"github.com/trigg3rX/triggerx-cql/internal/warmup"
	"github.com/trigg3rX/triggerx-cql/pkg/datastore"
	"github.com/trigg3rX/triggerx-cql/pkg/datastore/cache"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
)

const shutdownTimeout = 30 * time.Second

var (
	hostsFlag = &cli.StringSliceFlag{
		Name:    "hosts",
		Usage:   "ScyllaDB hosts as host:port",
		EnvVars: []string{"DATABASE_HOSTS"},
	}
	keyspaceFlag = &cli.StringFlag{
		Name:    "keyspace",
		Usage:   "keyspace the session binds to",
		EnvVars: []string{"DATABASE_KEYSPACE"},
	}
	consistencyFlag = &cli.StringFlag{
		Name:    "consistency",
		Usage:   "default consistency level",
		EnvVars: []string{"DATABASE_CONSISTENCY"},
	}
	warmupFlag = &cli.StringFlag{
		Name:    "warmup",
		Usage:   "YAML file listing the queries to prepare at start-up",
		EnvVars: []string{"WARMUP_FILE"},
	}
	parallelismFlag = &cli.IntFlag{
		Name:    "parallelism",
		Usage:   "concurrent prepares during warm-up",
		EnvVars: []string{"WARMUP_PARALLELISM"},
	}
	listenFlag = &cli.StringFlag{
		Name:    "listen",
		Usage:   "address for /metrics, /health and /cache",
		EnvVars: []string{"LISTEN_ADDR"},
	}
	devFlag = &cli.BoolFlag{
		Name:    "dev",
		Usage:   "development logging",
		EnvVars: []string{"DEV_MODE"},
	}
	envFileFlag = &cli.StringFlag{
		Name:  "env-file",
		Usage: "dotenv file loaded before the environment is read",
		Value: ".env",
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalln("Application failed. Message:", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "cqlwarm",
		Usage:       "prepared statement cache warmer",
		Description: "Connects to ScyllaDB, prepares the statements listed in a warm-up file and serves cache metrics.",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "connect, warm the cache and serve metrics until interrupted",
				Flags:  []cli.Flag{envFileFlag, hostsFlag, keyspaceFlag, consistencyFlag, warmupFlag, parallelismFlag, listenFlag, devFlag},
				Action: serve,
			},
			{
				Name:   "check",
				Usage:  "validate a warm-up file without connecting",
				Flags:  []cli.Flag{&cli.StringFlag{Name: warmupFlag.Name, Usage: warmupFlag.Usage, EnvVars: warmupFlag.EnvVars, Required: true}},
				Action: check,
			},
		},
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String(envFileFlag.Name))
	if err != nil {
		return nil, err
	}
	if c.IsSet(hostsFlag.Name) {
		cfg.SetDatabaseHosts(c.StringSlice(hostsFlag.Name))
	}
	if c.IsSet(keyspaceFlag.Name) {
		cfg.SetKeyspace(c.String(keyspaceFlag.Name))
	}
	if c.IsSet(consistencyFlag.Name) {
		cfg.SetConsistency(c.String(consistencyFlag.Name))
	}
	if c.IsSet(warmupFlag.Name) {
		cfg.SetWarmupFile(c.String(warmupFlag.Name))
	}
	if c.IsSet(parallelismFlag.Name) {
		cfg.SetWarmupParallelism(c.Int(parallelismFlag.Name))
	}
	if c.IsSet(listenFlag.Name) {
		cfg.SetListenAddr(c.String(listenFlag.Name))
	}
	if c.IsSet(devFlag.Name) {
		cfg.SetDevMode(c.Bool(devFlag.Name))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	if err := logging.InitServiceLogger(logging.LoggerConfig{
		LogDir:        cfg.GetLogDir(),
		ProcessName:   logging.WarmupProcess,
		IsDevelopment: cfg.IsDevMode(),
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err := logging.Shutdown(); err != nil {
			log.Printf("Error shutting down logger: %v", err)
		}
	}()
	logger := logging.GetServiceLogger()

	logger.Info("Starting cqlwarm...",
		"dev", cfg.IsDevMode(),
		"hosts", cfg.GetDatabaseHosts(),
		"keyspace", cfg.GetKeyspace(),
		"listen", cfg.GetListenAddr(),
	)

	var queries []warmup.Query
	if path := cfg.GetWarmupFile(); path != "" {
		if queries, err = warmup.Load(path); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc, err := datastore.NewService(cfg.ConnectionConfig(), logger, reg)
	if err != nil {
		return fmt.Errorf("failed to initialize datastore: %w", err)
	}
	defer svc.Close()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(queries) > 0 {
		report, err := warmup.Run(ctx, svc.Template(), queries, cfg.GetWarmupParallelism(), logger)
		if err != nil {
			return fmt.Errorf("warm-up interrupted: %w", err)
		}
		for _, failed := range report.Failed() {
			logger.Error("Statement could not be prepared", "query", failed.Name, "error", failed.Err)
		}
	}

	srv := server.NewServer(cfg.GetListenAddr(), svc, reg, logger)
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("Shutdown complete")
	return nil
}

func check(c *cli.Context) error {
	queries, err := warmup.Load(c.String(warmupFlag.Name))
	if err != nil {
		return err
	}

	out := c.App.Writer
	shared := warmup.SharedKeys(queries)
	fmt.Fprintf(out, "%d queries, %d distinct statements\n", len(queries), len(queries)-sharedExtra(shared))

	keys := make([]cache.Key, 0, len(shared))
	for key := range shared {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, key := range keys {
		fmt.Fprintf(out, "shared statement %q: %v\n", string(key), shared[key])
	}
	return nil
}

// sharedExtra counts the queries that reuse another query's cache entry.
func sharedExtra(shared map[cache.Key][]string) int {
	n := 0
	for _, names := range shared {
		n += len(names) - 1
	}
	return n
}
