// Command simulate runs a single instance of the quorum identifier
// claim protocol simulator and reports whether it validated cleanly.
//
// This is a thin harness around the simulator library, not part of the
// protocol's correctness surface: its own flag parsing and formatted
// output are not exercised by the property tests.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/quorumgen/idgen/config"
	"github.com/quorumgen/idgen/metrics"
	"github.com/quorumgen/idgen/simulator"
)

func main() {
	clients := flag.Int("clients", config.Default.NumClients, "number of clients")
	servers := flag.Int("servers", config.Default.NumServers, "number of coordination servers")
	ids := flag.Int("ids", config.Default.NumIDsPerClient, "identifiers each client must claim")
	seed := flag.Uint64("seed", config.Default.NetworkSeed, "network delay seed")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	flag.Parse()

	log := buildLogger(*verbose)
	defer func() { _ = log.Sync() }()

	cfg, err := config.NewBuilder().
		Clients(*clients).Servers(*servers).IDsPerClient(*ids).Seed(*seed).Build()
	if err != nil {
		log.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		log.Error("failed to register metrics", zap.Error(err))
		os.Exit(1)
	}

	sim, err := simulator.New(cfg, simulator.WithLogger(log), simulator.WithMetrics(m))
	if err != nil {
		log.Error("failed to construct simulator", zap.Error(err))
		os.Exit(1)
	}

	log.Info("starting run",
		zap.Int("clients", cfg.NumClients),
		zap.Int("servers", cfg.NumServers),
		zap.Int("ids_per_client", cfg.NumIDsPerClient),
		zap.Uint64("seed", cfg.NetworkSeed),
	)

	if err := sim.Run(context.Background()); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(1)
	}

	if err := sim.ValidateRun(); err != nil {
		log.Error("validation failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("ok: %d clients claimed %d ids each in %d logical ticks\n",
		cfg.NumClients, cfg.NumIDsPerClient, sim.Time())
}

func buildLogger(verbose bool) *zap.Logger {
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return log
	}
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return log
}
