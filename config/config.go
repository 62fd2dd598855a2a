// Package config provides typed run parameters for a simulation, a
// fluent Builder that validates them, and a small set of named presets
// for the CLI.
package config

import "fmt"

// Config captures everything Simulator.New needs to construct and run a
// simulation.
type Config struct {
	NumClients       int
	NumServers       int
	NumIDsPerClient  int
	NetworkSeed      uint64
	BudgetMultiplier int
	DelayLo, DelayHi int
}

// Default values for the knobs the distilled protocol spec fixes but a
// complete configuration layer still names explicitly.
const (
	DefaultBudgetMultiplier = 100
	DefaultDelayLo          = 1
	DefaultDelayHi          = 10
)

// Validate checks the preconditions from the library surface: every
// count must be at least 1, and the delay range must be non-empty.
func (c Config) Validate() error {
	if c.NumClients < 1 {
		return fmt.Errorf("config: NumClients must be >= 1, got %d", c.NumClients)
	}
	if c.NumServers < 1 {
		return fmt.Errorf("config: NumServers must be >= 1, got %d", c.NumServers)
	}
	if c.NumIDsPerClient < 1 {
		return fmt.Errorf("config: NumIDsPerClient must be >= 1, got %d", c.NumIDsPerClient)
	}
	if c.BudgetMultiplier < 1 {
		return fmt.Errorf("config: BudgetMultiplier must be >= 1, got %d", c.BudgetMultiplier)
	}
	if c.DelayLo >= c.DelayHi {
		return fmt.Errorf("config: DelayLo (%d) must be < DelayHi (%d)", c.DelayLo, c.DelayHi)
	}
	return nil
}

// Builder provides a fluent interface for constructing a Config,
// defaulting the ambient knobs so callers only need to name the four
// parameters the protocol itself cares about.
type Builder struct {
	cfg Config
}

// NewBuilder returns a Builder seeded with the protocol's default
// budget multiplier and delay range.
func NewBuilder() *Builder {
	return &Builder{
		cfg: Config{
			BudgetMultiplier: DefaultBudgetMultiplier,
			DelayLo:          DefaultDelayLo,
			DelayHi:          DefaultDelayHi,
		},
	}
}

// Clients sets the number of clients in the run.
func (b *Builder) Clients(n int) *Builder { b.cfg.NumClients = n; return b }

// Servers sets the number of coordination servers in the run.
func (b *Builder) Servers(n int) *Builder { b.cfg.NumServers = n; return b }

// IDsPerClient sets the number of identifiers each client must claim.
func (b *Builder) IDsPerClient(n int) *Builder { b.cfg.NumIDsPerClient = n; return b }

// Seed sets the network delay seed.
func (b *Builder) Seed(seed uint64) *Builder { b.cfg.NetworkSeed = seed; return b }

// BudgetMultiplier overrides the default progress-budget multiplier.
func (b *Builder) BudgetMultiplier(n int) *Builder { b.cfg.BudgetMultiplier = n; return b }

// DelayRange overrides the default [lo, hi) delay draw range.
func (b *Builder) DelayRange(lo, hi int) *Builder {
	b.cfg.DelayLo, b.cfg.DelayHi = lo, hi
	return b
}

// Build validates and returns the constructed Config.
func (b *Builder) Build() (Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return Config{}, err
	}
	return b.cfg, nil
}
