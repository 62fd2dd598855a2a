package config

// Named presets for the CLI harness, mirroring this module's usual
// small/default/stress split for quickly picking a run size without
// spelling out all four parameters.
var (
	// Small is a fast sanity-check run: two clients, three servers,
	// one identifier each.
	Small = Config{
		NumClients:       2,
		NumServers:       3,
		NumIDsPerClient:  1,
		NetworkSeed:      2,
		BudgetMultiplier: DefaultBudgetMultiplier,
		DelayLo:          DefaultDelayLo,
		DelayHi:          DefaultDelayHi,
	}

	// Default is a moderate run exercising retries under light
	// contention.
	Default = Config{
		NumClients:       5,
		NumServers:       5,
		NumIDsPerClient:  10,
		NetworkSeed:      42,
		BudgetMultiplier: DefaultBudgetMultiplier,
		DelayLo:          DefaultDelayLo,
		DelayHi:          DefaultDelayHi,
	}

	// Stress pushes toward the harness's upper input bounds to shake
	// out budget-exhaustion and quorum-contention edge cases.
	Stress = Config{
		NumClients:       50,
		NumServers:       25,
		NumIDsPerClient:  100,
		NetworkSeed:      7,
		BudgetMultiplier: DefaultBudgetMultiplier,
		DelayLo:          DefaultDelayLo,
		DelayHi:          DefaultDelayHi,
	}
)
