package simulator

import (
	"context"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/quorumgen/idgen/config"
)

// simParams is a testing/quick generator for the harness input
// convention from SPEC_FULL.md §8: clients, servers in [1, 100],
// ids-per-client in [1, 1000], seed in [1, 1000]. The generator only
// ever produces values already inside those bounds, so there is nothing
// to discard the way the original quickcheck-based harness did.
//
// The sweep below runs over a narrower slice of that space than the
// full harness bounds: a (100, 100, 1000) run can legitimately enqueue
// millions of envelopes (retries compound with contention), which is
// appropriate for an occasional stress run but not for a test that
// should finish in a CI loop. Widen simParams.Generate to the full
// bounds for a manual stress pass.
type simParams struct {
	clients, servers, ids int
	seed                  uint64
}

func (simParams) Generate(rnd *rand.Rand, size int) reflect.Value {
	p := simParams{
		clients: 1 + rnd.Intn(12),
		servers: 1 + rnd.Intn(12),
		ids:     1 + rnd.Intn(20),
		seed:    uint64(1 + rnd.Intn(50)),
	}
	return reflect.ValueOf(p)
}

func TestPropertySweepAlwaysValidates(t *testing.T) {
	prop := func(p simParams) bool {
		cfg, err := config.NewBuilder().
			Clients(p.clients).Servers(p.servers).IDsPerClient(p.ids).Seed(p.seed).Build()
		if err != nil {
			t.Logf("invalid config for %+v: %v", p, err)
			return false
		}

		sim, err := New(cfg)
		if err != nil {
			t.Logf("New failed for %+v: %v", p, err)
			return false
		}

		if err := sim.Run(context.Background()); err != nil {
			t.Logf("Run failed for %+v: %v", p, err)
			return false
		}

		if err := sim.ValidateRun(); err != nil {
			t.Logf("ValidateRun failed for %+v: %v", p, err)
			return false
		}

		return true
	}

	require.NoError(t, quick.Check(prop, &quick.Config{MaxCount: 75}))
}

// TestRegressionHighContentionManyClientsFewServers exercises the shape
// most likely to spend the whole progress budget on retries: many
// clients contending for acceptance from relatively few servers.
func TestRegressionHighContentionManyClientsFewServers(t *testing.T) {
	cfg := basicConfig(t, 10, 2, 5, 3)

	sim, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, sim.Run(context.Background()))
	require.NoError(t, sim.ValidateRun())
}
