package netsim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrawIsWithinConfiguredRange(t *testing.T) {
	d := NewDelayOracle(2)

	for i := 0; i < 1000; i++ {
		v := d.Draw()
		require.GreaterOrEqual(t, v, 1)
		require.Less(t, v, 10)
	}
}

func TestDrawIsDeterministicForFixedSeed(t *testing.T) {
	a := NewDelayOracle(42)
	b := NewDelayOracle(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Draw(), b.Draw())
	}
}

func TestDifferentSeedsUsuallyDiverge(t *testing.T) {
	a := NewDelayOracle(1)
	b := NewDelayOracle(2)

	diverged := false
	for i := 0; i < 50; i++ {
		if a.Draw() != b.Draw() {
			diverged = true
			break
		}
	}
	require.True(t, diverged, "two distinct seeds never produced a different draw in 50 tries")
}

func TestNewDelayOracleRangePanicsOnEmptyRange(t *testing.T) {
	require.Panics(t, func() { NewDelayOracleRange(1, 5, 5) })
	require.Panics(t, func() { NewDelayOracleRange(1, 10, 1) })
}

func TestSeedRestartsSequence(t *testing.T) {
	d := NewDelayOracle(7)
	first := make([]int, 10)
	for i := range first {
		first[i] = d.Draw()
	}

	d.Seed(7)
	for i := range first {
		require.Equal(t, first[i], d.Draw())
	}
}
