package idgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMsgEquality(t *testing.T) {
	require.Equal(t, Request(1), Request(1))
	require.NotEqual(t, Request(1), Request(2))
	require.NotEqual(t, Request(1), Yes(1))
	require.Equal(t, StartRequest, StartRequest)
	require.Equal(t, Yes(5), Yes(5))
	require.NotEqual(t, Yes(5), No(5))
}

func TestKindStringPanicsOnUnknownKind(t *testing.T) {
	require.Panics(t, func() {
		_ = Kind(255).String()
	})
}

func TestMsgString(t *testing.T) {
	require.Equal(t, "StartRequest", StartRequest.String())
	require.Equal(t, "Request(7)", Request(7).String())
	require.Equal(t, "Yes(3)", Yes(3).String())
	require.Equal(t, "No(9)", No(9).String())
}
