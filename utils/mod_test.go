package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	type pair struct{ a, b int }
	items := []pair{{1, 2}, {3, 4}, {3, 4}}

	require.Equal(t, 1, FindIndex(items, pair{3, 4}), "Should return the first match")
	require.Equal(t, -1, FindIndex(items, pair{5, 6}))
	require.Equal(t, -1, FindIndex(nil, pair{}))
	require.True(t, Contains(items, pair{1, 2}))
	require.False(t, Contains([]string{}, "x"))
}
