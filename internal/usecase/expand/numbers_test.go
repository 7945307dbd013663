package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_TwoWildcards(t *testing.T) {
	got := Pattern("@@")
	require.Len(t, got, 100)
	assert.Equal(t, "00", got[0])
	assert.Equal(t, "99", got[99])

	seen := map[string]bool{}
	for _, s := range got {
		require.Len(t, s, 2)
		require.False(t, seen[s], "duplicate %q", s)
		seen[s] = true
	}
}

func TestPattern_KeepsLiterals(t *testing.T) {
	got := Pattern("12@")
	assert.Equal(t, []string{"120", "121", "122", "123", "124", "125", "126", "127", "128", "129"}, got)

	got = Pattern("9@x")
	assert.Len(t, got, 10)
	assert.Equal(t, "90x", got[0])
}

func TestPattern_NoWildcards(t *testing.T) {
	assert.Equal(t, []string{"2024"}, Pattern("2024"))
}

func TestFixedLength_Three(t *testing.T) {
	got := FixedLength(3)
	require.Len(t, got, 1000)
	assert.Equal(t, "000", got[0])
	assert.Equal(t, "007", got[7])
	assert.Equal(t, "999", got[999])

	seen := map[string]bool{}
	for _, s := range got {
		require.False(t, seen[s])
		seen[s] = true
	}
}

func TestFixedLength_Invalid(t *testing.T) {
	assert.Nil(t, FixedLength(0))
}
