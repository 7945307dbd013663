package assemble

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, words, numbers, specials []string) []string {
	t.Helper()
	var out []string
	err := Combine(context.Background(), words, numbers, specials, func(l string) error {
		out = append(out, l)
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestCombine_BasesOnly(t *testing.T) {
	assert.Equal(t, []string{"cat", "dog"}, collect(t, []string{"cat", "dog"}, nil, nil))
}

func TestCombine_Order(t *testing.T) {
	got := collect(t, []string{"cat"}, []string{"1"}, []string{"!"})
	assert.Equal(t, []string{
		"cat",
		"cat1", "1cat",
		"cat!", "!cat",
		"cat1!", "cat!1", "1cat!", "!cat1",
	}, got)
}

func TestCombine_GlobalDedup(t *testing.T) {
	got := collect(t, []string{"cat", "dog", "cat1"}, []string{"1"}, nil)

	count := 0
	for _, l := range got {
		if l == "cat1" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"cat", "cat1", "1cat", "dog", "dog1", "1dog", "cat11", "1cat1"}, got)
}

func TestCombine_DedupWithinBase(t *testing.T) {
	// "1"+"1" and its reverse are the same line.
	got := collect(t, []string{"1"}, []string{"1"}, nil)
	assert.Equal(t, []string{"1", "11"}, got)
}

func TestCombine_Counts(t *testing.T) {
	numbers := []string{"1", "2", "3"}
	specials := []string{"!", "$"}
	got := collect(t, []string{"abc"}, numbers, specials)
	// 1 + 2*3 + 2*2 + 4*3*2
	assert.Len(t, got, 1+6+4+24)
}

func TestCombine_EmitErrorStops(t *testing.T) {
	boom := errors.New("disk full")
	calls := 0
	err := Combine(context.Background(), []string{"a", "b"}, []string{"1"}, nil, func(string) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestCombine_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Combine(ctx, []string{"a"}, nil, nil, func(string) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
