package unique_test

import (
	"errors"
	"fairy-generator/unique"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cycle produces the values 0..k-1 over and over, counting its invocations.
type cycle struct {
	k     int
	next  int
	calls int
}

func (c *cycle) produce() (int64, error) {
	c.calls++
	v := int64(c.next % c.k)
	c.next++

	return v, nil
}

func TestDrawUniqueness(t *testing.T) {
	t.Parallel()

	s := unique.NewSession(nil)
	c := &cycle{k: 10}

	got := map[int64]bool{}
	for range 10 {
		v, err := unique.Draw(s, "Next", c.produce)
		require.NoError(t, err)
		require.False(t, got[v], "value %d returned twice", v)
		got[v] = true
	}

	assert.Equal(t, 10, s.Len())
	assert.Equal(t, 10, c.calls)
}

func TestDrawExhaustion(t *testing.T) {
	t.Parallel()

	const k = 3

	s := unique.NewSession(nil)
	c := &cycle{k: k}

	for range k {
		_, err := unique.Draw(s, "Next", c.produce)
		require.NoError(t, err)
	}

	before := c.calls
	_, err := unique.Draw(s, "Next", c.produce)
	require.ErrorIs(t, err, unique.ErrExhausted)

	var exhausted *unique.ExhaustionError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, unique.MaxRetries, exhausted.Attempts)
	assert.Equal(t, unique.Operation("Next"), exhausted.Operation)
	assert.Equal(t, unique.MaxRetries, c.calls-before)
	assert.Contains(t, []any{int64(0), int64(1), int64(2)}, exhausted.Last)
	assert.Equal(t, k, s.Len(), "last candidate must not be recorded")
}

func TestDrawExemption(t *testing.T) {
	t.Parallel()

	s := unique.NewSession(unique.Exempt("Configure"))
	assert.True(t, s.IsExempt("Configure"))
	assert.False(t, s.IsExempt("Next"))

	same := func() (string, error) { return "same", nil }

	for range unique.MaxRetries * 2 {
		v, err := unique.Draw(s, "Configure", same)
		require.NoError(t, err)
		require.Equal(t, "same", v)
	}
	assert.Zero(t, s.Len())

	v, err := unique.Draw(s, "Next", same)
	require.NoError(t, err)
	assert.Equal(t, "same", v)

	_, err = unique.Draw(s, "Next", same)
	assert.ErrorIs(t, err, unique.ErrExhausted)
}

func TestDrawNilPassthrough(t *testing.T) {
	t.Parallel()

	s := unique.NewSession(nil)

	calls := 0
	nilInt := func() (*big.Int, error) {
		calls++
		return nil, nil
	}

	for range 5 {
		v, err := unique.Draw(s, "Big", nilInt)
		require.NoError(t, err)
		require.Nil(t, v)
	}
	assert.Equal(t, 5, calls, "nil must never trigger a retry")
	assert.Zero(t, s.Len())

	nilSlice := func() ([]string, error) { return nil, nil }
	_, err := unique.Draw(s, "Slice", nilSlice)
	require.NoError(t, err)
	_, err = unique.Draw(s, "Slice", nilSlice)
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

func TestDrawProducerError(t *testing.T) {
	t.Parallel()

	s := unique.NewSession(nil)
	boom := errors.New("boom")

	calls := 0
	_, err := unique.Draw(s, "Fail", func() (int32, error) {
		calls++
		return 0, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
	assert.Zero(t, s.Len())
}

func TestDrawSharedAcrossOperations(t *testing.T) {
	t.Parallel()

	s := unique.NewSession(nil)

	_, err := unique.Draw(s, "A", func() (string, error) { return "x", nil })
	require.NoError(t, err)

	_, err = unique.Draw(s, "B", func() (string, error) { return "x", nil })
	require.ErrorIs(t, err, unique.ErrExhausted)
	assert.True(t, s.Seen("x"))
}

func TestDrawDistinguishesTypes(t *testing.T) {
	t.Parallel()

	s := unique.NewSession(nil)

	_, err := unique.Draw(s, "A", func() (int, error) { return 5, nil })
	require.NoError(t, err)

	v, err := unique.Draw(s, "B", func() (int64, error) { return 5, nil })
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
	assert.Equal(t, 2, s.Len())
}

func ExampleDraw() {
	s := unique.NewSession(nil)
	words := []string{"oak", "oak", "elm", "oak", "ash"}

	i := 0
	next := func() (string, error) {
		w := words[i%len(words)]
		i++
		return w, nil
	}

	for range 3 {
		w, err := unique.Draw(s, "Word", next)
		fmt.Println(w, err)
	}

	_, err := unique.Draw(s, "Word", next)
	fmt.Println(err)

	// Output:
	// oak <nil>
	// elm <nil>
	// ash <nil>
	// unique: no new value from Word after 100 attempts, last was ash
}
