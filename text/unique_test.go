package text_test

import (
	"errors"
	"fairy-generator/text"
	"fairy-generator/unique"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vocabulary is a Texts that cycles through a fixed list of words.
type vocabulary struct {
	words []string
	next  int
	calls int
	limit int
}

func (v *vocabulary) draw() (string, error) {
	v.calls++
	w := v.words[v.next%len(v.words)]
	v.next++

	return w, nil
}

func (v *vocabulary) LimitedTo(limit int) text.Texts {
	v.limit = limit
	return v
}

func (v *vocabulary) LoremIpsum() (string, error)       { return "lorem ipsum", nil }
func (v *vocabulary) Text() (string, error)             { return v.draw() }
func (v *vocabulary) Word() (string, error)             { return v.draw() }
func (v *vocabulary) Words(int) (string, error)         { return v.draw() }
func (v *vocabulary) LatinWord() (string, error)        { return v.draw() }
func (v *vocabulary) LatinWords(int) (string, error)    { return v.draw() }
func (v *vocabulary) Sentence(int) (string, error)      { return v.draw() }
func (v *vocabulary) LatinSentence(int) (string, error) { return v.draw() }
func (v *vocabulary) Paragraph(int) (string, error)     { return v.draw() }
func (v *vocabulary) RandomString(n int) (string, error) {
	if n < 0 {
		return "", text.ErrInvalidCount
	}
	return v.draw()
}

func TestUniqueWords(t *testing.T) {
	t.Parallel()

	v := &vocabulary{words: []string{"oak", "elm", "ash", "oak", "fir"}}
	u := text.Unique(v)

	got := map[string]bool{}
	for range 4 {
		w, err := u.Word()
		require.NoError(t, err)
		require.False(t, got[w], "%q returned twice", w)
		got[w] = true
	}

	calls := v.calls
	_, err := u.Word()
	require.ErrorIs(t, err, unique.ErrExhausted)

	var exhausted *unique.ExhaustionError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, text.OpWord, exhausted.Operation)
	assert.Equal(t, unique.MaxRetries, v.calls-calls)
}

func TestUniqueAcrossOperations(t *testing.T) {
	t.Parallel()

	v := &vocabulary{words: []string{"oak", "elm"}}
	u := text.Unique(v)

	w1, err := u.Word()
	require.NoError(t, err)
	w2, err := u.Sentence(3)
	require.NoError(t, err)
	assert.NotEqual(t, w1, w2)

	_, err = u.Paragraph(1)
	assert.ErrorIs(t, err, unique.ErrExhausted)
}

func TestUniqueExemptLimitedTo(t *testing.T) {
	t.Parallel()

	v := &vocabulary{words: []string{"oak"}}
	u := text.Unique(v)

	for range unique.MaxRetries + 1 {
		got := u.LimitedTo(3)
		require.Same(t, v, got, "exempt operations return the wrapped result unchanged")
	}
	assert.Equal(t, 3, v.limit)

	_, err := u.Word()
	require.NoError(t, err, "exempt calls must not record anything")
}

func TestUniqueConstantOperation(t *testing.T) {
	t.Parallel()

	u := text.Unique(&vocabulary{words: []string{"oak"}})

	lorem, err := u.LoremIpsum()
	require.NoError(t, err)
	assert.Equal(t, "lorem ipsum", lorem)

	_, err = u.LoremIpsum()
	assert.ErrorIs(t, err, unique.ErrExhausted)
}

func TestUniqueProducerError(t *testing.T) {
	t.Parallel()

	v := &vocabulary{words: []string{"oak"}}
	u := text.Unique(v)

	_, err := u.RandomString(-1)
	require.ErrorIs(t, err, text.ErrInvalidCount)
	assert.Zero(t, v.calls)
}

func TestUniqueProducer(t *testing.T) {
	t.Parallel()

	u := text.Unique(newProducer(34))

	got := map[string]bool{}
	for range 200 {
		w, err := u.Word()
		require.NoError(t, err)
		require.False(t, got[w], "%q returned twice", w)
		got[w] = true
	}
}
