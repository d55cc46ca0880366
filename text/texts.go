// Package text produces words, sentences and paragraphs of filler text.
package text

import (
	"errors"
	"fairy-generator/unique"
)

const (
	DefaultWordCountInSentence = 3
	DefaultSentenceCount       = 3

	// a paragraph gets this many extra sentences on top of the requested ones
	sentenceCountPrecisionMin = 1
	sentenceCountPrecisionMax = 3
)

var ErrInvalidCount = errors.New("text: invalid count")

// Texts is the capability set of text producing operations.
//
// LimitedTo is configuration only, it is exempt from uniqueness checks when
// the set is decorated with Unique.
type Texts interface {
	// LimitedTo returns Texts whose results are cut to at most limit runes,
	// a limit of zero or less means unlimited.
	LimitedTo(limit int) Texts
	LoremIpsum() (string, error)
	Text() (string, error)
	Word() (string, error)
	Words(count int) (string, error)
	LatinWord() (string, error)
	LatinWords(count int) (string, error)
	Sentence(wordCount int) (string, error)
	LatinSentence(wordCount int) (string, error)
	Paragraph(sentenceCount int) (string, error)
	// RandomString returns charsCount random letters, it ignores the limit.
	RandomString(charsCount int) (string, error)
}

const (
	OpLimitedTo     unique.Operation = "LimitedTo"
	OpLoremIpsum    unique.Operation = "LoremIpsum"
	OpText          unique.Operation = "Text"
	OpWord          unique.Operation = "Word"
	OpWords         unique.Operation = "Words"
	OpLatinWord     unique.Operation = "LatinWord"
	OpLatinWords    unique.Operation = "LatinWords"
	OpSentence      unique.Operation = "Sentence"
	OpLatinSentence unique.Operation = "LatinSentence"
	OpParagraph     unique.Operation = "Paragraph"
	OpRandomString  unique.Operation = "RandomString"
)

// Exempt lists the Texts operations that are never checked for uniqueness.
var Exempt = unique.Exempt(OpLimitedTo)

// DefaultSentence returns a sentence of DefaultWordCountInSentence words.
func DefaultSentence(t Texts) (string, error) {
	return t.Sentence(DefaultWordCountInSentence)
}

// DefaultLatinSentence returns a latin sentence of DefaultWordCountInSentence words.
func DefaultLatinSentence(t Texts) (string, error) {
	return t.LatinSentence(DefaultWordCountInSentence)
}

// DefaultParagraph returns a paragraph of at least DefaultSentenceCount sentences.
func DefaultParagraph(t Texts) (string, error) {
	return t.Paragraph(DefaultSentenceCount)
}
