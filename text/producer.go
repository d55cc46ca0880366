package text

import (
	"fairy-generator/source"
	"fmt"
	"strings"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const loremIpsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor " +
	"incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation " +
	"ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in reprehenderit " +
	"in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat " +
	"non proident, sunt in culpa qui officia deserunt mollit anim id est laborum."

// Producer is the default Texts implementation, drawing its vocabulary from gofakeit.
// A Producer is immutable, LimitedTo returns a copy.
type Producer struct {
	faker *gofakeit.Faker
	rng   *source.Range
	limit int
}

var _ Texts = (*Producer)(nil)

func NewProducer(faker *gofakeit.Faker, rng *source.Range) *Producer {
	return &Producer{faker: faker, rng: rng}
}

func (p *Producer) LimitedTo(limit int) Texts {
	cp := *p
	cp.limit = max(limit, 0)

	return &cp
}

func (p *Producer) LoremIpsum() (string, error) {
	return p.result(loremIpsum), nil
}

// Text returns a paragraph of latin sentences.
func (p *Producer) Text() (string, error) {
	s, err := p.paragraph(DefaultSentenceCount, p.latinSentence)
	if err != nil {
		return "", err
	}

	return p.result(s), nil
}

func (p *Producer) Word() (string, error) {
	return p.result(p.word()), nil
}

func (p *Producer) Words(count int) (string, error) {
	if count < 0 {
		return "", fmt.Errorf("%w: words %d", ErrInvalidCount, count)
	}

	return p.result(p.join(count, p.word)), nil
}

func (p *Producer) LatinWord() (string, error) {
	return p.result(p.latinWord()), nil
}

func (p *Producer) LatinWords(count int) (string, error) {
	if count < 0 {
		return "", fmt.Errorf("%w: latin words %d", ErrInvalidCount, count)
	}

	return p.result(p.join(count, p.latinWord)), nil
}

func (p *Producer) Sentence(wordCount int) (string, error) {
	s, err := p.sentence(wordCount)
	if err != nil {
		return "", err
	}

	return p.result(s), nil
}

func (p *Producer) LatinSentence(wordCount int) (string, error) {
	s, err := p.latinSentence(wordCount)
	if err != nil {
		return "", err
	}

	return p.result(s), nil
}

// Paragraph returns sentenceCount sentences plus a few random extra ones.
func (p *Producer) Paragraph(sentenceCount int) (string, error) {
	s, err := p.paragraph(sentenceCount, p.sentence)
	if err != nil {
		return "", err
	}

	return p.result(s), nil
}

func (p *Producer) RandomString(charsCount int) (string, error) {
	if charsCount < 0 {
		return "", fmt.Errorf("%w: chars %d", ErrInvalidCount, charsCount)
	}

	if charsCount == 0 {
		// LetterN(0) still returns one letter
		return "", nil
	}

	return p.faker.LetterN(uint(charsCount)), nil
}

func (p *Producer) result(s string) string {
	if p.limit <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= p.limit {
		return s
	}

	return string(runes[:p.limit])
}

func (p *Producer) word() string {
	if w := clean(p.faker.Word()); w != "" {
		return w
	}

	return p.latinWord()
}

func (p *Producer) latinWord() string {
	if w := clean(p.faker.LoremIpsumWord()); w != "" {
		return w
	}

	return "lorem"
}

func (p *Producer) sentence(wordCount int) (string, error) {
	return p.compose(wordCount, p.word)
}

func (p *Producer) latinSentence(wordCount int) (string, error) {
	return p.compose(wordCount, p.latinWord)
}

func (p *Producer) compose(wordCount int, word func() string) (string, error) {
	if wordCount < 1 {
		return "", fmt.Errorf("%w: sentence of %d words", ErrInvalidCount, wordCount)
	}

	words := make([]string, wordCount)
	for i := range words {
		words[i] = word()
	}

	words[0] = cases.Title(language.Und).String(words[0])

	return strings.Join(words, " ") + ".", nil
}

func (p *Producer) paragraph(sentenceCount int, sentence func(int) (string, error)) (string, error) {
	if sentenceCount < 1 {
		return "", fmt.Errorf("%w: paragraph of %d sentences", ErrInvalidCount, sentenceCount)
	}

	total := sentenceCount + p.rng.IntBetween(sentenceCountPrecisionMin, sentenceCountPrecisionMax)
	sentences := make([]string, total)
	for i := range sentences {
		s, err := sentence(DefaultWordCountInSentence)
		if err != nil {
			return "", err
		}
		sentences[i] = s
	}

	return strings.Join(sentences, " "), nil
}

func (p *Producer) join(count int, word func() string) string {
	words := make([]string, count)
	for i := range words {
		words[i] = word()
	}

	return strings.Join(words, " ")
}

// clean lowercases w and drops everything that is not a letter.
func clean(w string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, w)
}
