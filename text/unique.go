package text

import "fairy-generator/unique"

// uniqueTexts decorates Texts so that no result is ever returned twice.
type uniqueTexts struct {
	inner   Texts
	session *unique.Session
}

// Unique wraps t so that no operation returns a value any operation of the
// wrapper returned before. Operations listed in Exempt are forwarded as is,
// LimitedTo in particular returns the wrapped producer's limited Texts,
// which is not decorated.
//
// Operations fail with an error matching unique.ErrExhausted when no new value
// turns up within unique.MaxRetries attempts. The result is not safe for
// concurrent use.
func Unique(t Texts) Texts {
	return &uniqueTexts{inner: t, session: unique.NewSession(Exempt)}
}

func (u *uniqueTexts) LimitedTo(limit int) Texts {
	// OpLimitedTo is exempt, so Draw returns produce's result as is and the
	// error is always nil
	t, err := unique.Draw(u.session, OpLimitedTo, func() (Texts, error) {
		return u.inner.LimitedTo(limit), nil
	})
	if err != nil {
		panic("text: exempt LimitedTo failed: " + err.Error())
	}

	return t
}

func (u *uniqueTexts) LoremIpsum() (string, error) {
	return unique.Draw(u.session, OpLoremIpsum, u.inner.LoremIpsum)
}

func (u *uniqueTexts) Text() (string, error) {
	return unique.Draw(u.session, OpText, u.inner.Text)
}

func (u *uniqueTexts) Word() (string, error) {
	return unique.Draw(u.session, OpWord, u.inner.Word)
}

func (u *uniqueTexts) Words(count int) (string, error) {
	return unique.Draw(u.session, OpWords, func() (string, error) { return u.inner.Words(count) })
}

func (u *uniqueTexts) LatinWord() (string, error) {
	return unique.Draw(u.session, OpLatinWord, u.inner.LatinWord)
}

func (u *uniqueTexts) LatinWords(count int) (string, error) {
	return unique.Draw(u.session, OpLatinWords, func() (string, error) { return u.inner.LatinWords(count) })
}

func (u *uniqueTexts) Sentence(wordCount int) (string, error) {
	return unique.Draw(u.session, OpSentence, func() (string, error) { return u.inner.Sentence(wordCount) })
}

func (u *uniqueTexts) LatinSentence(wordCount int) (string, error) {
	return unique.Draw(u.session, OpLatinSentence, func() (string, error) { return u.inner.LatinSentence(wordCount) })
}

func (u *uniqueTexts) Paragraph(sentenceCount int) (string, error) {
	return unique.Draw(u.session, OpParagraph, func() (string, error) { return u.inner.Paragraph(sentenceCount) })
}

func (u *uniqueTexts) RandomString(charsCount int) (string, error) {
	return unique.Draw(u.session, OpRandomString, func() (string, error) { return u.inner.RandomString(charsCount) })
}
