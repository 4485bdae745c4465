package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Dictionary answers whether a candidate is an allowed guess.
type Dictionary interface {
	Contains(candidate string) bool
}

// DictionaryFunc adapts a plain function to Dictionary.
type DictionaryFunc func(candidate string) bool

// Contains calls f(candidate).
func (f DictionaryFunc) Contains(candidate string) bool { return f(candidate) }

// ErrDictionaryUnavailable is returned when a Word is built without a dictionary.
var ErrDictionaryUnavailable = errors.New("word dictionary unavailable")

// ValidationKind names the check a word failed.
type ValidationKind int

const (
	WrongLength ValidationKind = iota + 1
	NotASCII
	NotAlphabetic
	NotInDictionary
)

// ValidationError reports why raw text could not become a Word.
type ValidationError struct {
	Kind ValidationKind
	Text string // trimmed input
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case WrongLength:
		return fmt.Sprintf("%q: word must be exactly %d letters", e.Text, WordLen)
	case NotASCII:
		return fmt.Sprintf("%q: word must be ascii", e.Text)
	case NotAlphabetic:
		return fmt.Sprintf("%q: word must only contain letters a-z", e.Text)
	case NotInDictionary:
		return fmt.Sprintf("%q: not in the word dictionary", e.Text)
	}
	return fmt.Sprintf("%q: invalid word", e.Text)
}

// Is matches any ValidationError of the same kind, so the Err* values below
// work with errors.Is.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

var (
	ErrWrongLength     = &ValidationError{Kind: WrongLength}
	ErrNotASCII        = &ValidationError{Kind: NotASCII}
	ErrNotAlphabetic   = &ValidationError{Kind: NotAlphabetic}
	ErrNotInDictionary = &ValidationError{Kind: NotInDictionary}
)

// Word is a validated five-letter guessable token. The zero value is not a
// valid Word; NewWord is the only way to build one.
type Word struct {
	text string
}

// NewWord trims raw and validates it, first failure wins:
// length, ascii, alphabet, dictionary membership.
func NewWord(raw string, dict Dictionary) (Word, error) {
	text := strings.TrimSpace(raw)
	if utf8.RuneCountInString(text) != WordLen {
		return Word{}, &ValidationError{Kind: WrongLength, Text: text}
	}
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return Word{}, &ValidationError{Kind: NotASCII, Text: text}
		}
	}
	if !isAlpha(text) {
		return Word{}, &ValidationError{Kind: NotAlphabetic, Text: text}
	}
	if dict == nil {
		return Word{}, ErrDictionaryUnavailable
	}
	if !dict.Contains(text) {
		return Word{}, &ValidationError{Kind: NotInDictionary, Text: text}
	}
	return Word{text: text}, nil
}

// At returns the letter at position i.
// Panics if i is outside 0..4; callers control indices.
func (w Word) At(i int) byte {
	if i < 0 || i >= WordLen {
		panic(fmt.Sprintf("game: word index %d out of range", i))
	}
	return w.text[i]
}

// String returns the word text.
func (w Word) String() string { return w.text }

// Compare orders words by text: -1, 0 or +1.
func (w Word) Compare(other Word) int { return strings.Compare(w.text, other.text) }

// contains reports whether c occurs anywhere in the word.
func (w Word) contains(c byte) bool { return strings.IndexByte(w.text, c) >= 0 }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
