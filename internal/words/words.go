// apps/cmdle/internal/words/words.go
//
// Provides the word lists behind the game: the ordered goal list and the
// dictionary of allowed guesses.
//
// Word Lists:
//   - "answers": ordered goal words (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Loading behavior (Load):
//   1. If both an answers path and an allowed path are given,
//      load answers from the first and allowed guesses from the second.
//   2. If only the allowed path is given,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is given,
//      fall back to the lists embedded in the assets package.
//
// Files hold either one word per line ('#' starts a comment line) or, when
// the name ends in ".json", a JSON array of strings.

package words

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robalobadob/wordle/apps/cmdle/assets"
)

// ErrUnavailable is returned when the word lists cannot be loaded.
var ErrUnavailable = errors.New("word lists unavailable")

// Lists is a loaded goal list plus guess dictionary. It satisfies
// game.Dictionary.
type Lists struct {
	answers    []string            // ordered goal words
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
}

// New builds Lists from in-memory slices. Entries are normalised the same
// way file entries are.
func New(answers, allowed []string) *Lists {
	ans := normalize(answers)
	l := &Lists{
		answers:    ans,
		answersSet: toSet(ans),
		allowedSet: toSet(ans),
	}
	for _, w := range normalize(allowed) {
		l.allowedSet[w] = struct{}{}
	}
	return l
}

// Load reads the word lists following the rules in the package comment.
// Every failure, including an empty answer list, wraps ErrUnavailable.
func Load(answersPath, allowedPath string) (*Lists, error) {
	var ansList, allowList []string
	var err error

	switch {
	// Case 1: both lists provided
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

	// Case 2: only allowed file provided → use for both
	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		ansList = allowList

	// Case 3: embedded defaults
	default:
		if ansList, err = assets.GoalsList(); err != nil {
			return nil, fmt.Errorf("%w: embedded goals: %v", ErrUnavailable, err)
		}
		if allowList, err = assets.GuessesList(); err != nil {
			return nil, fmt.Errorf("%w: embedded guesses: %v", ErrUnavailable, err)
		}
	}

	l := New(ansList, allowList)
	if len(l.answers) == 0 {
		return nil, fmt.Errorf("%w: answers list is empty", ErrUnavailable)
	}
	return l, nil
}

// readWordFile loads a word file in either supported format.
func readWordFile(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var out []string
		if err := json.Unmarshal(b, &out); err != nil {
			return nil, fmt.Errorf("%s is not a JSON array of strings: %w", path, err)
		}
		return out, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); !strings.HasPrefix(line, "#") {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

// normalize lowercases and trims entries, keeping only 5-letter a–z words.
// Order is preserved; duplicates after the first are dropped.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, s := range list {
		w := strings.TrimSpace(strings.ToLower(s))
		if len(w) != 5 || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is an allowed guess (answers ∪ guesses).
// Lookup is exact; callers pass validated lowercase text.
func (l *Lists) Contains(w string) bool {
	_, ok := l.allowedSet[w]
	return ok
}

// IsAnswer reports whether w is a goal word.
func (l *Lists) IsAnswer(w string) bool {
	_, ok := l.answersSet[w]
	return ok
}

// Answers returns a copy of the ordered goal list.
func (l *Lists) Answers() []string {
	return append([]string(nil), l.answers...)
}

// Answer returns the goal at position i of the ordered list.
func (l *Lists) Answer(i int) string { return l.answers[i] }

// IndexOf returns the position of w in the goal list, or -1.
func (l *Lists) IndexOf(w string) int {
	for i, a := range l.answers {
		if a == w {
			return i
		}
	}
	return -1
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
