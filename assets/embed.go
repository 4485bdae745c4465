// Package assets embeds the default goal and guess word lists.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

// FS holds the built-in word lists, used when no list files are configured.
//
//go:embed goals.txt guesses.txt
var FS embed.FS

// readLines returns the lowercased non-blank lines of an embedded file,
// skipping '#' comment lines.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// GoalsList returns the ordered daily goal words.
func GoalsList() ([]string, error) {
	return readLines("goals.txt")
}

// GuessesList returns the extra allowed guesses (goals are allowed too).
func GuessesList() ([]string, error) {
	return readLines("guesses.txt")
}
