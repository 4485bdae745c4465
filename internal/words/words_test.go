package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestNew_NormalizesAndMergesAnswers(t *testing.T) {
	l := New([]string{" Hello", "there", "toolong", "hello", "ab1de"}, []string{"CARTS", "fears"})

	assert.Equal(t, []string{"hello", "there"}, l.Answers())
	assert.True(t, l.Contains("hello"))
	assert.True(t, l.Contains("carts"))
	assert.True(t, l.IsAnswer("there"))
	assert.False(t, l.IsAnswer("carts"))
	assert.False(t, l.Contains("Hello"))

	a, g := l.Stats()
	assert.Equal(t, 2, a)
	assert.Equal(t, 4, g)
	assert.Equal(t, 1, l.IndexOf("there"))
	assert.Equal(t, -1, l.IndexOf("carts"))
	assert.Equal(t, "hello", l.Answer(0))
}

func TestLoad_Embedded(t *testing.T) {
	l, err := Load("", "")
	require.NoError(t, err)

	a, g := l.Stats()
	assert.Greater(t, a, 100)
	assert.GreaterOrEqual(t, g, a)
	assert.Equal(t, "cigar", l.Answer(0))
	assert.True(t, l.Contains("hello"))
	assert.True(t, l.Contains("cigar"))
}

func TestLoad_BothFiles(t *testing.T) {
	dir := t.TempDir()
	ans := writeFile(t, dir, "goals.txt", "# goals\nhello\nworld\n")
	all := writeFile(t, dir, "guesses.txt", "there\ncarts\n")

	l, err := Load(ans, all)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, l.Answers())
	assert.True(t, l.Contains("carts"))
	assert.True(t, l.Contains("world"))
}

func TestLoad_OnlyAllowedFileServesBoth(t *testing.T) {
	dir := t.TempDir()
	all := writeFile(t, dir, "guesses.txt", "there\ncarts\n")

	l, err := Load("", all)
	require.NoError(t, err)
	assert.Equal(t, []string{"there", "carts"}, l.Answers())
}

func TestLoad_JSONArrays(t *testing.T) {
	dir := t.TempDir()
	ans := writeFile(t, dir, "goals.json", `["hello","world"]`)
	all := writeFile(t, dir, "guesses.json", `["shave"]`)

	l, err := Load(ans, all)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, l.Answers())
	assert.True(t, l.Contains("shave"))
}

func TestLoad_Failures(t *testing.T) {
	dir := t.TempDir()
	badJSON := writeFile(t, dir, "goals.json", `{"goal":"hello"}`)
	empty := writeFile(t, dir, "empty.txt", "# nothing\n")

	tests := []struct {
		name          string
		answers, allw string
	}{
		{"missing answers file", filepath.Join(dir, "nope.txt"), empty},
		{"missing allowed file", "", filepath.Join(dir, "nope.txt")},
		{"malformed json", badJSON, empty},
		{"empty answers", "", empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.answers, tt.allw)
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}
