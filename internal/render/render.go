// Package render draws games for the terminal: one tile row per guess,
// a keyboard coloured by letter status, and a one-line status.
//
// Rendering is read-only; nothing here mutates a game. Without colour the
// tile rows carry O/X/- symbols and the keyboard uses brackets, so output
// stays readable when piped.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/robalobadob/wordle/apps/cmdle/internal/game"
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Palette colours, shared by tiles and keys.
var (
	colorCorrect  = lipgloss.Color("#538D4E")
	colorPresent  = lipgloss.Color("#B59F3B")
	colorAbsent   = lipgloss.Color("#3A3A3C")
	colorUnused   = lipgloss.Color("#818384")
	colorTileText = lipgloss.Color("#FFFFFF")
)

// Renderer turns core values into terminal strings.
type Renderer struct {
	color bool
	tiles map[game.LetterResult]lipgloss.Style
	keys  map[game.LetterStatus]lipgloss.Style
	empty lipgloss.Style
	text  lipgloss.Style
	win   lipgloss.Style
	lose  lipgloss.Style
}

// New builds a Renderer for w. The colour profile is forced either way so
// output does not depend on what w turns out to be.
func New(w io.Writer, color bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if color {
		lg.SetColorProfile(termenv.TrueColor)
	} else {
		lg.SetColorProfile(termenv.Ascii)
	}
	tile := lg.NewStyle().Bold(true).Padding(0, 1).Foreground(colorTileText)
	return &Renderer{
		color: color,
		tiles: map[game.LetterResult]lipgloss.Style{
			game.Correct:       tile.Background(colorCorrect),
			game.WrongPosition: tile.Background(colorPresent),
			game.WrongLetter:   tile.Background(colorAbsent),
		},
		keys: map[game.LetterStatus]lipgloss.Style{
			game.Unused:        tile.Background(colorUnused),
			game.NotPresent:    tile.Background(colorAbsent).Foreground(colorUnused),
			game.FoundLetter:   tile.Background(colorPresent),
			game.FoundPosition: tile.Background(colorCorrect),
		},
		empty: lg.NewStyle().Padding(0, 1).Foreground(colorUnused),
		text:  lg.NewStyle(),
		win:   lg.NewStyle().Bold(true).Foreground(colorCorrect),
		lose:  lg.NewStyle().Bold(true).Foreground(lipgloss.Color("#E06C75")),
	}
}

// Guess renders one scored guess as a row of tiles.
func (r *Renderer) Guess(w game.Word, res game.Result) string {
	var b strings.Builder
	for i := 0; i < game.WordLen; i++ {
		b.WriteString(r.tiles[res[i]].Render(strings.ToUpper(string(w.At(i)))))
	}
	if !r.color {
		b.WriteString("  " + res.String())
	}
	return b.String()
}

// Grid renders every guess followed by blank rows up to MaxGuesses.
func (r *Renderer) Grid(g *game.Game) string {
	rows := make([]string, 0, game.MaxGuesses)
	results := g.Results()
	for i, w := range g.Guesses() {
		rows = append(rows, r.Guess(w, results[i]))
	}
	blank := strings.Repeat(r.empty.Render("_"), game.WordLen)
	for len(rows) < game.MaxGuesses {
		rows = append(rows, blank)
	}
	return strings.Join(rows, "\n")
}

// Board renders the alphabet as a QWERTY keyboard coloured by status.
func (r *Renderer) Board(board game.Board) string {
	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", i))
		for j := 0; j < len(row); j++ {
			b.WriteString(r.key(row[j], board.Status(row[j])))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) key(c byte, s game.LetterStatus) string {
	letter := strings.ToUpper(string(c))
	if r.color {
		return r.keys[s].Render(letter)
	}
	switch s {
	case game.FoundPosition:
		return "[" + letter + "]"
	case game.FoundLetter:
		return "(" + letter + ")"
	case game.NotPresent:
		return " . "
	}
	return " " + letter + " "
}

// Status renders a one-line summary; the goal is revealed once the game is lost.
func (r *Renderer) Status(g *game.Game) string {
	switch g.State() {
	case game.Won:
		return r.win.Render(fmt.Sprintf("Solved in %d/%d!", g.GuessCount(), game.MaxGuesses))
	case game.Lost:
		return r.lose.Render(fmt.Sprintf("Out of guesses. The word was %s.", strings.ToUpper(g.Goal().String())))
	}
	return r.text.Render(fmt.Sprintf("Guess %d/%d, %d left.", g.GuessCount(), game.MaxGuesses, g.Remaining()))
}

// Game renders grid, keyboard and status separated by blank lines.
func (r *Renderer) Game(g *game.Game) string {
	return strings.Join([]string{r.Grid(g), r.Board(g.Board()), r.Status(g)}, "\n\n") + "\n"
}
