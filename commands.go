// apps/cmdle/commands.go
//
// Command tree for the cmdle CLI.
//   - daily:          start today's game, replacing any stored one.
//   - guess <word>:   apply one guess to the stored game.
//   - check (status): show the stored game without changing it.
//   - stats:          summarise finished games from the history.
//   - config:         show or update the stored player config.
//
// Every command reads the snapshot once at the start and writes it at most
// once at the end. Errors bubble up to main, which prints one line and
// exits non-zero.

package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/cmdle/internal/daily"
	"github.com/robalobadob/wordle/apps/cmdle/internal/game"
	"github.com/robalobadob/wordle/apps/cmdle/internal/render"
	"github.com/robalobadob/wordle/apps/cmdle/internal/store"
	"github.com/robalobadob/wordle/apps/cmdle/internal/words"
)

// errNoHistory is returned by stats when the history is switched off.
var errNoHistory = errors.New("history is disabled (--history=false)")

// app bundles what a command needs. Fields left nil before Execute are
// filled from Settings; tests preset them.
type app struct {
	out, errOut io.Writer
	now         func() time.Time
	v           *viper.Viper

	settings Settings
	lists    *words.Lists
	store    store.Store
	history  *daily.Store
	db       *sql.DB
	render   *render.Renderer
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut, now: time.Now, v: viper.New()}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "cmdle",
		Short:             "A word game for the command line",
		Long:              "cmdle: guess the daily five-letter word in six tries.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}
	addSettingsFlags(root)

	root.AddCommand(
		&cobra.Command{
			Use:   "daily",
			Short: "Start today's game",
			Args:  cobra.NoArgs,
			RunE:  a.runDaily,
		},
		&cobra.Command{
			Use:   "guess <word>",
			Short: "Make a guess",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runGuess,
		},
		&cobra.Command{
			Use:     "check",
			Aliases: []string{"status"},
			Short:   "Show the current game",
			Args:    cobra.NoArgs,
			RunE:    a.runCheck,
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show results of finished games",
			Args:  cobra.NoArgs,
			RunE:  a.runStats,
		},
		a.configCmd(),
	)
	return root
}

// setup resolves settings and opens the collaborators a command uses.
func (a *app) setup(cmd *cobra.Command) error {
	s, err := loadSettings(a.v, cmd)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	a.settings = s

	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", s.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: a.errOut, NoColor: !s.Color}).
		With().Timestamp().Logger()

	if a.render == nil {
		a.render = render.New(a.out, s.Color)
	}
	if a.lists == nil {
		if a.lists, err = words.Load(s.AnswersFile, s.AllowedFile); err != nil {
			return err
		}
	}
	if a.store == nil {
		a.store = store.NewFileStore(s.Dir)
	}
	if a.history == nil && s.History {
		a.openHistory(filepath.Join(s.Dir, "history.db"))
	}

	na, ng := a.lists.Stats()
	log.Debug().Str("dir", s.Dir).Int("answers", na).Int("allowed", ng).
		Bool("history", a.history != nil).Msg("ready")
	return nil
}

// openHistory opens the results database. The history is optional: on
// failure it is left off and play continues.
func (a *app) openHistory(path string) {
	db, err := openDB(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("history unavailable")
		return
	}
	if err := migrate(db, daily.Migrations); err != nil {
		_ = db.Close()
		log.Warn().Err(err).Str("path", path).Msg("history unavailable")
		return
	}
	a.db = db
	a.history = daily.NewStore(db)
}

// close releases what setup opened.
func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
		a.db, a.history = nil, nil
	}
}

func (a *app) runDaily(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	now := a.now()
	goal, idx, err := daily.Goal(now, a.lists)
	if err != nil {
		return err
	}

	g := game.New(goal)
	if err := a.store.SaveGame(ctx, g); err != nil {
		return err
	}
	log.Info().Str("date", daily.DateKey(now)).Int("wordIndex", idx).Msg("daily game started")

	if a.history != nil {
		played, err := a.history.AlreadyPlayed(ctx, daily.DateKey(now))
		if err != nil {
			log.Warn().Err(err).Msg("check history")
		} else if played {
			fmt.Fprintln(a.out, "You already finished today's game; this replay will not be recorded.")
		}
	}

	fmt.Fprintf(a.out, "Daily #%d\n\n", daily.DaysSinceEpoch(now))
	fmt.Fprint(a.out, a.render.Game(g))
	return nil
}

func (a *app) runGuess(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	g, err := a.store.LoadGame(ctx, a.lists)
	if err != nil {
		return err
	}

	w, err := game.NewWord(strings.ToLower(args[0]), a.lists)
	if err != nil {
		return err
	}
	if err := g.AddGuess(w); err != nil {
		return fmt.Errorf("%w (run \"cmdle daily\" for a new game)", err)
	}
	if err := a.store.SaveGame(ctx, g); err != nil {
		return err
	}
	log.Debug().Str("guess", w.String()).Int("guesses", g.GuessCount()).Str("state", g.State().String()).Msg("guess applied")

	if g.State() != game.InProgress {
		a.recordResult(cmd, g)
	}
	fmt.Fprint(a.out, a.render.Game(g))
	return nil
}

// recordResult stores a finished game in the history under today's date.
// A game whose goal is not today's (started on an earlier day) is skipped.
// Failures are logged; the game itself is already saved.
func (a *app) recordResult(cmd *cobra.Command, g *game.Game) {
	if a.history == nil {
		return
	}
	now := a.now()
	today, idx, err := daily.Goal(now, a.lists)
	if err != nil {
		log.Warn().Err(err).Msg("record result")
		return
	}
	if today != g.Goal() {
		log.Debug().Str("date", daily.DateKey(now)).Str("goal", g.Goal().String()).
			Msg("finished game is not today's; not recorded")
		return
	}
	r := daily.Result{
		Date:      daily.DateKey(now),
		WordIndex: idx,
		Goal:      g.Goal().String(),
		Guesses:   g.GuessCount(),
		Won:       g.IsWon(),
	}
	added, err := a.history.InsertResult(cmd.Context(), r)
	if err != nil {
		log.Warn().Err(err).Msg("record result")
		return
	}
	log.Info().Str("date", r.Date).Bool("won", r.Won).Bool("recorded", added).Msg("game finished")
}

func (a *app) runCheck(cmd *cobra.Command, _ []string) error {
	g, err := a.store.LoadGame(cmd.Context(), a.lists)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, a.render.Game(g))
	return nil
}

func (a *app) runStats(cmd *cobra.Command, _ []string) error {
	if a.history == nil {
		return errNoHistory
	}
	ctx := cmd.Context()
	sum, err := a.history.Summary(ctx)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	fmt.Fprintf(a.out, "Played: %d  Wins: %d  Win rate: %d%%  Streak: %d\n\n",
		sum.Played, sum.Wins, sum.WinRate(), sum.CurrentStreak)

	most := 1
	for _, n := range sum.Distribution[1:] {
		most = max(most, n)
	}
	for i := 1; i <= game.MaxGuesses; i++ {
		n := sum.Distribution[i]
		fmt.Fprintf(a.out, "%d | %s %d\n", i, strings.Repeat("#", n*20/most), n)
	}

	recent, err := a.history.Recent(ctx, 5)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	if len(recent) > 0 {
		fmt.Fprintln(a.out, "\nRecent:")
	}
	for _, r := range recent {
		outcome := fmt.Sprintf("%d/%d", r.Guesses, game.MaxGuesses)
		if !r.Won {
			outcome = fmt.Sprintf("X/%d", game.MaxGuesses)
		}
		fmt.Fprintf(a.out, "  %s  %s  %s\n", r.Date, strings.ToUpper(r.Goal), outcome)
	}
	return nil
}

func (a *app) configCmd() *cobra.Command {
	var testInt int
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or update the stored config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := a.store.LoadConfig(ctx)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
			if cmd.Flags().Changed("test-int") {
				cfg.TestInt = testInt
				if err := a.store.SaveConfig(ctx, cfg); err != nil {
					return err
				}
			}
			fmt.Fprintf(a.out, "test_int = %d\n", cfg.TestInt)
			return nil
		},
	}
	cmd.Flags().IntVar(&testInt, "test-int", 0, "set test_int")
	return cmd
}
