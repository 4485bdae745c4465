package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/robalobadob/wordle/apps/cmdle/internal/game"
	"github.com/robalobadob/wordle/apps/cmdle/internal/words"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func TestDaysSinceEpoch(t *testing.T) {
	assert.Equal(t, 0, DaysSinceEpoch(day(2021, time.June, 19)))
	assert.Equal(t, 1, DaysSinceEpoch(day(2021, time.June, 20)))
	assert.Equal(t, 365, DaysSinceEpoch(day(2022, time.June, 19)))
	assert.Equal(t, -1, DaysSinceEpoch(day(2021, time.June, 18)))
}

func TestDaysSinceEpoch_UsesLocalCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 01:00 on the 21st at UTC+10 is still the 20th in UTC; the local date counts.
	assert.Equal(t, 1, DaysSinceEpoch(time.Date(2021, time.June, 20, 23, 0, 0, 0, loc)))
	assert.Equal(t, 2, DaysSinceEpoch(time.Date(2021, time.June, 21, 1, 0, 0, 0, loc)))
}

func TestWordIndex(t *testing.T) {
	assert.Equal(t, 0, WordIndex(day(2021, time.June, 19), 10))
	assert.Equal(t, 3, WordIndex(day(2021, time.June, 22), 10))
	assert.Equal(t, 5, WordIndex(day(2022, time.June, 19), 10)) // 365 % 10
	assert.Equal(t, 9, WordIndex(day(2021, time.June, 18), 10))
	assert.Equal(t, 0, WordIndex(day(2024, time.January, 1), 0))
}

func TestWordIndex_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		offset := rapid.IntRange(-5000, 20000).Draw(t, "offset")
		n := rapid.IntRange(1, 3000).Draw(t, "n")
		at := Epoch.AddDate(0, 0, offset).Add(time.Duration(rapid.IntRange(0, 23).Draw(t, "hour")) * time.Hour)

		i := WordIndex(at, n)
		if i < 0 || i >= n {
			t.Fatalf("WordIndex = %d outside [0,%d)", i, n)
		}
		if j := WordIndex(at, n); j != i {
			t.Fatalf("WordIndex not deterministic: %d then %d", i, j)
		}
	})
}

func TestGoal(t *testing.T) {
	lists := words.New([]string{"hello", "world", "there"}, nil)

	w, i, err := Goal(day(2021, time.June, 23), lists)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, "world", w.String())

	again, _, err := Goal(day(2021, time.June, 23), lists)
	require.NoError(t, err)
	assert.Equal(t, w, again)
}

func TestGoal_NoLists(t *testing.T) {
	_, _, err := Goal(time.Now(), nil)
	assert.ErrorIs(t, err, game.ErrDictionaryUnavailable)

	_, _, err = Goal(time.Now(), words.New(nil, nil))
	assert.ErrorIs(t, err, words.ErrUnavailable)
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2021-06-19", DateKey(day(2021, time.June, 19)))
}
