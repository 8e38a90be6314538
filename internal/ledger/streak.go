package ledger

import (
	"time"

	"github.com/avelasco/roadready/internal/store"
)

// StreakState tracks consecutive study days. BestStreak never drops
// below CurrentStreak.
type StreakState struct {
	Current       int    `json:"currentStreak"`
	Best          int    `json:"bestStreak"`
	LastStudyDate string `json:"lastStudyDate,omitempty"` // YYYY-MM-DD
}

// Streak returns the persisted streak state.
func (l *Ledger) Streak() StreakState {
	var st StreakState
	l.store.Get(store.KeyStreak, &st)
	return st
}

// StreakTick advances the streak on the first qualifying answer of the
// calendar day: studying on consecutive days increments, a second call
// on the same day is a no-op, and a gap (or the first-ever study day)
// restarts at 1.
func (l *Ledger) StreakTick(now time.Time) StreakState {
	st := l.Streak()
	today := now.Format(dayFormat)
	if st.LastStudyDate == today {
		return st
	}

	yesterday := now.AddDate(0, 0, -1).Format(dayFormat)
	if st.LastStudyDate == yesterday {
		st.Current++
	} else {
		st.Current = 1
	}
	if st.Current > st.Best {
		st.Best = st.Current
	}
	st.LastStudyDate = today
	l.store.Set(store.KeyStreak, st)
	return st
}
