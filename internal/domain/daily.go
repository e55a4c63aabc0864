package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// dayKeyLayout is the calendar-date format used for session keys and
// streak bookkeeping.
const dayKeyLayout = "2006-01-02"

// DayKey identifies one calendar day ("2006-01-02") in the service's
// configured timezone. Day identity is local midnight; there is no
// timezone-travel compensation.
type DayKey string

// DayKeyFor returns the DayKey of the instant t in loc.
func DayKeyFor(t time.Time, loc *time.Location) DayKey {
	return DayKey(t.In(loc).Format(dayKeyLayout))
}

func (d DayKey) String() string { return string(d) }

// Time returns local midnight of the day in loc.
func (d DayKey) Time(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyLayout, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day key %q: %w", d, err)
	}
	return t, nil
}

// Prev returns the previous calendar day. Calendar arithmetic is
// timezone-independent once a day is keyed, so UTC is used internally.
// An unparsable key returns itself; keys produced by DayKeyFor always parse.
func (d DayKey) Prev() DayKey {
	t, err := time.ParseInLocation(dayKeyLayout, string(d), time.UTC)
	if err != nil {
		return d
	}
	return DayKey(t.AddDate(0, 0, -1).Format(dayKeyLayout))
}

// WidgetSession is one row per (user, calendar day) of the daily spotlight
// feature. Created lazily on first access, mutated in place for the rest of
// the day, never deleted by the learning core.
type WidgetSession struct {
	ID                 string // "{userID}_{date}"
	UserID             uuid.UUID
	Date               DayKey
	CurrentFlashcardID *uuid.UUID
	AttemptedIDs       []uuid.UUID // deduplicated, order irrelevant
	Revealed           bool
	Completed          bool
	CompletedAt        *time.Time
	UpdatedAt          time.Time
}

// WidgetSessionID builds the composite session key.
func WidgetSessionID(userID uuid.UUID, date DayKey) string {
	return fmt.Sprintf("%s_%s", userID, date)
}

// NewWidgetSession creates the initial session row for a (user, day) pair:
// no current item, not revealed, not completed.
func NewWidgetSession(userID uuid.UUID, date DayKey, now time.Time) *WidgetSession {
	return &WidgetSession{
		ID:        WidgetSessionID(userID, date),
		UserID:    userID,
		Date:      date,
		UpdatedAt: now,
	}
}

// AddAttempted records a flashcard as attempted today. Duplicates are
// dropped so the exclusion list stays a set.
func (s *WidgetSession) AddAttempted(id uuid.UUID) {
	for _, existing := range s.AttemptedIDs {
		if existing == id {
			return
		}
	}
	s.AttemptedIDs = append(s.AttemptedIDs, id)
}

// WordHistoryRecord is the permanent record of a flashcard answered
// correctly in the daily spotlight. Used purely as an exclusion set for
// future selection; append/update only.
type WordHistoryRecord struct {
	UserID         uuid.UUID
	FlashcardID    uuid.UUID
	FirstShownDate DayKey
	LastShownDate  DayKey
	ShownCount     int
	Correct        bool
}

// UserStreak tracks consecutive-day engagement. Current never exceeds Best
// after an update, and a gap resets Current to 1 (the activity itself is
// day one of the new streak), never to 0.
type UserStreak struct {
	UserID         uuid.UUID
	Current        int
	Best           int
	LastActiveDate *DayKey
	UpdatedAt      time.Time
}

// Advance applies one day of activity dated today.
// Idempotent for repeated activity on the same day.
func (s *UserStreak) Advance(today DayKey) {
	if s.LastActiveDate != nil && *s.LastActiveDate == today {
		return
	}
	if s.LastActiveDate != nil && *s.LastActiveDate == today.Prev() {
		s.Current++
	} else {
		s.Current = 1
	}
	if s.Current > s.Best {
		s.Best = s.Current
	}
	d := today
	s.LastActiveDate = &d
}

// DailyState is the closed five-state result of every daily operation.
// Kind selects which of the remaining fields are meaningful:
//   - CARD_HIDDEN / CARD_REVEALED → Flashcard
//   - DONE_TODAY                  → StreakCurrent, StreakBest
//   - EXHAUSTED                   → Message
type DailyState struct {
	Kind          DailyStateKind
	Date          DayKey
	Flashcard     *Flashcard
	StreakCurrent int
	StreakBest    int
	Message       string
}
