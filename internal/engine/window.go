package engine

import (
	"time"

	"github.com/theo/arena-forge/internal/domain"
)

const smallWindow = 15 * time.Minute

// ArenaWindow maps wall-clock time to the current season of a cadence.
// small seasons are 15-minute epoch-aligned buckets, daily seasons are UTC
// calendar days, weekly seasons are UTC Monday-aligned weeks. lockAt is
// informational; resultAt gates settlement.
func ArenaWindow(arenaType domain.ArenaType, now time.Time) (domain.ArenaWindow, error) {
	now = now.UTC()

	switch arenaType {
	case domain.ArenaSmall:
		ms := now.UnixMilli()
		startMs := ms - ms%smallWindow.Milliseconds()
		start := time.UnixMilli(startMs).UTC()
		return window(arenaType, "small:"+start.Format(time.RFC3339), start, start.Add(smallWindow)), nil

	case domain.ArenaDaily:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return window(arenaType, "daily:"+start.Format("2006-01-02"), start, start.Add(24*time.Hour)), nil

	case domain.ArenaWeekly:
		// Monday-aligned: Sunday counts as six days past Monday.
		offset := (int(now.Weekday()) + 6) % 7
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		start := day.AddDate(0, 0, -offset)
		return window(arenaType, "weekly:"+start.Format("2006-01-02"), start, start.Add(7*24*time.Hour)), nil
	}

	return domain.ArenaWindow{}, domain.ErrUnknownArenaType
}

func window(arenaType domain.ArenaType, seasonID string, start, result time.Time) domain.ArenaWindow {
	return domain.ArenaWindow{
		ArenaType:     arenaType,
		SeasonID:      seasonID,
		LockAt:        start,
		ResultAt:      result,
		WindowStartAt: start,
	}
}
