package service

import (
	"fmt"
	"strings"
	"time"

	"tavola/config"
	"tavola/shared/constant"
)

// ScheduleChecker answers whether a slot accepts new reservations. The
// ledger never consults it; closing a day hides the slot from new
// bookings without touching capacity already sold.
type ScheduleChecker interface {
	IsSlotOpen(date, slotID string) (bool, error)
}

type configSchedule struct {
	cfg *config.Config
}

func NewScheduleChecker(cfg *config.Config) ScheduleChecker {
	return &configSchedule{cfg: cfg}
}

func (s *configSchedule) IsSlotOpen(date, slotID string) (bool, error) {
	if _, ok := s.cfg.Reservation.SlotCapacity[slotID]; !ok {
		return false, nil
	}

	day, err := time.Parse(constant.SlotDateFormat, date)
	if err != nil {
		return false, fmt.Errorf("invalid slot date %q: %w", date, err)
	}

	for _, weekday := range s.cfg.Reservation.Schedule.ClosedWeekdays {
		if int(day.Weekday()) == weekday {
			return false, nil
		}
	}

	for _, closedRange := range s.cfg.Reservation.Schedule.ClosedRanges {
		from, to, err := parseClosedRange(closedRange)
		if err != nil {
			return false, err
		}

		if !day.Before(from) && !day.After(to) {
			return false, nil
		}
	}

	return true, nil
}

// parseClosedRange reads "from:to" date pairs, e.g.
// "2026-08-10:2026-08-20". A single date closes just that day.
func parseClosedRange(raw string) (time.Time, time.Time, error) {
	parts := strings.SplitN(raw, ":", 2)

	from, err := time.Parse(constant.SlotDateFormat, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid closed range %q: %w", raw, err)
	}

	to := from

	if len(parts) == 2 {
		to, err = time.Parse(constant.SlotDateFormat, parts[1])
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid closed range %q: %w", raw, err)
		}
	}

	return from, to, nil
}
