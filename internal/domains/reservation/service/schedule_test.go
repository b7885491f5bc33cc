package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tavola/config"
	"tavola/internal/domains/reservation/service"
)

func scheduleConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Reservation.SlotCapacity = map[string]int{"pranzo": 40, "cena": 60}

	return cfg
}

func TestScheduleChecker_IsSlotOpen(t *testing.T) {
	tests := []struct {
		name           string
		closedWeekdays []int
		closedRanges   []string
		date           string
		slotID         string
		want           bool
		wantErr        bool
	}{
		{
			name: "plain weekday is open",
			date: "2026-09-10", slotID: "cena",
			want: true,
		},
		{
			name: "unknown slot is closed",
			date: "2026-09-10", slotID: "merenda",
			want: false,
		},
		{
			name:           "closed weekday",
			closedWeekdays: []int{1}, // Monday
			date:           "2026-09-07", slotID: "pranzo",
			want: false,
		},
		{
			name:           "day after the closed weekday is open",
			closedWeekdays: []int{1},
			date:           "2026-09-08", slotID: "pranzo",
			want: true,
		},
		{
			name:         "single closed date",
			closedRanges: []string{"2026-12-25"},
			date:         "2026-12-25", slotID: "cena",
			want: false,
		},
		{
			name:         "inside a closed range",
			closedRanges: []string{"2026-08-10:2026-08-20"},
			date:         "2026-08-15", slotID: "cena",
			want: false,
		},
		{
			name:         "range bounds are inclusive",
			closedRanges: []string{"2026-08-10:2026-08-20"},
			date:         "2026-08-20", slotID: "cena",
			want: false,
		},
		{
			name:         "day after the range is open",
			closedRanges: []string{"2026-08-10:2026-08-20"},
			date:         "2026-08-21", slotID: "cena",
			want: true,
		},
		{
			name: "malformed date",
			date: "21-08-2026", slotID: "cena",
			wantErr: true,
		},
		{
			name:         "malformed closed range",
			closedRanges: []string{"not-a-date"},
			date:         "2026-09-10", slotID: "cena",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := scheduleConfig()
			cfg.Reservation.Schedule.ClosedWeekdays = tt.closedWeekdays
			cfg.Reservation.Schedule.ClosedRanges = tt.closedRanges

			checker := service.NewScheduleChecker(cfg)

			open, err := checker.IsSlotOpen(tt.date, tt.slotID)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, open)
		})
	}
}
