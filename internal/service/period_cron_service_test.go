package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextQuarter(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantLabel string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "mid Q1 rolls to Q2",
			now:       time.Date(2026, time.February, 15, 10, 0, 0, 0, time.Local),
			wantLabel: "2026-Q2",
			wantStart: "2026-04-01",
			wantEnd:   "2026-06-30",
		},
		{
			name:      "first day of Q3 rolls to Q4",
			now:       time.Date(2026, time.July, 1, 0, 0, 0, 0, time.Local),
			wantLabel: "2026-Q4",
			wantStart: "2026-10-01",
			wantEnd:   "2026-12-31",
		},
		{
			name:      "Q4 wraps into next year",
			now:       time.Date(2026, time.November, 30, 23, 59, 0, 0, time.Local),
			wantLabel: "2027-Q1",
			wantStart: "2027-01-01",
			wantEnd:   "2027-03-31",
		},
		{
			name:      "last day of March still counts as Q1",
			now:       time.Date(2026, time.March, 31, 12, 0, 0, 0, time.Local),
			wantLabel: "2026-Q2",
			wantStart: "2026-04-01",
			wantEnd:   "2026-06-30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, start, end := NextQuarter(tt.now)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantStart, start.Format("2006-01-02"))
			assert.Equal(t, tt.wantEnd, end.Format("2006-01-02"))
		})
	}
}
