package jobs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"finanzas-backend/internal/billcycle"
	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/jobs"
)

func TestNeedsDueSoonReminder(t *testing.T) {
	due := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		analysis billcycle.Analysis
		want     bool
	}{
		{
			name: "Due within window",
			analysis: billcycle.Analysis{
				Status: domain.CycleStatusDue, DueSoon: true, NextPaymentDue: &due,
			},
			want: true,
		},
		{
			name: "Not yet in window",
			analysis: billcycle.Analysis{
				Status: domain.CycleStatusDue, DueSoon: false, NextPaymentDue: &due,
			},
			want: false,
		},
		{
			name: "Already paid",
			analysis: billcycle.Analysis{
				Status: domain.CycleStatusPaid, DueSoon: true, NextPaymentDue: &due,
			},
			want: false,
		},
		{
			name: "Cycle skipped",
			analysis: billcycle.Analysis{
				Status: domain.CycleStatusSkipped, DueSoon: true, NextPaymentDue: &due,
			},
			want: false,
		},
		{
			name: "Overdue gets the notice instead",
			analysis: billcycle.Analysis{
				Status: domain.CycleStatusOverdue, DueSoon: true, Overdue: true, NextPaymentDue: &due,
			},
			want: false,
		},
		{
			name: "No due date",
			analysis: billcycle.Analysis{
				Status: domain.CycleStatusDue, DueSoon: true,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jobs.NeedsDueSoonReminder(tt.analysis))
		})
	}
}

func TestOverdueNoticeDate(t *testing.T) {
	due := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)
	fallback := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

	t.Run("Uses the due date when present", func(t *testing.T) {
		a := billcycle.Analysis{Status: domain.CycleStatusOverdue, NextPaymentDue: &due}
		assert.Equal(t, due, jobs.OverdueNoticeDate(a, fallback))
	})

	t.Run("Falls back without one", func(t *testing.T) {
		a := billcycle.Analysis{Status: domain.CycleStatusOverdue}
		assert.Equal(t, fallback, jobs.OverdueNoticeDate(a, fallback))
	})
}
