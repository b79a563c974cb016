package jobs

import (
	"context"
	"time"

	"finanzas-backend/internal/billcycle"
	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/logger"
)

// SendDueSoonReminders emails every user whose active bills fall due within
// the reminder window.
func (jr *JobRunner) SendDueSoonReminders() {
	jr.runWithRecovery("SendDueSoonReminders", func() {
		ctx := context.Background()

		jr.forEachAnalyzedBill(ctx, func(user *domain.User, bill *domain.Bill, analysis billcycle.Analysis) {
			if !NeedsDueSoonReminder(analysis) {
				return
			}
			if err := jr.services.Email.SendDueSoonReminder(ctx, user.Email, user.Name, bill.Name, *analysis.NextPaymentDue); err != nil {
				logger.Error("Failed to send due soon reminder",
					"user_id", user.ID, "bill_id", bill.ID, "error", err)
			}
		})
	})
}

// SendOverdueNotices emails every user whose active bills have passed their
// payment date unpaid.
func (jr *JobRunner) SendOverdueNotices() {
	jr.runWithRecovery("SendOverdueNotices", func() {
		ctx := context.Background()

		jr.forEachAnalyzedBill(ctx, func(user *domain.User, bill *domain.Bill, analysis billcycle.Analysis) {
			if analysis.Status != domain.CycleStatusOverdue {
				return
			}
			dueDate := OverdueNoticeDate(analysis, time.Now())
			if err := jr.services.Email.SendOverdueNotice(ctx, user.Email, user.Name, bill.Name, dueDate); err != nil {
				logger.Error("Failed to send overdue notice",
					"user_id", user.ID, "bill_id", bill.ID, "error", err)
			}
		})
	})
}

// NeedsDueSoonReminder decides whether a bill's cycle warrants a reminder
// email. Paid and skipped cycles stay quiet, and an overdue bill gets the
// overdue notice instead, never both.
func NeedsDueSoonReminder(analysis billcycle.Analysis) bool {
	if !analysis.DueSoon || analysis.Overdue || analysis.NextPaymentDue == nil {
		return false
	}
	return analysis.Status != domain.CycleStatusPaid && analysis.Status != domain.CycleStatusSkipped
}

// OverdueNoticeDate picks the date shown in an overdue notice, falling back
// to fallback when the analysis carries no due date.
func OverdueNoticeDate(analysis billcycle.Analysis, fallback time.Time) time.Time {
	if analysis.NextPaymentDue != nil {
		return *analysis.NextPaymentDue
	}
	return fallback
}

// forEachAnalyzedBill runs the cycle analyzer over every active bill and
// hands each result to fn together with the owning user. Users are fetched
// once per run.
func (jr *JobRunner) forEachAnalyzedBill(ctx context.Context, fn func(user *domain.User, bill *domain.Bill, analysis billcycle.Analysis)) {
	bills, err := jr.store.BillRepository.ListActive(ctx)
	if err != nil {
		logger.Error("Failed to list active bills", "error", err)
		return
	}

	users := map[string]*domain.User{}
	for i := range bills {
		bill := &bills[i]

		user, ok := users[bill.UserID]
		if !ok {
			user, err = jr.store.UserRepository.GetByID(ctx, bill.UserID)
			if err != nil {
				logger.Error("Failed to load bill owner", "user_id", bill.UserID, "error", err)
				continue
			}
			users[bill.UserID] = user
		}

		payments, err := jr.store.PaymentRepository.ListByBill(ctx, bill.ID)
		if err != nil {
			logger.Error("Failed to load payments", "bill_id", bill.ID, "error", err)
			continue
		}

		fn(user, bill, billcycle.New(bill, payments).Analysis())
	}
}
