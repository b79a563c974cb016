// Package billcycle derives the due/paid state of a bill from its
// configuration and payment history. It is pure computation: no I/O, no
// mutation of its inputs, and every input combination has a defined result.
// Missing configuration or history degrades to CycleStatusNA instead of an
// error.
package billcycle

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"finanzas-backend/internal/domain"
)

// dueSoonWindowDays is the lookahead window for DueSoon.
const dueSoonWindowDays = 7

// Analysis is the full read-only snapshot produced by an Analyzer.
type Analysis struct {
	TotalPaid      decimal.Decimal        `json:"total_paid"`
	AveragePayment decimal.Decimal        `json:"average_payment"`
	NextPaymentDue *time.Time             `json:"next_payment_due,omitempty"`
	Status         domain.BillCycleStatus `json:"status"`
	DueSoon        bool                   `json:"due_soon"`
	Overdue        bool                   `json:"overdue"`
	TotalPayments  int                    `json:"total_payments"`
	HasPayments    bool                   `json:"has_payments"`
}

// Analyzer evaluates one bill against a fixed point in time. It holds no
// state beyond its inputs, so it is safe to share across goroutines and to
// query repeatedly.
//
// Payments must be ordered most-recent-first; only the first entry is
// inspected when classifying the cycle. The payment repository upholds this
// by ordering on paid_at descending. An unordered slice silently produces a
// wrong classification, not a crash.
type Analyzer struct {
	bill     *domain.Bill
	payments []domain.Payment
	now      time.Time
}

// New builds an analyzer pinned to the current wall-clock time.
func New(bill *domain.Bill, payments []domain.Payment) *Analyzer {
	return NewAt(bill, payments, time.Now())
}

// NewAt builds an analyzer pinned to an arbitrary instant, which tests use
// to exercise month boundaries deterministically.
func NewAt(bill *domain.Bill, payments []domain.Payment, now time.Time) *Analyzer {
	return &Analyzer{bill: bill, payments: payments, now: now}
}

// TotalPaid sums every payment amount. Zero for an empty history.
func (a *Analyzer) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range a.payments {
		total = total.Add(p.Amount)
	}
	return total
}

// AveragePayment is TotalPaid over the payment count, zero for an empty
// history.
func (a *Analyzer) AveragePayment() decimal.Decimal {
	if len(a.payments) == 0 {
		return decimal.Zero
	}
	return a.TotalPaid().Div(decimal.NewFromInt(int64(len(a.payments))))
}

// NextPaymentDue resolves the bill's payment deadline to a concrete date.
// Nil when the bill has no deadline configured. When today is already past
// this month's deadline day, the due date rolls to the next month (and to
// January of the next year after December). The day is clamped to the last
// day of the target month, so deadline 31 resolves to Feb 28 rather than
// Mar 3.
func (a *Analyzer) NextPaymentDue() *time.Time {
	if a.bill == nil || a.bill.PaymentDeadline == nil {
		return nil
	}

	month := a.now.Month()
	if a.now.Day() > *a.bill.PaymentDeadline {
		month++
	}
	due := a.monthDay(a.now.Year(), month, *a.bill.PaymentDeadline)
	return &due
}

// DueSoon reports whether the next payment falls within the reminder window:
// zero to seven whole days from now, inclusive.
func (a *Analyzer) DueSoon() bool {
	next := a.NextPaymentDue()
	if next == nil {
		return false
	}
	days := int(math.Ceil(next.Sub(a.now).Hours() / 24))
	return days >= 0 && days <= dueSoonWindowDays
}

// Overdue reports whether the next payment date has strictly passed.
func (a *Analyzer) Overdue() bool {
	next := a.NextPaymentDue()
	if next == nil {
		return false
	}
	return next.Before(a.now)
}

// Status is the cycle state machine. A zero-amount latest payment means the
// user explicitly skipped the period and wins over all date logic. With no
// payments at all, or with the type's required day-of-month fields unset,
// there is nothing to classify and the result is CycleStatusNA.
func (a *Analyzer) Status() domain.BillCycleStatus {
	if a.bill == nil || len(a.payments) == 0 {
		return domain.CycleStatusNA
	}

	latest := a.payments[0]
	if latest.Amount.IsZero() {
		return domain.CycleStatusSkipped
	}

	switch a.bill.Type {
	case domain.BillTypeCreditCard:
		return a.creditCardStatus(latest)
	case domain.BillTypeService, domain.BillTypeSubscription:
		return a.recurringStatus(latest)
	default:
		return domain.CycleStatusNA
	}
}

// creditCardStatus evaluates the two-stage statement cycle: a cutoff closes
// the statement, then a payment deadline follows it. A deadline day that is
// numerically before the cutoff day belongs to the next calendar month; the
// deadline always follows the cutoff chronologically.
func (a *Analyzer) creditCardStatus(latest domain.Payment) domain.BillCycleStatus {
	if a.bill.CutoffDate == nil || a.bill.PaymentDeadline == nil {
		return domain.CycleStatusNA
	}
	cutoffDay := *a.bill.CutoffDate
	deadlineDay := *a.bill.PaymentDeadline

	// Most recent cutoff relative to now: last month's occurrence until
	// today has passed the cutoff day.
	cutoffMonth := a.now.Month()
	if a.now.Day() <= cutoffDay {
		cutoffMonth--
	}
	cutoff := a.monthDay(a.now.Year(), cutoffMonth, cutoffDay)

	deadlineMonth := cutoff.Month()
	deadlineYear := cutoff.Year()
	if deadlineDay < cutoffDay {
		deadlineMonth++
	}
	deadline := a.monthDay(deadlineYear, deadlineMonth, deadlineDay)

	today := a.dateOnly(a.now)
	paid := a.dateOnly(latest.PaidAt)

	if paid.Before(cutoff) {
		// No payment for the current statement yet.
		if today.After(cutoff) {
			if today.After(deadline) {
				return domain.CycleStatusOverdue
			}
			return domain.CycleStatusDue
		}
		return domain.CycleStatusNA
	}

	// A payment exists on or after the cutoff. If the deadline has passed and
	// the payment predates it, it settled a prior obligation, not this one.
	if today.After(deadline) && paid.Before(deadline) {
		return domain.CycleStatusDue
	}
	return domain.CycleStatusPaid
}

// recurringStatus evaluates service and subscription bills, whose period is
// the calendar month with a single deadline day. These types have no
// distinct overdue tier.
func (a *Analyzer) recurringStatus(latest domain.Payment) domain.BillCycleStatus {
	if a.bill.PaymentDeadline == nil {
		return domain.CycleStatusNA
	}
	deadlineDay := *a.bill.PaymentDeadline

	periodStart := time.Date(a.now.Year(), a.now.Month(), 1, 0, 0, 0, 0, a.now.Location())

	// The status compares against this month's deadline occurrence; the
	// rolled-forward date is NextPaymentDue's concern. Rolling here would
	// make the due branch unreachable once the deadline passes.
	deadline := a.monthDay(a.now.Year(), a.now.Month(), deadlineDay)

	today := a.dateOnly(a.now)
	paid := a.dateOnly(latest.PaidAt)

	if paid.Before(periodStart) {
		if today.After(deadline) {
			return domain.CycleStatusDue
		}
		return domain.CycleStatusNA
	}

	if today.After(deadline) && paid.Before(deadline) {
		return domain.CycleStatusDue
	}
	return domain.CycleStatusPaid
}

// Analysis aggregates every derived value into one snapshot. Pure with
// respect to the analyzer's inputs, so repeated calls are identical.
func (a *Analyzer) Analysis() Analysis {
	return Analysis{
		TotalPaid:      a.TotalPaid(),
		AveragePayment: a.AveragePayment(),
		NextPaymentDue: a.NextPaymentDue(),
		Status:         a.Status(),
		DueSoon:        a.DueSoon(),
		Overdue:        a.Overdue(),
		TotalPayments:  len(a.payments),
		HasPayments:    len(a.payments) > 0,
	}
}

// monthDay is the shared safe-date constructor: the given day in the given
// month, with month overflow normalized (January follows December) and the
// day clamped to the month's last day when the month is shorter. Both the
// next-due and cutoff computations go through here so clamping cannot drift
// between them.
func (a *Analyzer) monthDay(year int, month time.Month, day int) time.Time {
	base := time.Date(year, month, 1, 0, 0, 0, 0, a.now.Location())
	d := time.Date(base.Year(), base.Month(), day, 0, 0, 0, 0, a.now.Location())
	if d.Month() != base.Month() && day > 28 {
		// The day spilled into the next month; snap to the last day of the
		// intended one.
		d = time.Date(base.Year(), base.Month()+1, 0, 0, 0, 0, 0, a.now.Location())
	}
	return d
}

// dateOnly strips the time of day for calendar comparisons.
func (a *Analyzer) dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, a.now.Location())
}
