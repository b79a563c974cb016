package billcycle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finanzas-backend/internal/domain"
)

func day(i int) *int { return &i }

func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func creditCardBill(cutoff, deadline int) *domain.Bill {
	return &domain.Bill{
		Type:            domain.BillTypeCreditCard,
		CutoffDate:      day(cutoff),
		PaymentDeadline: day(deadline),
	}
}

func serviceBill(deadline int) *domain.Bill {
	return &domain.Bill{
		Type:            domain.BillTypeService,
		PaymentDeadline: day(deadline),
	}
}

func payment(amount float64, paidAt time.Time) domain.Payment {
	return domain.Payment{Amount: decimal.NewFromFloat(amount), PaidAt: paidAt}
}

func TestTotalPaid(t *testing.T) {
	t.Run("Empty history", func(t *testing.T) {
		a := NewAt(serviceBill(15), nil, date(2025, time.March, 10))
		assert.True(t, a.TotalPaid().IsZero())
	})

	t.Run("Sums all amounts", func(t *testing.T) {
		payments := []domain.Payment{
			payment(10, date(2025, time.March, 5)),
			payment(5, date(2025, time.February, 5)),
		}
		a := NewAt(serviceBill(15), payments, date(2025, time.March, 10))
		assert.True(t, a.TotalPaid().Equal(decimal.NewFromInt(15)))
	})
}

func TestAveragePayment(t *testing.T) {
	t.Run("Empty history has no division by zero", func(t *testing.T) {
		a := NewAt(serviceBill(15), nil, date(2025, time.March, 10))
		assert.True(t, a.AveragePayment().IsZero())
	})

	t.Run("Average of two payments", func(t *testing.T) {
		payments := []domain.Payment{
			payment(10, date(2025, time.March, 5)),
			payment(20, date(2025, time.February, 5)),
		}
		a := NewAt(serviceBill(15), payments, date(2025, time.March, 10))
		assert.True(t, a.AveragePayment().Equal(decimal.NewFromInt(15)))
	})
}

func TestNextPaymentDue(t *testing.T) {
	t.Run("Nil when no deadline configured", func(t *testing.T) {
		bill := &domain.Bill{Type: domain.BillTypeService}
		a := NewAt(bill, nil, date(2025, time.March, 10))
		assert.Nil(t, a.NextPaymentDue())
	})

	t.Run("Stays in current month before the deadline day", func(t *testing.T) {
		a := NewAt(serviceBill(15), nil, date(2025, time.March, 10))
		next := a.NextPaymentDue()
		require.NotNil(t, next)
		assert.Equal(t, date(2025, time.March, 15), *next)
	})

	t.Run("Rolls to next month after the deadline day", func(t *testing.T) {
		a := NewAt(serviceBill(15), nil, date(2025, time.March, 20))
		next := a.NextPaymentDue()
		require.NotNil(t, next)
		assert.Equal(t, date(2025, time.April, 15), *next)
	})

	t.Run("December rolls to January of the next year", func(t *testing.T) {
		a := NewAt(serviceBill(5), nil, date(2025, time.December, 20))
		next := a.NextPaymentDue()
		require.NotNil(t, next)
		assert.Equal(t, date(2026, time.January, 5), *next)
	})

	t.Run("Deadline 31 clamps to Feb 28 in a non-leap year", func(t *testing.T) {
		a := NewAt(serviceBill(31), nil, date(2025, time.February, 10))
		next := a.NextPaymentDue()
		require.NotNil(t, next)
		assert.Equal(t, date(2025, time.February, 28), *next)
	})

	t.Run("Deadline 31 clamps to Feb 29 in a leap year", func(t *testing.T) {
		a := NewAt(serviceBill(31), nil, date(2024, time.February, 10))
		next := a.NextPaymentDue()
		require.NotNil(t, next)
		assert.Equal(t, date(2024, time.February, 29), *next)
	})

	t.Run("Deadline 31 clamps to 30 in a thirty-day month", func(t *testing.T) {
		a := NewAt(serviceBill(31), nil, date(2025, time.April, 10))
		next := a.NextPaymentDue()
		require.NotNil(t, next)
		assert.Equal(t, date(2025, time.April, 30), *next)
	})
}

func TestDueSoon(t *testing.T) {
	tests := []struct {
		name     string
		deadline *int
		now      time.Time
		want     bool
	}{
		{"No deadline", nil, date(2025, time.March, 10), false},
		{"Due today", day(15), date(2025, time.March, 15), true},
		{"Due in seven days", day(17), date(2025, time.March, 10), true},
		{"Due in eight days", day(18), date(2025, time.March, 10), false},
		{"Deadline passed rolls a month out", day(15), date(2025, time.March, 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := &domain.Bill{Type: domain.BillTypeService, PaymentDeadline: tt.deadline}
			a := NewAt(bill, nil, tt.now)
			assert.Equal(t, tt.want, a.DueSoon())
		})
	}
}

func TestOverdue(t *testing.T) {
	t.Run("False when no deadline", func(t *testing.T) {
		bill := &domain.Bill{Type: domain.BillTypeService}
		a := NewAt(bill, nil, date(2025, time.March, 20))
		assert.False(t, a.Overdue())
	})

	t.Run("True when the due date has passed within the day", func(t *testing.T) {
		// 18:00 on the deadline day: the date-only due instant is behind.
		now := time.Date(2025, time.March, 15, 18, 0, 0, 0, time.UTC)
		a := NewAt(serviceBill(15), nil, now)
		assert.True(t, a.Overdue())
	})

	t.Run("False when the due date is ahead", func(t *testing.T) {
		a := NewAt(serviceBill(15), nil, date(2025, time.March, 10))
		assert.False(t, a.Overdue())
	})
}

func TestStatus_NoPayments(t *testing.T) {
	a := NewAt(creditCardBill(25, 5), nil, date(2025, time.March, 26))
	assert.Equal(t, domain.CycleStatusNA, a.Status())
}

func TestStatus_ZeroAmountSkips(t *testing.T) {
	// An explicit zero payment wins over all date logic, for any type.
	bills := map[string]*domain.Bill{
		"credit_card":  creditCardBill(25, 5),
		"service":      serviceBill(15),
		"subscription": {Type: domain.BillTypeSubscription, PaymentDeadline: day(15)},
	}
	for name, bill := range bills {
		t.Run(name, func(t *testing.T) {
			payments := []domain.Payment{payment(0, date(2025, time.March, 2))}
			a := NewAt(bill, payments, date(2025, time.March, 26))
			assert.Equal(t, domain.CycleStatusSkipped, a.Status())
		})
	}
}

func TestStatus_CreditCard(t *testing.T) {
	t.Run("Missing cutoff or deadline is NA", func(t *testing.T) {
		payments := []domain.Payment{payment(100, date(2025, time.March, 2))}
		bill := &domain.Bill{Type: domain.BillTypeCreditCard, PaymentDeadline: day(5)}
		a := NewAt(bill, payments, date(2025, time.March, 26))
		assert.Equal(t, domain.CycleStatusNA, a.Status())

		bill = &domain.Bill{Type: domain.BillTypeCreditCard, CutoffDate: day(25)}
		a = NewAt(bill, payments, date(2025, time.March, 26))
		assert.Equal(t, domain.CycleStatusNA, a.Status())
	})

	// Cutoff 25, deadline 5: the deadline falls in the month after the cutoff.
	t.Run("Past cutoff without payment is due", func(t *testing.T) {
		payments := []domain.Payment{payment(100, date(2025, time.March, 10))}
		a := NewAt(creditCardBill(25, 5), payments, date(2025, time.March, 26))
		assert.Equal(t, domain.CycleStatusDue, a.Status())
	})

	t.Run("Past cutoff and deadline without payment is overdue", func(t *testing.T) {
		payments := []domain.Payment{payment(100, date(2025, time.March, 10))}
		a := NewAt(creditCardBill(25, 5), payments, date(2025, time.April, 6))
		assert.Equal(t, domain.CycleStatusOverdue, a.Status())
	})

	t.Run("Unpaid since last month's cutoff past its deadline is overdue", func(t *testing.T) {
		// Cutoff Feb 25, deadline Mar 5: the latest payment predates the
		// statement close and both boundaries have passed.
		payments := []domain.Payment{payment(100, date(2025, time.February, 20))}
		a := NewAt(creditCardBill(25, 5), payments, date(2025, time.March, 20))
		assert.Equal(t, domain.CycleStatusOverdue, a.Status())
	})

	t.Run("Payment after cutoff is paid", func(t *testing.T) {
		payments := []domain.Payment{payment(100, date(2025, time.March, 28))}
		a := NewAt(creditCardBill(25, 5), payments, date(2025, time.March, 30))
		assert.Equal(t, domain.CycleStatusPaid, a.Status())
	})

	t.Run("Payment before a passed deadline settled the prior cycle", func(t *testing.T) {
		// Cutoff Mar 25, deadline Apr 5. Paid Mar 28, now Apr 6: the payment
		// predates the deadline, so the current obligation is still open.
		payments := []domain.Payment{payment(100, date(2025, time.March, 28))}
		a := NewAt(creditCardBill(25, 5), payments, date(2025, time.April, 6))
		assert.Equal(t, domain.CycleStatusDue, a.Status())
	})

	t.Run("Deadline equal to cutoff stays in the cutoff month", func(t *testing.T) {
		// Cutoff 20, deadline 20: same-day deadline, same month.
		payments := []domain.Payment{payment(100, date(2025, time.March, 10))}
		a := NewAt(creditCardBill(20, 20), payments, date(2025, time.March, 21))
		// Today is past both cutoff and deadline with no qualifying payment.
		assert.Equal(t, domain.CycleStatusOverdue, a.Status())
	})

	t.Run("Deadline one day after cutoff stays in the cutoff month", func(t *testing.T) {
		payments := []domain.Payment{payment(100, date(2025, time.March, 10))}
		a := NewAt(creditCardBill(20, 21), payments, date(2025, time.March, 21))
		// Past the cutoff, deadline day not yet over.
		assert.Equal(t, domain.CycleStatusDue, a.Status())
	})

	t.Run("Cutoff on a month-end day clamps", func(t *testing.T) {
		// Cutoff 31 in April resolves to Apr 30. On May 1 the April statement
		// is closed and unpaid.
		payments := []domain.Payment{payment(100, date(2025, time.April, 10))}
		a := NewAt(creditCardBill(31, 10), payments, date(2025, time.May, 1))
		assert.Equal(t, domain.CycleStatusDue, a.Status())
	})

	t.Run("On the cutoff day the relevant cutoff is last month", func(t *testing.T) {
		// now.day == cutoff: the current statement has not closed, so the
		// Feb 25 cutoff and its Mar 5 deadline apply. Paid Mar 6, after the
		// deadline, covers that cycle.
		payments := []domain.Payment{payment(100, date(2025, time.March, 6))}
		a := NewAt(creditCardBill(25, 5), payments, date(2025, time.March, 25))
		assert.Equal(t, domain.CycleStatusPaid, a.Status())
	})
}

func TestStatus_Service(t *testing.T) {
	t.Run("Missing deadline is NA", func(t *testing.T) {
		payments := []domain.Payment{payment(100, date(2025, time.February, 10))}
		bill := &domain.Bill{Type: domain.BillTypeService}
		a := NewAt(bill, payments, date(2025, time.March, 20))
		assert.Equal(t, domain.CycleStatusNA, a.Status())
	})

	t.Run("No payment this period past the deadline is due", func(t *testing.T) {
		payments := []domain.Payment{payment(100, date(2025, time.February, 10))}
		a := NewAt(serviceBill(15), payments, date(2025, time.March, 20))
		assert.Equal(t, domain.CycleStatusDue, a.Status())
	})

	t.Run("No payment this period before the deadline is NA", func(t *testing.T) {
		payments := []domain.Payment{payment(100, date(2025, time.February, 10))}
		a := NewAt(serviceBill(15), payments, date(2025, time.March, 10))
		assert.Equal(t, domain.CycleStatusNA, a.Status())
	})

	t.Run("Payment this period is paid", func(t *testing.T) {
		payments := []domain.Payment{payment(100, date(2025, time.March, 16))}
		a := NewAt(serviceBill(15), payments, date(2025, time.March, 20))
		assert.Equal(t, domain.CycleStatusPaid, a.Status())
	})

	t.Run("Subscription follows the same rule", func(t *testing.T) {
		bill := &domain.Bill{Type: domain.BillTypeSubscription, PaymentDeadline: day(15)}
		payments := []domain.Payment{payment(100, date(2025, time.February, 10))}
		a := NewAt(bill, payments, date(2025, time.March, 20))
		assert.Equal(t, domain.CycleStatusDue, a.Status())
	})
}

func TestStatus_UnknownTypeIsNA(t *testing.T) {
	payments := []domain.Payment{payment(100, date(2025, time.March, 10))}
	bill := &domain.Bill{Type: "loan", PaymentDeadline: day(15)}
	a := NewAt(bill, payments, date(2025, time.March, 20))
	assert.Equal(t, domain.CycleStatusNA, a.Status())
}

func TestAnalysis(t *testing.T) {
	t.Run("Empty history", func(t *testing.T) {
		a := NewAt(serviceBill(15), nil, date(2025, time.March, 10))
		got := a.Analysis()
		assert.False(t, got.HasPayments)
		assert.Equal(t, 0, got.TotalPayments)
		assert.Equal(t, domain.CycleStatusNA, got.Status)
		assert.True(t, got.TotalPaid.IsZero())
	})

	t.Run("Snapshot is idempotent", func(t *testing.T) {
		payments := []domain.Payment{
			payment(120, date(2025, time.March, 16)),
			payment(80, date(2025, time.February, 14)),
		}
		a := NewAt(serviceBill(15), payments, date(2025, time.March, 20))
		first := a.Analysis()
		second := a.Analysis()
		assert.Equal(t, first, second)

		assert.True(t, first.HasPayments)
		assert.Equal(t, 2, first.TotalPayments)
		assert.Equal(t, domain.CycleStatusPaid, first.Status)
		assert.True(t, first.TotalPaid.Equal(decimal.NewFromInt(200)))
		assert.True(t, first.AveragePayment.Equal(decimal.NewFromInt(100)))
		require.NotNil(t, first.NextPaymentDue)
		assert.Equal(t, date(2025, time.April, 15), *first.NextPaymentDue)
	})
}
