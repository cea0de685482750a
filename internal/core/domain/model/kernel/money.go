package kernel

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or Zero")
	// ErrMoneyOverflow is the cause attached when an arithmetic result does not fit in int64.
	ErrMoneyOverflow = errors.New("amount overflows int64")
)

// Money is a non-negative amount expressed in minor currency units.
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney returns an amount of minor units. Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}
	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}
	return m, nil
}

// Zero returns a constructed zero amount.
func Zero() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

// Validate returns ErrMoneyIsNotConstructed for a zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns m + other. A sum past math.MaxInt64 is rejected.
func (m Money) Add(other Money) (Money, error) {
	if other.amount > math.MaxInt64-m.amount {
		return Money{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"amount", fmt.Sprintf("%d + %d", m.amount, other.amount), 0, int64(math.MaxInt64), ErrMoneyOverflow)
	}
	return Money{amount: m.amount + other.amount, guard: guard.NewConstructorGuard()}, nil
}

// Times returns m multiplied by a non-negative count. A product past
// math.MaxInt64 is rejected.
func (m Money) Times(count int) (Money, error) {
	if count < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("count", fmt.Errorf("%d is negative", count))
	}
	if count > 0 && m.amount > math.MaxInt64/int64(count) {
		return Money{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"amount", fmt.Sprintf("%d * %d", m.amount, count), 0, int64(math.MaxInt64), ErrMoneyOverflow)
	}
	return Money{amount: m.amount * int64(count), guard: guard.NewConstructorGuard()}, nil
}

// IsEqual compares the amounts of two constructed values.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}

func (m *Money) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", amount))
	}
	m.amount = amount
	return nil
}
