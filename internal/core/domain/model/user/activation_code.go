package user

import (
	"errors"
	"fmt"

	"mealorder/internal/pkg/errs"
	"mealorder/internal/pkg/guard"
)

var ErrActivationCodeIsNotConstructed = errors.New(
	"ActivationCode must be created via NewActivationCode constructor",
)

// ActivationCode is a per-user entitlement to program meals. One active code
// grants one meal per day, so a user's daily order quota equals the number
// of their currently active codes.
type ActivationCode struct {
	code           string
	mealsRemaining int

	guard guard.ConstructorGuard
}

// NewActivationCode creates an activation code with a non-empty code string
// and a non-negative remaining-meal counter.
func NewActivationCode(code string, mealsRemaining int) (ActivationCode, error) {
	if code == "" {
		return ActivationCode{}, errs.NewValueIsRequiredError("code")
	}
	if mealsRemaining < 0 {
		return ActivationCode{}, errs.NewValueIsInvalidErrorWithCause("mealsRemaining",
			fmt.Errorf("%d is negative", mealsRemaining))
	}
	return ActivationCode{
		code:           code,
		mealsRemaining: mealsRemaining,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the code was created through NewActivationCode.
func (c ActivationCode) Validate() error {
	return c.guard.Validate(ErrActivationCodeIsNotConstructed)
}

// Code returns the redeemable code string.
func (c ActivationCode) Code() string {
	return c.code
}

// MealsRemaining returns the remaining-meal counter for this code.
func (c ActivationCode) MealsRemaining() int {
	return c.mealsRemaining
}
