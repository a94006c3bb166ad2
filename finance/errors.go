package finance

import (
	"errors"
	"fmt"
)

// ErrNegativeAmount rejects breakdown inputs below zero before the sum
// check runs.
var ErrNegativeAmount = errors.New("amounts must be non-negative")

// BreakdownExceedsSalaryError reports a salary breakdown whose parts sum
// past the declared salary. Excess is how far over the salary the sum is.
type BreakdownExceedsSalaryError struct {
	Excess float64
}

func (e *BreakdownExceedsSalaryError) Error() string {
	return fmt.Sprintf("breakdown exceeds salary by %.2f", e.Excess)
}

// AllocationExceedsSavingsError reports a goal allocation larger than the
// user's declared savings. Excess is the amount over.
type AllocationExceedsSavingsError struct {
	Excess float64
}

func (e *AllocationExceedsSavingsError) Error() string {
	return fmt.Sprintf("invested amount exceeds total savings by %.2f", e.Excess)
}
