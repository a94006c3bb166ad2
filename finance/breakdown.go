package finance

import "github.com/kshitijtanwar/wealthwise/models"

// NewBreakdown validates and constructs a salary breakdown. It is the
// only way a Breakdown should come into existence: all parts must be
// non-negative and savings+expenses+misc must not exceed salary. On
// success the returned value replaces the user's stored breakdown
// wholesale.
func NewBreakdown(salary, savings, expenses, misc float64) (models.Breakdown, error) {
	if salary < 0 || savings < 0 || expenses < 0 || misc < 0 {
		return models.Breakdown{}, ErrNegativeAmount
	}

	total := savings + expenses + misc
	if total > salary {
		return models.Breakdown{}, &BreakdownExceedsSalaryError{Excess: total - salary}
	}

	return models.Breakdown{
		Savings:  savings,
		Expenses: expenses,
		Misc:     misc,
	}, nil
}
