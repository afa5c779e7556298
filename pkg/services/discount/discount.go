package discount

// ErrorKind identifies which validation rule a ValidationError violated,
// so callers can branch on the kind instead of inspecting message text.
type ErrorKind int

const (
	InvalidAmount ErrorKind = iota
	InvalidPercentage
)

// ValidationError reports an input rejected by Compute.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Compute applies a percentage discount to a base amount and returns the
// final amount: amount - amount*(percentage/100).
//
// Validation runs in a fixed order: amount sign first, then percentage sign,
// then the percentage ceiling. The first violated rule is the one reported,
// so a negative amount wins over an invalid percentage.
func Compute(amount, percentage float64) (float64, error) {
	if amount < 0 {
		return 0, &ValidationError{Kind: InvalidAmount, Message: "amount cannot be negative"}
	}
	if percentage < 0 {
		return 0, &ValidationError{Kind: InvalidPercentage, Message: "percentage cannot be negative"}
	}
	if percentage > 100 {
		return 0, &ValidationError{Kind: InvalidPercentage, Message: "percentage cannot exceed 100%"}
	}

	discountValue := amount * (percentage / 100)
	return amount - discountValue, nil
}
