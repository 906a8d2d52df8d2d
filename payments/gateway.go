package payments

import "fmt"

// Customer is the processor-side handle for a billing customer.
type Customer struct {
	ID string `json:"id"`
}

// Charge is the processor-side handle for a one-time payment.
type Charge struct {
	ID string `json:"id"`
}

type Gateway interface {
	CreateSubscription(description, email, cardToken, plan string) (*Customer, error)
	CreateOneTimeCharge(description, cardToken string, amount int64, currency string) (*Charge, error)
}

// ProcessorError carries the processor's own diagnosis of a failed
// call (declined card, bad token). Callers re-render forms with
// Message rather than retrying.
type ProcessorError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("payment processor error (status %d, code %q): %s", e.StatusCode, e.Code, e.Message)
}
