package entities

import (
	"strings"
	"time"
)

// Payment is an immutable record of money received against a policy.
// There is no update or delete path.
type Payment struct {
	PaymentID     string
	ApplicationID string
	Amount        float64
	Method        string
	Reference     string
	PaidAt        time.Time
	CreatedAt     time.Time
}

func (p Payment) ValidateCreate() bool {
	return strings.TrimSpace(p.ApplicationID) != "" &&
		p.Amount > 0 &&
		strings.TrimSpace(p.Method) != ""
}
