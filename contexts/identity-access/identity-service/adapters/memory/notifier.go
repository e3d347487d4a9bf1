package memory

import (
	"context"
	"sync"
)

// SentMail is a recorded outbound email for test assertions.
type SentMail struct {
	Kind         string
	To           string
	TempPassword string
	VerifyURL    string
}

// Notifier records emails instead of dispatching them.
type Notifier struct {
	mu   sync.Mutex
	sent []SentMail

	// FailNext makes the next send return an error, for testing the
	// log-and-continue failure semantics.
	FailNext error
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) SendWelcome(_ context.Context, email string, _ string) error {
	return n.record(SentMail{Kind: "welcome", To: email})
}

func (n *Notifier) SendTemporaryCredentials(_ context.Context, email string, tempPassword string, verifyURL string) error {
	return n.record(SentMail{
		Kind:         "temporary_credentials",
		To:           email,
		TempPassword: tempPassword,
		VerifyURL:    verifyURL,
	})
}

func (n *Notifier) record(mail SentMail) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.FailNext != nil {
		err := n.FailNext
		n.FailNext = nil
		return err
	}
	n.sent = append(n.sent, mail)
	return nil
}

func (n *Notifier) Sent() []SentMail {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]SentMail(nil), n.sent...)
}
