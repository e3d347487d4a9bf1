package memory

import (
	"context"
	"sync"
)

// Provisioner records credential-provisioning calls for tests.
type Provisioner struct {
	mu          sync.Mutex
	provisioned []string
	FailNext    error
}

func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

func (p *Provisioner) ProvisionCredentials(_ context.Context, customerID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailNext != nil {
		err := p.FailNext
		p.FailNext = nil
		return err
	}
	p.provisioned = append(p.provisioned, customerID)
	return nil
}

func (p *Provisioner) Provisioned() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.provisioned...)
}
