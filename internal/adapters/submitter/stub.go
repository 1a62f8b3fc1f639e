package submitter

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/baditaflorin/go_card_input/internal/core/domain"
	"github.com/baditaflorin/go_card_input/internal/ports"
)

// Stub stands in for the payment backend. It never leaves the process:
// every submission is answered with the configured verdict.
type Stub struct {
	mu      sync.Mutex
	approve bool
	calls   int
	last    domain.Payment
}

// NewStub returns a stub that approves or declines every payment.
func NewStub(approve bool) *Stub {
	return &Stub{approve: approve}
}

var _ ports.Submitter = (*Stub)(nil)

// Submit records the payment and returns the configured verdict.
func (s *Stub) Submit(ctx context.Context, payment domain.Payment) (domain.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return domain.Receipt{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.last = payment

	receipt := domain.Receipt{Approved: s.approve}
	if s.approve {
		receipt.Reference = uuid.NewString()
	}
	return receipt, nil
}

// Calls returns how many submissions reached the stub.
func (s *Stub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Last returns the most recent payment.
func (s *Stub) Last() domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
