package ports

import (
	"context"

	"github.com/baditaflorin/go_card_input/internal/core/domain"
)

// Submitter hands a completed card to the payment backend.
type Submitter interface {
	Submit(ctx context.Context, payment domain.Payment) (domain.Receipt, error)
}
