package repository

import (
	"context"

	"github.com/aselbek/jobboard/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	// Thread returns the conversation between callerID and otherID in
	// ascending send order, optionally scoped to jobID. Before the final
	// read it advances every still-"sent" message addressed to the caller
	// to "delivered" — fetching a thread is not side-effect-free.
	Thread(ctx context.Context, callerID, otherID string, jobID *string) ([]*domain.Message, error)
	// MarkRead advances every not-yet-read message from otherID to
	// callerID (optionally scoped to jobID) to "read". Idempotent.
	MarkRead(ctx context.Context, callerID, otherID string, jobID *string) error
	Delete(ctx context.Context, id string) error
}
