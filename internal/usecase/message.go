package usecase

import (
	"context"
	"fmt"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/metrics"
	"github.com/aselbek/jobboard/internal/repository"
)

type MessageUsecase struct {
	repo repository.MessageRepository
}

func NewMessageUsecase(repo repository.MessageRepository) *MessageUsecase {
	return &MessageUsecase{repo: repo}
}

type SendMessageInput struct {
	SenderID   string
	ReceiverID string
	Body       string
	JobID      *string
}

func (u *MessageUsecase) Send(ctx context.Context, input SendMessageInput) (*domain.Message, error) {
	created, err := u.repo.Create(ctx, &domain.Message{
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Body:       input.Body,
		JobID:      input.JobID,
	})
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	metrics.MessagesSentTotal.Inc()
	return created, nil
}

// Thread returns the conversation between the caller and the other user,
// ascending by send time. Fetching advances incoming "sent" messages to
// "delivered", so the 3-second client poll converges without a separate
// acknowledgement call. Transitions are monotonic; repeated polls are
// no-ops once everything is delivered.
func (u *MessageUsecase) Thread(ctx context.Context, callerID, otherID string, jobID *string) ([]*domain.Message, error) {
	messages, err := u.repo.Thread(ctx, callerID, otherID, jobID)
	if err != nil {
		return nil, fmt.Errorf("get thread: %w", err)
	}
	return messages, nil
}

// MarkRead advances every message from otherID to the caller to "read".
// Idempotent.
func (u *MessageUsecase) MarkRead(ctx context.Context, callerID, otherID string, jobID *string) error {
	if err := u.repo.MarkRead(ctx, callerID, otherID, jobID); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// Delete removes a message outright. Either party may delete; there is
// no per-user "delete for me".
func (u *MessageUsecase) Delete(ctx context.Context, callerID, messageID string) error {
	msg, err := u.repo.GetByID(ctx, messageID)
	if err != nil {
		return fmt.Errorf("get message: %w", err)
	}
	if msg.SenderID != callerID && msg.ReceiverID != callerID {
		return domain.ErrNotMessageParty
	}

	if err := u.repo.Delete(ctx, messageID); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}
