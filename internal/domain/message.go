package domain

import (
	"errors"
	"time"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrNotMessageParty = errors.New("caller is neither sender nor receiver")
)

type MessageStatus string

// Delivery status is monotonic: sent -> delivered -> read, never backward.
const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)

type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	Body       string
	JobID      *string // optional job context
	Status     MessageStatus
	SentAt     time.Time
}
