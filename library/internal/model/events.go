package model

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventLoanCheckedOut EventType = "loan.checked_out"
	EventLoanRenewed    EventType = "loan.renewed"
	EventLoanReturned   EventType = "loan.returned"
	EventLoanOverdue    EventType = "loan.overdue"
	EventBookLiked      EventType = "book.liked"
	EventBookUnliked    EventType = "book.unliked"
	EventBooksImported  EventType = "books.imported"
	EventProfileCreated EventType = "profile.created"
)

type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	UserName   string    `json:"username,omitempty"`
	Payload    any       `json:"payload,omitempty"`
}

type LoanAction string

const (
	LoanCheckout LoanAction = "checkout"
	LoanReturn   LoanAction = "return"
)

// LoanMessage is what the circulation desk publishes on the loans topic.
type LoanMessage struct {
	InstanceID uuid.UUID  `json:"instanceId" validate:"required"`
	Action     LoanAction `json:"action" validate:"required,oneof=checkout return"`
	Borrower   string     `json:"borrower" validate:"required_if=Action checkout"`
	DueBack    Date       `json:"dueBack"`
}
