package domain

import "time"

// EventType names a business event published after a commit.
type EventType string

const (
	EventLoanCreated    EventType = "loan.created"
	EventLoanRepaid     EventType = "loan.repaid"
	EventLoanClosed     EventType = "loan.closed"
	EventTradeRecorded  EventType = "trade.recorded"
	EventUdhariSettled  EventType = "udhari.settled"
	EventExpenseCreated EventType = "expense.created"
)

// Event is the envelope for domain events.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	AggregateID string      `json:"aggregateId"`
	OccurredAt  time.Time   `json:"occurredAt"`
	ActorID     string      `json:"actorId"`
	Payload     interface{} `json:"payload"`
}
