package models

import "time"

// Interaction event kinds.
const (
	EventCall            = "call"
	EventVisit           = "visit"
	EventAppointment     = "appointment"
	EventContractSigning = "contract_signing"
	EventDocumentSent    = "document_sent"
	EventMessage         = "message"
	EventOther           = "other"
)

// InteractionEvent is one dated log entry of contact with an interested
// party. The ledger is append-only; rows are only removed by cascade.
// EventDate is a calendar date and may lie in the past or future,
// independent of CreatedAt.
type InteractionEvent struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	InterestedPartyID uint      `gorm:"index;not null" json:"interested_party_id"`
	EventDate         time.Time `gorm:"not null" json:"event_date"`
	Kind              string    `json:"kind"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
}

// TableName specifies the table name for InteractionEvent
func (InteractionEvent) TableName() string {
	return "interaction_events"
}
