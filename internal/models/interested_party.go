package models

import "time"

// InterestedParty statuses, in pipeline order.
const (
	StatusNew       = "new"
	StatusInContact = "in_contact"
	StatusProposal  = "proposal"
	StatusClosed    = "closed"
)

// InterestedParty is a prospective buyer or renter tracked against one
// property. ProposedPrice is nil when the prospect never named a value;
// a stored zero is a real proposal of zero.
type InterestedParty struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID    uint     `gorm:"index;not null" json:"property_id"`
	Property      *Property `gorm:"foreignKey:PropertyID" json:"-"`
	Name          string   `gorm:"not null" json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Message       string   `json:"message"`
	Status        string   `json:"status"`
	ProposedPrice *float64 `json:"proposed_price"`
	CreatedAt     time.Time `json:"created_at"`

	Interactions []InteractionEvent `gorm:"foreignKey:InterestedPartyID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for InterestedParty
func (InterestedParty) TableName() string {
	return "interested_parties"
}
