package models

import "time"

// Property categories. A listing is either for sale or for rent.
const (
	CategorySale = "sale"
	CategoryRent = "rent"
)

// ValidCategory reports whether s is a known listing category.
func ValidCategory(s string) bool {
	return s == CategorySale || s == CategoryRent
}

// Property represents a real-estate listing. Code is assigned from the
// row ID at creation time and never changes afterwards.
type Property struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string  `gorm:"uniqueIndex" json:"code"`
	Title       string  `gorm:"not null" json:"title"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Rooms       int     `json:"rooms"`
	Bathrooms   int     `json:"bathrooms"`
	Parking     int     `json:"parking"`
	Area        float64 `json:"area"`
	Street      string  `json:"street"`
	Number      string  `json:"number"`
	Complement  string  `json:"complement"`
	District    string  `json:"district"`
	CityRegion  string  `json:"city_region"`
	PostalCode  string  `json:"postal_code"`

	OwnerID   uint      `gorm:"index;not null" json:"owner_id"`
	Owner     *Owner    `gorm:"foreignKey:OwnerID" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	Media             []Media           `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
	InterestedParties []InterestedParty `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Property
func (Property) TableName() string {
	return "properties"
}
