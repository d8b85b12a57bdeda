package models

// Owner represents the registered party who owns listed properties
type Owner struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Creci      string `json:"creci"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	CityRegion string `json:"city_region"`
	PostalCode string `json:"postal_code"`

	Properties []Property `gorm:"foreignKey:OwnerID" json:"-"`
}

// TableName specifies the table name for Owner
func (Owner) TableName() string {
	return "owners"
}
