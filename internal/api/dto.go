package api

// createOwnerRequest carries a new owner registration.
type createOwnerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Creci      string `json:"creci"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	CityRegion string `json:"city_region"`
	PostalCode string `json:"postal_code"`
}

// createPropertyRequest carries a new listing. Price crosses the API
// as a BRL-formatted string ("999.999,99"), matching the forms the
// system replaces.
type createPropertyRequest struct {
	OwnerID     uint   `json:"owner_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Rooms       int    `json:"rooms"`
	Bathrooms   int    `json:"bathrooms"`
	Parking     int    `json:"parking"`
	Area        float64 `json:"area"`
	Street      string `json:"street"`
	Number      string `json:"number"`
	Complement  string `json:"complement"`
	District    string `json:"district"`
	CityRegion  string `json:"city_region"`
	PostalCode  string `json:"postal_code"`
}

type createInterestedPartyRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Message       string `json:"message"`
	Status        string `json:"status"`
	ProposedPrice string `json:"proposed_price"` // BRL string, empty means no proposal
}

type appendInteractionRequest struct {
	EventDate string `json:"event_date"` // yyyy-mm-dd
	Kind      string `json:"kind"`
	Notes     string `json:"notes"`
}

type mediaResponse struct {
	Images []string `json:"images"`
	Videos []string `json:"videos"`
}

type uploadResult struct {
	Stored  []string `json:"stored"`
	Skipped []string `json:"skipped"`
}
