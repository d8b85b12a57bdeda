package store

import (
	"context"

	"imobicrm/internal/models"
)

// CategoryAny disables the category predicate in a PropertyFilter.
const CategoryAny = "any"

// PropertyFilter holds the recognized listing predicates. All supplied
// predicates are combined with AND; zero values contribute no predicate
// at all. In particular a MinPrice of exactly zero means "no lower
// bound", not "price >= 0" — callers depend on this.
type PropertyFilter struct {
	Category   string
	MinPrice   float64
	MaxPrice   float64
	MinRooms   int
	District   string
	CityRegion string
	Code       string
	OwnerID    uint
}

// PropertyRow is a listing result enriched with the owner display name.
// OwnerName is empty when the owner row is absent.
type PropertyRow struct {
	models.Property
	OwnerName string `json:"owner_name"`
}

// Store defines the persistence contract. Every operation is a
// synchronous unit of work; cascading deletes are transactional.
type Store interface {
	CreateOwner(ctx context.Context, owner *models.Owner) error
	GetOwner(ctx context.Context, id uint) (*models.Owner, error)
	ListOwners(ctx context.Context) ([]models.Owner, error)

	CreateProperty(ctx context.Context, property *models.Property) error
	GetProperty(ctx context.Context, id uint) (*models.Property, error)
	ListProperties(ctx context.Context, filter PropertyFilter) ([]PropertyRow, error)
	DeleteProperty(ctx context.Context, id uint) error

	CreateMedia(ctx context.Context, media *models.Media) error
	ListMedia(ctx context.Context, propertyID uint) ([]models.Media, error)

	CreateInterestedParty(ctx context.Context, party *models.InterestedParty) error
	GetInterestedParty(ctx context.Context, id uint) (*models.InterestedParty, error)
	ListInterestedParties(ctx context.Context, propertyID uint) ([]models.InterestedParty, error)
	ListAllInterestedParties(ctx context.Context) ([]models.InterestedParty, error)
	DeleteInterestedParty(ctx context.Context, id uint) error

	AppendInteraction(ctx context.Context, event *models.InteractionEvent) error
	ListInteractions(ctx context.Context, partyID uint) ([]models.InteractionEvent, error)
	ListAllInteractions(ctx context.Context) ([]models.InteractionEvent, error)
}
