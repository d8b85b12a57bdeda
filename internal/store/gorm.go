package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"imobicrm/internal/models"
)

type gormStore struct {
	db *gorm.DB
}

// New creates a Store backed by a GORM database handle.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// exists reports whether a row with the given id is present. Runs on
// the handle it is given so callers can keep checks inside their
// transaction.
func exists(db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormStore) CreateOwner(ctx context.Context, owner *models.Owner) error {
	if strings.TrimSpace(owner.Name) == "" {
		return fmt.Errorf("%w: owner name is required", ErrValidation)
	}
	if err := s.db.WithContext(ctx).Create(owner).Error; err != nil {
		return fmt.Errorf("failed to create owner: %w", err)
	}
	return nil
}

func (s *gormStore) GetOwner(ctx context.Context, id uint) (*models.Owner, error) {
	var owner models.Owner
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	return &owner, nil
}

func (s *gormStore) ListOwners(ctx context.Context) ([]models.Owner, error) {
	var owners []models.Owner
	if err := s.db.WithContext(ctx).Order("name").Find(&owners).Error; err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	return owners, nil
}

// CreateProperty inserts the row and backfills the display code derived
// from the assigned ID in the same transaction, so no reader ever
// observes a property without a code.
func (s *gormStore) CreateProperty(ctx context.Context, property *models.Property) error {
	if strings.TrimSpace(property.Title) == "" {
		return fmt.Errorf("%w: property title is required", ErrValidation)
	}
	if property.Category != "" && !models.ValidCategory(property.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, property.Category)
	}
	if property.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Owner{}, property.OwnerID)
		if err != nil {
			return fmt.Errorf("failed to check owner: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: owner %d", ErrReferentialIntegrity, property.OwnerID)
		}

		if err := tx.Create(property).Error; err != nil {
			return fmt.Errorf("failed to create property: %w", err)
		}

		property.Code = fmt.Sprintf("IMO-%04d", property.ID)
		if err := tx.Model(&models.Property{}).
			Where("id = ?", property.ID).
			Update("code", property.Code).Error; err != nil {
			return fmt.Errorf("failed to assign property code: %w", err)
		}
		return nil
	})
}

func (s *gormStore) GetProperty(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &property, nil
}

func (s *gormStore) ListProperties(ctx context.Context, filter PropertyFilter) ([]PropertyRow, error) {
	rows := []PropertyRow{}
	q := s.db.WithContext(ctx).
		Model(&models.Property{}).
		Select("properties.*, COALESCE(owners.name, '') AS owner_name").
		Joins("LEFT JOIN owners ON owners.id = properties.owner_id")
	q = filter.apply(q)
	if err := q.Order("properties.created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return rows, nil
}

// apply adds one parameterized predicate per supplied option.
func (f PropertyFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Category != "" && f.Category != CategoryAny {
		q = q.Where("properties.category = ?", f.Category)
	}
	if f.MinPrice > 0 {
		q = q.Where("properties.price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("properties.price <= ?", f.MaxPrice)
	}
	if f.MinRooms > 0 {
		q = q.Where("properties.rooms >= ?", f.MinRooms)
	}
	if f.District != "" {
		q = q.Where("LOWER(properties.district) LIKE ?", containsPattern(f.District))
	}
	if f.CityRegion != "" {
		q = q.Where("LOWER(properties.city_region) LIKE ?", containsPattern(f.CityRegion))
	}
	if f.Code != "" {
		q = q.Where("LOWER(properties.code) LIKE ?", containsPattern(f.Code))
	}
	if f.OwnerID != 0 {
		q = q.Where("properties.owner_id = ?", f.OwnerID)
	}
	return q
}

func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// DeleteProperty removes the property together with its media,
// interested parties and their interaction events. All or nothing.
func (s *gormStore) DeleteProperty(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Property{}, id)
		if err != nil {
			return fmt.Errorf("failed to check property: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: property %d", ErrNotFound, id)
		}

		var partyIDs []uint
		if err := tx.Model(&models.InterestedParty{}).
			Where("property_id = ?", id).
			Pluck("id", &partyIDs).Error; err != nil {
			return fmt.Errorf("failed to collect interested parties: %w", err)
		}
		if len(partyIDs) > 0 {
			if err := tx.Where("interested_party_id IN ?", partyIDs).
				Delete(&models.InteractionEvent{}).Error; err != nil {
				return fmt.Errorf("failed to delete interaction events: %w", err)
			}
		}
		if err := tx.Where("property_id = ?", id).
			Delete(&models.InterestedParty{}).Error; err != nil {
			return fmt.Errorf("failed to delete interested parties: %w", err)
		}
		if err := tx.Where("property_id = ?", id).
			Delete(&models.Media{}).Error; err != nil {
			return fmt.Errorf("failed to delete media: %w", err)
		}
		if err := tx.Delete(&models.Property{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete property: %w", err)
		}
		return nil
	})
}

func (s *gormStore) CreateMedia(ctx context.Context, media *models.Media) error {
	if media.Kind != models.MediaImage && media.Kind != models.MediaVideo {
		return fmt.Errorf("%w: unknown media kind %q", ErrValidation, media.Kind)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Property{}, media.PropertyID)
		if err != nil {
			return fmt.Errorf("failed to check property: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: property %d", ErrReferentialIntegrity, media.PropertyID)
		}
		if err := tx.Create(media).Error; err != nil {
			return fmt.Errorf("failed to create media: %w", err)
		}
		return nil
	})
}

func (s *gormStore) ListMedia(ctx context.Context, propertyID uint) ([]models.Media, error) {
	var media []models.Media
	err := s.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("id").
		Find(&media).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	return media, nil
}

func (s *gormStore) CreateInterestedParty(ctx context.Context, party *models.InterestedParty) error {
	if strings.TrimSpace(party.Name) == "" {
		return fmt.Errorf("%w: interested party name is required", ErrValidation)
	}
	if party.Status == "" {
		party.Status = models.StatusNew
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Property{}, party.PropertyID)
		if err != nil {
			return fmt.Errorf("failed to check property: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: property %d", ErrReferentialIntegrity, party.PropertyID)
		}
		if err := tx.Create(party).Error; err != nil {
			return fmt.Errorf("failed to create interested party: %w", err)
		}
		return nil
	})
}

func (s *gormStore) GetInterestedParty(ctx context.Context, id uint) (*models.InterestedParty, error) {
	var party models.InterestedParty
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&party).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interested party: %w", err)
	}
	return &party, nil
}

func (s *gormStore) ListInterestedParties(ctx context.Context, propertyID uint) ([]models.InterestedParty, error) {
	var parties []models.InterestedParty
	err := s.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&parties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interested parties: %w", err)
	}
	return parties, nil
}

func (s *gormStore) ListAllInterestedParties(ctx context.Context) ([]models.InterestedParty, error) {
	var parties []models.InterestedParty
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&parties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interested parties: %w", err)
	}
	return parties, nil
}

// DeleteInterestedParty removes the party and its interaction events.
func (s *gormStore) DeleteInterestedParty(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.InterestedParty{}, id)
		if err != nil {
			return fmt.Errorf("failed to check interested party: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: interested party %d", ErrNotFound, id)
		}
		if err := tx.Where("interested_party_id = ?", id).
			Delete(&models.InteractionEvent{}).Error; err != nil {
			return fmt.Errorf("failed to delete interaction events: %w", err)
		}
		if err := tx.Delete(&models.InterestedParty{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete interested party: %w", err)
		}
		return nil
	})
}

// AppendInteraction adds one ledger entry. Event dates in the past or
// future are accepted as given.
func (s *gormStore) AppendInteraction(ctx context.Context, event *models.InteractionEvent) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.InterestedParty{}, event.InterestedPartyID)
		if err != nil {
			return fmt.Errorf("failed to check interested party: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: interested party %d", ErrReferentialIntegrity, event.InterestedPartyID)
		}
		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("failed to append interaction: %w", err)
		}
		return nil
	})
}

// ListInteractions returns the ledger for one party, newest event date
// first, same-day entries in reverse insertion order.
func (s *gormStore) ListInteractions(ctx context.Context, partyID uint) ([]models.InteractionEvent, error) {
	var events []models.InteractionEvent
	err := s.db.WithContext(ctx).
		Where("interested_party_id = ?", partyID).
		Order("event_date DESC").
		Order("id DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	return events, nil
}

func (s *gormStore) ListAllInteractions(ctx context.Context) ([]models.InteractionEvent, error) {
	var events []models.InteractionEvent
	if err := s.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	return events, nil
}
