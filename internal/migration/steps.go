package migration

import (
	"gorm.io/gorm"

	"imobicrm/internal/models"
)

// Steps returns the schema history, oldest first. Never reorder or edit
// a shipped step; append a new one.
func Steps() []Step {
	return []Step{
		{
			Version: "202407150001",
			Name:    "create_core_tables",
			Apply:   createCoreTables,
		},
		{
			Version: "202407220001",
			Name:    "add_owner_address_columns",
			Apply:   addOwnerAddressColumns,
		},
		{
			Version: "202408050001",
			Name:    "add_party_proposed_price",
			Apply:   addPartyProposedPrice,
		},
	}
}

func createCoreTables(tx *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Owner{},
		&models.Property{},
		&models.Media{},
		&models.InterestedParty{},
		&models.InteractionEvent{},
	} {
		if tx.Migrator().HasTable(model) {
			continue
		}
		if err := tx.Migrator().CreateTable(model); err != nil {
			return err
		}
	}
	return nil
}

// Owner address fields arrived after the first deployments; databases
// created before them gain the columns here with null defaults.
func addOwnerAddressColumns(tx *gorm.DB) error {
	for _, column := range []string{
		"Street", "Number", "Complement", "District", "CityRegion", "PostalCode",
	} {
		if tx.Migrator().HasColumn(&models.Owner{}, column) {
			continue
		}
		if err := tx.Migrator().AddColumn(&models.Owner{}, column); err != nil {
			return err
		}
	}
	return nil
}

func addPartyProposedPrice(tx *gorm.DB) error {
	if tx.Migrator().HasColumn(&models.InterestedParty{}, "ProposedPrice") {
		return nil
	}
	return tx.Migrator().AddColumn(&models.InterestedParty{}, "ProposedPrice")
}
