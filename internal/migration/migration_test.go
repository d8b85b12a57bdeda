package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"imobicrm/internal/migration"
	"imobicrm/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestMigratorUp(t *testing.T) {
	db := setupTestDB(t)
	migrator := migration.NewMigrator(db)

	err := migrator.Up()
	assert.NoError(t, err)

	for _, model := range []interface{}{
		&models.Owner{}, &models.Property{}, &models.Media{},
		&models.InterestedParty{}, &models.InteractionEvent{},
	} {
		assert.True(t, db.Migrator().HasTable(model))
	}

	var records []migration.Record
	require.NoError(t, db.Find(&records).Error)
	assert.Len(t, records, len(migration.Steps()))
}

func TestMigratorUpIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	migrator := migration.NewMigrator(db)

	require.NoError(t, migrator.Up())
	assert.NoError(t, migrator.Up())

	pending, err := migrator.Pending()
	assert.NoError(t, err)
	assert.Empty(t, pending)
}

// A database created by an older schema gains the missing optional
// columns without losing existing rows.
func TestMigratorUpgradesOldSchema(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Exec(
		`CREATE TABLE owners (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL, email TEXT, phone TEXT, creci TEXT)`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO owners (name, email) VALUES ('Maria Souza', 'maria@example.com')`).Error)

	assert.False(t, db.Migrator().HasColumn(&models.Owner{}, "Street"))

	require.NoError(t, migration.NewMigrator(db).Up())

	assert.True(t, db.Migrator().HasColumn(&models.Owner{}, "Street"))
	assert.True(t, db.Migrator().HasColumn(&models.Owner{}, "PostalCode"))

	var owner models.Owner
	require.NoError(t, db.First(&owner).Error)
	assert.Equal(t, "Maria Souza", owner.Name)
	assert.Equal(t, "maria@example.com", owner.Email)
	assert.Empty(t, owner.Street)
}

func TestStepsAreOrdered(t *testing.T) {
	steps := migration.Steps()
	require.NotEmpty(t, steps)
	for i := 1; i < len(steps); i++ {
		assert.Less(t, steps[i-1].Version, steps[i].Version)
	}
}
