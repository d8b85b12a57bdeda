package migration

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Step is one additive schema change. Steps only ever add tables or
// columns; existing columns and rows are never dropped or rewritten.
// Every Apply must be idempotent (check before add) so that a database
// created by an older schema can be upgraded in place.
type Step struct {
	Version string
	Name    string
	Apply   func(*gorm.DB) error
}

// Record tracks which steps have been applied to a database.
type Record struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Record
func (Record) TableName() string {
	return "migration_records"
}

// Migrator applies registered steps in order.
type Migrator struct {
	db    *gorm.DB
	steps []Step
}

// NewMigrator returns a migrator carrying the standard step list.
func NewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{db: db, steps: Steps()}
}

func (m *Migrator) ensureVersionTable() error {
	return m.db.AutoMigrate(&Record{})
}

// AppliedVersions returns the set of step versions already recorded.
func (m *Migrator) AppliedVersions() (map[string]bool, error) {
	if err := m.ensureVersionTable(); err != nil {
		return nil, err
	}

	var records []Record
	if err := m.db.Find(&records).Error; err != nil {
		return nil, err
	}

	versions := make(map[string]bool)
	for _, record := range records {
		versions[record.Version] = true
	}
	return versions, nil
}

// Pending returns the steps not yet recorded, in registration order.
func (m *Migrator) Pending() ([]Step, error) {
	applied, err := m.AppliedVersions()
	if err != nil {
		return nil, err
	}

	var pending []Step
	for _, step := range m.steps {
		if !applied[step.Version] {
			pending = append(pending, step)
		}
	}
	return pending, nil
}

// Up applies all pending steps, each inside its own transaction
// together with its record row.
func (m *Migrator) Up() error {
	pending, err := m.Pending()
	if err != nil {
		return err
	}

	for _, step := range pending {
		tx := m.db.Begin()
		if tx.Error != nil {
			return fmt.Errorf("failed to start transaction: %w", tx.Error)
		}

		if err := step.Apply(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to apply migration %s: %w", step.Name, err)
		}

		record := Record{
			Version:   step.Version,
			Name:      step.Name,
			AppliedAt: time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", step.Name, err)
		}

		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", step.Name, err)
		}
	}
	return nil
}
