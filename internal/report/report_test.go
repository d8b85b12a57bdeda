package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"imobicrm/internal/migration"
	"imobicrm/internal/models"
	"imobicrm/internal/store"
)

func setupGenerator(t *testing.T) (*Generator, store.Store) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migration.NewMigrator(db).Up())

	s := store.New(db)
	return New(s), s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLatestEventByParty(t *testing.T) {
	events := []models.InteractionEvent{
		{InterestedPartyID: 1, EventDate: date(2024, 1, 10)},
		{InterestedPartyID: 1, EventDate: date(2024, 2, 1)},
		{InterestedPartyID: 1, EventDate: date(2023, 12, 25)},
		{InterestedPartyID: 2, EventDate: date(2024, 1, 5)},
	}

	latest := latestEventByParty(events)
	assert.Len(t, latest, 2)
	assert.Equal(t, date(2024, 2, 1), latest[1])
	assert.Equal(t, date(2024, 1, 5), latest[2])
}

func TestLatestEventByPartyEmpty(t *testing.T) {
	assert.Empty(t, latestEventByParty(nil))
}

func TestAggregateByProperty(t *testing.T) {
	thousand := 1000.0
	zero := 0.0
	parties := []models.InterestedParty{
		{ID: 1, PropertyID: 10, ProposedPrice: &thousand},
		{ID: 2, PropertyID: 10, ProposedPrice: nil},
		{ID: 3, PropertyID: 20, ProposedPrice: &zero},
	}
	latest := map[uint]time.Time{
		1: date(2024, 1, 10),
		2: date(2024, 3, 1),
	}

	aggregates := aggregateByProperty(parties, latest)

	ten := aggregates[10]
	assert.Equal(t, 2, ten.count)
	// the nil proposal stays out of the mean entirely
	assert.Equal(t, 1, ten.proposedN)
	assert.Equal(t, 1000.0, ten.proposedSum)
	require.NotNil(t, ten.last)
	assert.Equal(t, date(2024, 3, 1), *ten.last)

	// a proposed price of exactly zero is a real, counted value
	twenty := aggregates[20]
	assert.Equal(t, 1, twenty.count)
	assert.Equal(t, 1, twenty.proposedN)
	assert.Equal(t, 0.0, twenty.proposedSum)
	assert.Nil(t, twenty.last)
}

func TestSummaryNilProposalExcludedFromMean(t *testing.T) {
	g, s := setupGenerator(t)
	ctx := context.Background()

	owner := &models.Owner{Name: "Maria"}
	require.NoError(t, s.CreateOwner(ctx, owner))
	property := &models.Property{Title: "Casa", OwnerID: owner.ID, Price: 500000}
	require.NoError(t, s.CreateProperty(ctx, property))

	thousand := 1000.0
	require.NoError(t, s.CreateInterestedParty(ctx, &models.InterestedParty{
		PropertyID: property.ID, Name: "João", ProposedPrice: &thousand,
	}))
	require.NoError(t, s.CreateInterestedParty(ctx, &models.InterestedParty{
		PropertyID: property.ID, Name: "Ana",
	}))

	rows, err := g.Summary(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 2, rows[0].InterestedCount)
	assert.Equal(t, 1000.0, rows[0].AvgProposed)
}

func TestSummaryNoInterestedParties(t *testing.T) {
	g, s := setupGenerator(t)
	ctx := context.Background()

	owner := &models.Owner{Name: "Maria"}
	require.NoError(t, s.CreateOwner(ctx, owner))
	property := &models.Property{Title: "Casa vazia", OwnerID: owner.ID, Price: 250000}
	require.NoError(t, s.CreateProperty(ctx, property))

	rows, err := g.Summary(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 0, rows[0].InterestedCount)
	assert.Equal(t, 0.0, rows[0].AvgProposed)
	assert.Nil(t, rows[0].LastInteraction)

	formatted := FormatRows(rows)
	assert.Equal(t, NoInteraction, formatted[0].LastInteraction)
	assert.Equal(t, "0,00", formatted[0].AvgProposed)
	assert.Equal(t, "250.000,00", formatted[0].Price)
}

func TestSummaryLastInteractionAcrossParties(t *testing.T) {
	g, s := setupGenerator(t)
	ctx := context.Background()

	owner := &models.Owner{Name: "Maria"}
	require.NoError(t, s.CreateOwner(ctx, owner))
	property := &models.Property{Title: "Casa", OwnerID: owner.ID}
	require.NoError(t, s.CreateProperty(ctx, property))

	first := &models.InterestedParty{PropertyID: property.ID, Name: "João"}
	second := &models.InterestedParty{PropertyID: property.ID, Name: "Ana"}
	require.NoError(t, s.CreateInterestedParty(ctx, first))
	require.NoError(t, s.CreateInterestedParty(ctx, second))

	require.NoError(t, s.AppendInteraction(ctx, &models.InteractionEvent{
		InterestedPartyID: first.ID, EventDate: date(2024, 1, 10), Kind: models.EventCall,
	}))
	require.NoError(t, s.AppendInteraction(ctx, &models.InteractionEvent{
		InterestedPartyID: second.ID, EventDate: date(2024, 4, 2), Kind: models.EventVisit,
	}))
	require.NoError(t, s.AppendInteraction(ctx, &models.InteractionEvent{
		InterestedPartyID: first.ID, EventDate: date(2024, 3, 15), Kind: models.EventMessage,
	}))

	rows, err := g.Summary(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].LastInteraction)
	assert.True(t, rows[0].LastInteraction.Equal(date(2024, 4, 2)))

	formatted := FormatRows(rows)
	assert.Equal(t, "02/04/2024", formatted[0].LastInteraction)
}

func TestSummaryOwnerFilter(t *testing.T) {
	g, s := setupGenerator(t)
	ctx := context.Background()

	maria := &models.Owner{Name: "Maria"}
	paulo := &models.Owner{Name: "Paulo"}
	require.NoError(t, s.CreateOwner(ctx, maria))
	require.NoError(t, s.CreateOwner(ctx, paulo))

	require.NoError(t, s.CreateProperty(ctx, &models.Property{Title: "Casa A", OwnerID: maria.ID}))
	require.NoError(t, s.CreateProperty(ctx, &models.Property{Title: "Casa B", OwnerID: paulo.ID}))

	rows, err := g.Summary(ctx, &maria.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Casa A", rows[0].Title)
	assert.Equal(t, "Maria", rows[0].OwnerName)
}

func TestSummaryEmptyDatabase(t *testing.T) {
	g, _ := setupGenerator(t)

	rows, err := g.Summary(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, FormatRows(rows))
}
