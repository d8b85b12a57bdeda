// Package report builds the per-property summary: interest counts,
// average proposed price and most recent interaction date.
package report

import (
	"context"
	"time"

	"imobicrm/internal/currency"
	"imobicrm/internal/models"
	"imobicrm/internal/store"
)

// NoInteraction is the sentinel rendered when a property's interest
// chain holds no interaction events at all.
const NoInteraction = "—"

const dateLayout = "02/01/2006"

// Row is one per-property summary with raw values. LastInteraction is
// nil when no interaction event exists anywhere in the property's
// interest chain.
type Row struct {
	Code            string
	Title           string
	OwnerName       string
	InterestedCount int
	AvgProposed     float64
	Price           float64
	LastInteraction *time.Time
}

// FormattedRow is a Row rendered for display: prices in BRL notation,
// dates as dd/mm/yyyy, absent dates as the NoInteraction sentinel.
type FormattedRow struct {
	Code            string `json:"code"`
	Title           string `json:"title"`
	OwnerName       string `json:"owner_name"`
	InterestedCount int    `json:"interested_count"`
	AvgProposed     string `json:"avg_proposed"`
	Price           string `json:"price"`
	LastInteraction string `json:"last_interaction"`
}

// Generator produces summary rows from a Store.
type Generator struct {
	store store.Store
}

// New creates a report generator.
func New(s store.Store) *Generator {
	return &Generator{store: s}
}

// Summary returns one row per property, optionally restricted to one
// owner, in listing order (creation time descending). Empty inputs
// yield empty output, never an error.
//
// The pipeline runs as two explicit reductions so that "no proposed
// prices" (mean reported as 0) is never conflated with "a proposed
// price of exactly zero" (a real, counted value): first interaction
// events collapse to a latest date per party, then parties collapse to
// one aggregate per property.
func (g *Generator) Summary(ctx context.Context, ownerID *uint) ([]Row, error) {
	filter := store.PropertyFilter{}
	if ownerID != nil {
		filter.OwnerID = *ownerID
	}

	properties, err := g.store.ListProperties(ctx, filter)
	if err != nil {
		return nil, err
	}

	parties, err := g.store.ListAllInterestedParties(ctx)
	if err != nil {
		return nil, err
	}

	events, err := g.store.ListAllInteractions(ctx)
	if err != nil {
		return nil, err
	}

	latest := latestEventByParty(events)
	aggregates := aggregateByProperty(parties, latest)

	rows := make([]Row, 0, len(properties))
	for _, p := range properties {
		row := Row{
			Code:      p.Code,
			Title:     p.Title,
			OwnerName: p.OwnerName,
			Price:     p.Price,
		}
		if agg, ok := aggregates[p.ID]; ok {
			row.InterestedCount = agg.count
			if agg.proposedN > 0 {
				row.AvgProposed = agg.proposedSum / float64(agg.proposedN)
			}
			row.LastInteraction = agg.last
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// latestEventByParty reduces interaction events to the maximum event
// date per interested party.
func latestEventByParty(events []models.InteractionEvent) map[uint]time.Time {
	latest := make(map[uint]time.Time)
	for _, e := range events {
		if current, ok := latest[e.InterestedPartyID]; !ok || e.EventDate.After(current) {
			latest[e.InterestedPartyID] = e.EventDate
		}
	}
	return latest
}

type propertyAggregate struct {
	count       int
	proposedSum float64
	proposedN   int
	last        *time.Time
}

// aggregateByProperty groups interested parties by property. Parties
// without a proposed price still count towards count but stay out of
// the mean's numerator and denominator.
func aggregateByProperty(parties []models.InterestedParty, latest map[uint]time.Time) map[uint]propertyAggregate {
	aggregates := make(map[uint]propertyAggregate)
	for _, party := range parties {
		agg := aggregates[party.PropertyID]
		agg.count++
		if party.ProposedPrice != nil {
			agg.proposedSum += *party.ProposedPrice
			agg.proposedN++
		}
		if eventDate, ok := latest[party.ID]; ok {
			if agg.last == nil || eventDate.After(*agg.last) {
				d := eventDate
				agg.last = &d
			}
		}
		aggregates[party.PropertyID] = agg
	}
	return aggregates
}

// FormatRows renders rows for display in the stable report column
// order.
func FormatRows(rows []Row) []FormattedRow {
	out := make([]FormattedRow, 0, len(rows))
	for _, row := range rows {
		formatted := FormattedRow{
			Code:            row.Code,
			Title:           row.Title,
			OwnerName:       row.OwnerName,
			InterestedCount: row.InterestedCount,
			AvgProposed:     currency.Format(row.AvgProposed),
			Price:           currency.Format(row.Price),
			LastInteraction: NoInteraction,
		}
		if row.LastInteraction != nil {
			formatted.LastInteraction = row.LastInteraction.Format(dateLayout)
		}
		out = append(out, formatted)
	}
	return out
}
