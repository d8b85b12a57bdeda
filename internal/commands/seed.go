package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"imobicrm/internal/migration"
	"imobicrm/internal/models"
	"imobicrm/internal/store"
)

// SeedCmd loads a small sample dataset for local runs.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample data for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := setup()
			if err != nil {
				return err
			}
			if err := migration.NewMigrator(db).Up(); err != nil {
				return err
			}

			ctx := cmd.Context()
			s := store.New(db)

			owner := models.Owner{
				Name:       "Maria Souza",
				Email:      "maria@example.com",
				Phone:      "11 99999-0001",
				District:   "Moema",
				CityRegion: "São Paulo / SP",
			}
			if err := s.CreateOwner(ctx, &owner); err != nil {
				return err
			}

			apartment := models.Property{
				OwnerID:    owner.ID,
				Title:      "Apartamento 2 quartos em Moema",
				Category:   models.CategorySale,
				Price:      850000,
				Rooms:      2,
				Bathrooms:  2,
				Parking:    1,
				Area:       72,
				District:   "Moema",
				CityRegion: "São Paulo / SP",
			}
			if err := s.CreateProperty(ctx, &apartment); err != nil {
				return err
			}

			studio := models.Property{
				OwnerID:    owner.ID,
				Title:      "Studio mobiliado no Centro",
				Category:   models.CategoryRent,
				Price:      2800,
				Rooms:      1,
				Bathrooms:  1,
				Area:       31,
				District:   "Centro",
				CityRegion: "São Paulo / SP",
			}
			if err := s.CreateProperty(ctx, &studio); err != nil {
				return err
			}

			proposed := 820000.0
			party := models.InterestedParty{
				PropertyID:    apartment.ID,
				Name:          "João Lima",
				Email:         "joao@example.com",
				Status:        models.StatusProposal,
				ProposedPrice: &proposed,
			}
			if err := s.CreateInterestedParty(ctx, &party); err != nil {
				return err
			}

			event := models.InteractionEvent{
				InterestedPartyID: party.ID,
				EventDate:         time.Now().AddDate(0, 0, -2),
				Kind:              models.EventVisit,
				Notes:             "Visita agendada, cliente gostou da varanda",
			}
			if err := s.AppendInteraction(ctx, &event); err != nil {
				return err
			}

			fmt.Printf("Seeded owner %d with properties %s and %s\n",
				owner.ID, apartment.Code, studio.Code)
			return nil
		},
	}
}
