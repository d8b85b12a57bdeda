package commands

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"imobicrm/internal/api"
	"imobicrm/internal/cep"
	"imobicrm/internal/logger"
	"imobicrm/internal/media"
	"imobicrm/internal/migration"
	"imobicrm/internal/report"
	"imobicrm/internal/store"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply pending migrations and start the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if err := migration.NewMigrator(db).Up(); err != nil {
				return err
			}

			s := store.New(db)
			handler := api.NewHandler(
				s,
				report.New(s),
				media.NewIngestor(cfg.MediaRoot, s),
				cep.NewClient(cfg.ViaCEPURL),
			)

			if !cfg.Debug {
				gin.SetMode(gin.ReleaseMode)
			}
			router := gin.New()
			router.Use(gin.Recovery())
			api.SetupRoutes(router, handler)

			logger.Info("server listening", zap.String("addr", cfg.Server.Addr()))
			return router.Run(cfg.Server.Addr())
		},
	}
}
