package fx

import (
	"log"

	"Planzee/config"
	"Planzee/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
	),
	fx.Invoke(
		loadEnvFiles,
		initLogger,
	),
)

func loadEnvFiles() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: não foi possível carregar .env do diretório atual: %v", err)
	}
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("Aviso: não foi possível carregar ../../.env: %v", err)
	}
	return nil
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
	logger.Info().
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.Database.Driver).
		Bool("ai_enabled", cfg.AI.Enabled()).
		Str("health_timezone", cfg.Health.Timezone).
		Msg("Configuração carregada")
}
