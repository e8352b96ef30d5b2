package infrastructure

import (
	"fmt"

	"Planzee/config"
	"Planzee/internal/domain/status"
	"Planzee/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Database)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{}
	if cfg.IsProduction() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		logger.Error().
			Err(err).
			Str("driver", cfg.Database.Driver).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Falha ao conectar ao banco de dados")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao obter instância do banco de dados")
		return nil, err
	}

	if cfg.Database.Driver == config.DriverSQLite {
		// cada conexão sqlite em memória é um banco diferente
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	logger.Info().
		Str("driver", cfg.Database.Driver).
		Str("database", cfg.Database.DBName).
		Msg("Conexão com banco de dados estabelecida com sucesso")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("driver de banco de dados não suportado: %s", cfg.Driver)
	}
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Executando migrations...")

	entities := []interface{}{
		&statusDB{},
		&projectDB{},
		&taskDB{},
		&budgetDB{},
		&insightDB{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("Erro ao migrar entidade")
			return err
		}
	}

	if err := seedDefaultStatuses(db); err != nil {
		logger.Error().Err(err).Msg("Erro ao criar status padrão de projeto")
		return err
	}

	logger.Info().Msg("Migrations executadas com sucesso!")
	return nil
}

func seedDefaultStatuses(db *gorm.DB) error {
	for _, st := range status.GetDefaultStatuses() {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(toDBStatus(st)).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func getEntityName(entity interface{}) string {
	switch entity.(type) {
	case *statusDB:
		return "ProjectStatus"
	case *projectDB:
		return "Project"
	case *taskDB:
		return "Task"
	case *budgetDB:
		return "Budget"
	case *insightDB:
		return "Insight"
	default:
		return "Unknown"
	}
}
