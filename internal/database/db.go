package database

import (
	"estacionamento-backend/internal/config"
	"estacionamento-backend/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco de dados: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("Erro no AutoMigrate: %v", err)
	}

	log.Info("Conexão com o banco de dados estabelecida. Migration concluída.")
}

// Migrate aplica o schema; separado do Init para que os testes possam usar
// outro dialeto sobre o mesmo conjunto de modelos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Pessoa{},
		&models.Usuario{},
		&models.Estacionamento{},
		&models.Acesso{},
		&models.Faturamento{},
	)
}
