// Package testutil concentra a montagem de ambiente dos testes: banco sqlite
// em arquivo temporário, app Fiber com as rotas reais e fixtures de usuários
// e estacionamentos.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"estacionamento-backend/internal/auth"
	"estacionamento-backend/internal/config"
	"estacionamento-backend/internal/database"
	"estacionamento-backend/internal/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const SenhaPadrao = "senha-de-teste"

// NewConfig usa um fuso fixo -03 para que os cortes de dia não dependam do
// tzdata da máquina de teste.
func NewConfig() *config.Config {
	return &config.Config{
		HTTPPort:    "0",
		JWTSecret:   "segredo-de-teste-com-mais-de-32-caracteres",
		CORSOrigins: "http://localhost",
		Location:    time.FixedZone("-03", -3*60*60),
	}
}

// OpenDB abre um banco sqlite isolado para o teste e o instala como o DB
// global usado pelos handlers.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrando schema: %v", err)
	}

	database.DB = db
	return db
}

func hashSenha(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(SenhaPadrao), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("gerando hash: %v", err)
	}
	return string(hash)
}

func CreateAdmin(t *testing.T, db *gorm.DB, login string) *models.Usuario {
	t.Helper()

	pessoa := models.Pessoa{Nome: "Admin " + login, CPF: "cpf-" + login}
	if err := db.Create(&pessoa).Error; err != nil {
		t.Fatalf("criando pessoa: %v", err)
	}
	user := models.Usuario{
		IDPessoa:  pessoa.ID,
		Login:     login,
		SenhaHash: hashSenha(t),
		Role:      models.RoleAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("criando admin: %v", err)
	}
	return &user
}

func CreateFuncionario(t *testing.T, db *gorm.DB, login string, adminID uint) *models.Usuario {
	t.Helper()

	pessoa := models.Pessoa{Nome: "Funcionário " + login, CPF: "cpf-" + login}
	if err := db.Create(&pessoa).Error; err != nil {
		t.Fatalf("criando pessoa: %v", err)
	}
	user := models.Usuario{
		IDPessoa:  pessoa.ID,
		Login:     login,
		SenhaHash: hashSenha(t),
		Role:      models.RoleFuncionario,
		AdminID:   &adminID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("criando funcionário: %v", err)
	}
	return &user
}

func CreateEstacionamento(t *testing.T, db *gorm.DB, adminID uint, totalVagas int) *models.Estacionamento {
	t.Helper()

	est := models.Estacionamento{
		Nome:              "Pátio de teste",
		Endereco:          "Rua dos Testes, 100",
		TotalVagas:        totalVagas,
		ValorPrimeiraHora: 10,
		ValorDemaisHoras:  5,
		ValorDiaria:       30,
		AdminID:           &adminID,
	}
	if err := db.Create(&est).Error; err != nil {
		t.Fatalf("criando estacionamento: %v", err)
	}
	return &est
}

func TokenFor(t *testing.T, cfg *config.Config, user *models.Usuario) string {
	t.Helper()

	token, err := auth.GenerateToken(cfg.JWTSecret, user)
	if err != nil {
		t.Fatalf("gerando token: %v", err)
	}
	return token
}
