package auth

import (
	"strings"

	"estacionamento-backend/internal/config"
	"estacionamento-backend/internal/database"
	"estacionamento-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// POST /token recebe form-urlencoded, no padrão OAuth2 password flow.
type TokenRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RegisterAdminRequest struct {
	Nome     string  `json:"nome"`
	CPF      string  `json:"cpf"`
	Email    *string `json:"email"`
	Login    string  `json:"login"`
	Password string  `json:"password"`
}

// TokenHandler valida as credenciais e emite o token de sessão. Login
// inexistente e senha incorreta produzem exatamente a mesma resposta, para
// não revelar qual parte falhou; o detalhe vai só para o log.
func TokenHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body TokenRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Username == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "username e password são obrigatórios")
		}

		var user models.Usuario
		if err := database.DB.Where("login = ?", body.Username).First(&user).Error; err != nil {
			log.Warnf("Tentativa de login falha: usuário '%s' não encontrado", body.Username)
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return fiber.NewError(fiber.StatusUnauthorized, "Login ou senha incorretos")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(body.Password)); err != nil {
			log.Warnf("Tentativa de login falha: senha incorreta para usuário '%s'", body.Username)
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return fiber.NewError(fiber.StatusUnauthorized, "Login ou senha incorretos")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o token")
		}

		return c.JSON(TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

// RegisterAdminHandler cria o par Pessoa + Usuario admin. Rota pública de
// bootstrap, no mesmo molde do registro de super admin do painel.
func RegisterAdminHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Nome = strings.TrimSpace(body.Nome)
		body.CPF = strings.TrimSpace(body.CPF)
		body.Login = strings.TrimSpace(body.Login)

		if body.Nome == "" || body.CPF == "" || body.Login == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "nome, cpf, login e password são obrigatórios")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash da senha")
		}

		var user models.Usuario
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			pessoa := models.Pessoa{
				Nome:  body.Nome,
				CPF:   body.CPF,
				Email: body.Email,
			}
			if err := tx.Create(&pessoa).Error; err != nil {
				return err
			}

			user = models.Usuario{
				IDPessoa:  pessoa.ID,
				Login:     body.Login,
				SenhaHash: string(hash),
				Role:      models.RoleAdmin,
			}
			return tx.Create(&user).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusConflict, "Não foi possível criar o usuário (login ou CPF já cadastrado?)")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    user.ID,
			"login": user.Login,
			"role":  user.Role,
		})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals(CtxUserIDKey).(uint)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Não foi possível identificar o usuário")
		}

		var user models.Usuario
		if err := database.DB.Preload("Pessoa").First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado")
		}

		return c.JSON(fiber.Map{
			"user_id":  user.ID,
			"login":    user.Login,
			"role":     user.Role,
			"admin_id": user.AdminID,
			"pessoa": fiber.Map{
				"id":    user.Pessoa.ID,
				"nome":  user.Pessoa.Nome,
				"cpf":   user.Pessoa.CPF,
				"email": user.Pessoa.Email,
			},
		})
	}
}
