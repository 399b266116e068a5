package usuario

import (
	"strings"

	"estacionamento-backend/internal/auth"
	"estacionamento-backend/internal/database"
	"estacionamento-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateFuncionarioRequest struct {
	Nome     string  `json:"nome"`
	CPF      string  `json:"cpf"`
	Email    *string `json:"email"`
	Login    string  `json:"login"`
	Password string  `json:"password"`
}

type FuncionarioResponse struct {
	ID      uint   `json:"id"`
	Nome    string `json:"nome"`
	CPF     string `json:"cpf"`
	Login   string `json:"login"`
	Role    string `json:"role"`
	AdminID *uint  `json:"admin_id"`
}

// CreateFuncionarioHandler cria um funcionário subordinado ao admin chamador.
func CreateFuncionarioHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, ok := c.Locals(auth.CtxUserIDKey).(uint)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Não foi possível identificar o usuário")
		}

		var body CreateFuncionarioRequest
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
				Role:      models.RoleFuncionario,
				AdminID:   &adminID,
			}
			return tx.Create(&user).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusConflict, "Não foi possível criar o funcionário (login ou CPF já cadastrado?)")
		}

		return c.Status(fiber.StatusCreated).JSON(FuncionarioResponse{
			ID:      user.ID,
			Nome:    body.Nome,
			CPF:     body.CPF,
			Login:   user.Login,
			Role:    string(user.Role),
			AdminID: user.AdminID,
		})
	}
}

// ListFuncionariosHandler lista os funcionários subordinados ao admin chamador.
func ListFuncionariosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, ok := c.Locals(auth.CtxUserIDKey).(uint)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Não foi possível identificar o usuário")
		}

		var users []models.Usuario
		if err := database.DB.Preload("Pessoa").
			Where("admin_id = ? AND role = ?", adminID, models.RoleFuncionario).
			Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os funcionários")
		}

		res := make([]FuncionarioResponse, 0, len(users))
		for _, u := range users {
			res = append(res, FuncionarioResponse{
				ID:      u.ID,
				Nome:    u.Pessoa.Nome,
				CPF:     u.Pessoa.CPF,
				Login:   u.Login,
				Role:    string(u.Role),
				AdminID: u.AdminID,
			})
		}
		return c.JSON(res)
	}
}
