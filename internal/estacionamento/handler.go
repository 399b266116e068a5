package estacionamento

import (
	"strings"

	"estacionamento-backend/internal/auth"
	"estacionamento-backend/internal/database"
	"estacionamento-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type EstacionamentoResponse struct {
	ID                uint    `json:"id"`
	Nome              string  `json:"nome"`
	Endereco          string  `json:"endereco"`
	TotalVagas        int     `json:"total_vagas"`
	ValorPrimeiraHora float64 `json:"valor_primeira_hora"`
	ValorDemaisHoras  float64 `json:"valor_demais_horas"`
	ValorDiaria       float64 `json:"valor_diaria"`
	AdminID           *uint   `json:"admin_id"`
}

type CreateEstacionamentoRequest struct {
	Nome              string  `json:"nome"`
	Endereco          string  `json:"endereco"`
	TotalVagas        int     `json:"total_vagas"`
	ValorPrimeiraHora float64 `json:"valor_primeira_hora"`
	ValorDemaisHoras  float64 `json:"valor_demais_horas"`
	ValorDiaria       float64 `json:"valor_diaria"`
}

type UpdateEstacionamentoRequest struct {
	Nome              *string  `json:"nome"`
	Endereco          *string  `json:"endereco"`
	TotalVagas        *int     `json:"total_vagas"`
	ValorPrimeiraHora *float64 `json:"valor_primeira_hora"`
	ValorDemaisHoras  *float64 `json:"valor_demais_horas"`
	ValorDiaria       *float64 `json:"valor_diaria"`
}

func toResponse(e *models.Estacionamento) EstacionamentoResponse {
	return EstacionamentoResponse{
		ID:                e.ID,
		Nome:              e.Nome,
		Endereco:          e.Endereco,
		TotalVagas:        e.TotalVagas,
		ValorPrimeiraHora: e.ValorPrimeiraHora,
		ValorDemaisHoras:  e.ValorDemaisHoras,
		ValorDiaria:       e.ValorDiaria,
		AdminID:           e.AdminID,
	}
}

// CreateHandler registra um estacionamento pertencente ao admin chamador.
func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEstacionamentoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Nome = strings.TrimSpace(body.Nome)
		if body.Nome == "" {
			return fiber.NewError(fiber.StatusBadRequest, "nome é obrigatório")
		}
		if body.TotalVagas <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "total_vagas deve ser maior que zero")
		}

		adminID, err := auth.EffectiveAdminIDFromCtx(c)
		if err != nil {
			return err
		}

		est := models.Estacionamento{
			Nome:              body.Nome,
			Endereco:          body.Endereco,
			TotalVagas:        body.TotalVagas,
			ValorPrimeiraHora: body.ValorPrimeiraHora,
			ValorDemaisHoras:  body.ValorDemaisHoras,
			ValorDiaria:       body.ValorDiaria,
			AdminID:           adminID,
		}

		if err := database.DB.Create(&est).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o estacionamento")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(&est))
	}
}

// ListHandler lista os estacionamentos do admin chamador.
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, err := auth.EffectiveAdminIDFromCtx(c)
		if err != nil {
			return err
		}

		var ests []models.Estacionamento
		if err := database.DB.Where("admin_id = ?", adminID).Find(&ests).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os estacionamentos")
		}

		res := make([]EstacionamentoResponse, 0, len(ests))
		for i := range ests {
			res = append(res, toResponse(&ests[i]))
		}
		return c.JSON(res)
	}
}

func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var est models.Estacionamento
		if err := database.DB.First(&est, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Estacionamento não encontrado")
		}

		if err := auth.AuthorizeEstacionamento(c, &est); err != nil {
			return err
		}

		return c.JSON(toResponse(&est))
	}
}

func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var est models.Estacionamento
		if err := database.DB.First(&est, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Estacionamento não encontrado")
		}

		if err := auth.AuthorizeEstacionamento(c, &est); err != nil {
			return err
		}

		var body UpdateEstacionamentoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Nome != nil {
			nome := strings.TrimSpace(*body.Nome)
			if nome == "" {
				return fiber.NewError(fiber.StatusBadRequest, "nome não pode ser vazio")
			}
			est.Nome = nome
		}
		if body.Endereco != nil {
			est.Endereco = *body.Endereco
		}
		if body.TotalVagas != nil {
			if *body.TotalVagas <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "total_vagas deve ser maior que zero")
			}
			est.TotalVagas = *body.TotalVagas
		}
		if body.ValorPrimeiraHora != nil {
			est.ValorPrimeiraHora = *body.ValorPrimeiraHora
		}
		if body.ValorDemaisHoras != nil {
			est.ValorDemaisHoras = *body.ValorDemaisHoras
		}
		if body.ValorDiaria != nil {
			est.ValorDiaria = *body.ValorDiaria
		}

		if err := database.DB.Save(&est).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o estacionamento")
		}

		return c.JSON(toResponse(&est))
	}
}

func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var est models.Estacionamento
		if err := database.DB.First(&est, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Estacionamento não encontrado")
		}

		if err := auth.AuthorizeEstacionamento(c, &est); err != nil {
			return err
		}

		if err := database.DB.Delete(&est).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível remover o estacionamento")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
