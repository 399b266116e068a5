package acesso

import (
	"strings"
	"time"

	"estacionamento-backend/internal/auth"
	"estacionamento-backend/internal/database"
	"estacionamento-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/guregu/null.v4"
	"gorm.io/gorm"
)

type EntradaRequest struct {
	EstacionamentoID uint   `json:"estacionamento_id"`
	Placa            string `json:"placa"`
}

type AcessoResponse struct {
	ID               uint       `json:"id"`
	EstacionamentoID uint       `json:"estacionamento_id"`
	Placa            string     `json:"placa"`
	HoraEntrada      time.Time  `json:"hora_entrada"`
	HoraSaida        *time.Time `json:"hora_saida"`
	Status           string     `json:"status"`
}

type SaidaResponse struct {
	Acesso AcessoResponse `json:"acesso"`
	Valor  float64        `json:"valor"`
}

func toResponse(a *models.Acesso) AcessoResponse {
	res := AcessoResponse{
		ID:               a.ID,
		EstacionamentoID: a.IDEstacionamento,
		Placa:            a.Placa,
		HoraEntrada:      a.HoraEntrada,
		Status:           string(a.Status),
	}
	if a.HoraSaida.Valid {
		t := a.HoraSaida.Time
		res.HoraSaida = &t
	}
	return res
}

// EntradaHandler abre um acesso: o veículo entrou e ocupa uma vaga até a
// saída ser registrada.
func EntradaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body EntradaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.EstacionamentoID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "estacionamento_id é obrigatório")
		}
		body.Placa = strings.ToUpper(strings.TrimSpace(body.Placa))

		var est models.Estacionamento
		if err := database.DB.First(&est, body.EstacionamentoID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Estacionamento não encontrado")
		}

		if err := auth.AuthorizeEstacionamento(c, &est); err != nil {
			return err
		}

		var ocupadas int64
		if err := database.DB.Model(&models.Acesso{}).
			Where("id_estacionamento = ? AND hora_saida IS NULL", est.ID).
			Count(&ocupadas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao consultar a ocupação")
		}
		if ocupadas >= int64(est.TotalVagas) {
			return fiber.NewError(fiber.StatusConflict, "Estacionamento lotado")
		}

		a := models.Acesso{
			IDEstacionamento: est.ID,
			Placa:            body.Placa,
			HoraEntrada:      time.Now(),
			Status:           models.StatusEstacionado,
		}
		if err := database.DB.Create(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível registrar a entrada")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(&a))
	}
}

// SaidaHandler fecha um acesso aberto e gera o faturamento correspondente a
// partir das tarifas do estacionamento.
func SaidaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var a models.Acesso
		if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Acesso não encontrado")
		}

		var est models.Estacionamento
		if err := database.DB.First(&est, a.IDEstacionamento).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Estacionamento não encontrado")
		}

		if err := auth.AuthorizeEstacionamento(c, &est); err != nil {
			return err
		}

		if a.Status == models.StatusFinalizado {
			return fiber.NewError(fiber.StatusConflict, "Acesso já finalizado")
		}

		saida := time.Now()
		valor := CalcularValor(&est, a.HoraEntrada, saida)

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			a.HoraSaida = null.TimeFrom(saida)
			a.Status = models.StatusFinalizado
			if err := tx.Save(&a).Error; err != nil {
				return err
			}

			fat := models.Faturamento{
				IDAcesso:        a.ID,
				Valor:           valor,
				DataFaturamento: saida,
			}
			return tx.Create(&fat).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível registrar a saída")
		}

		return c.JSON(SaidaResponse{
			Acesso: toResponse(&a),
			Valor:  valor,
		})
	}
}

// ListByEstacionamentoHandler lista os acessos de um estacionamento, mais
// recentes primeiro.
func ListByEstacionamentoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var est models.Estacionamento
		if err := database.DB.First(&est, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Estacionamento não encontrado")
		}

		if err := auth.AuthorizeEstacionamento(c, &est); err != nil {
			return err
		}

		var acessos []models.Acesso
		if err := database.DB.
			Where("id_estacionamento = ?", est.ID).
			Order("hora_entrada DESC").
			Find(&acessos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os acessos")
		}

		res := make([]AcessoResponse, 0, len(acessos))
		for i := range acessos {
			res = append(res, toResponse(&acessos[i]))
		}
		return c.JSON(res)
	}
}
