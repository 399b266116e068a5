package faturamento

import (
	"time"

	"estacionamento-backend/internal/auth"
	"estacionamento-backend/internal/config"
	"estacionamento-backend/internal/database"
	"estacionamento-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type DiaFaturamento struct {
	Data    string  `json:"data"`
	Valor   float64 `json:"valor"`
	Acessos int     `json:"acessos"`
}

type ResumoResponse struct {
	EstacionamentoID uint             `json:"estacionamento_id"`
	De               string           `json:"de"`
	Ate              string           `json:"ate"`
	Total            float64          `json:"total"`
	PorDia           []DiaFaturamento `json:"por_dia"`
}

// GET /estacionamentos/:id/faturamento?de=YYYY-MM-DD&ate=YYYY-MM-DD
// Resumo de faturamento por dia local dentro do intervalo pedido.
func ResumoHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var est models.Estacionamento
		if err := database.DB.First(&est, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Estacionamento não encontrado")
		}

		if err := auth.AuthorizeEstacionamento(c, &est); err != nil {
			return err
		}

		deStr := c.Query("de")
		ateStr := c.Query("ate")
		if deStr == "" || ateStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "de e ate são obrigatórios (YYYY-MM-DD)")
		}

		loc := cfg.Location
		de, err := time.ParseInLocation("2006-01-02", deStr, loc)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "data 'de' inválida")
		}
		ate, err := time.ParseInLocation("2006-01-02", ateStr, loc)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "data 'ate' inválida")
		}
		if ate.Before(de) {
			return fiber.NewError(fiber.StatusBadRequest, "'ate' não pode ser anterior a 'de'")
		}
		fim := ate.AddDate(0, 0, 1) // intervalo semiaberto [de, ate+1d)

		var fats []models.Faturamento
		if err := database.DB.Model(&models.Faturamento{}).
			Select("faturamentos.*").
			Joins("JOIN acessos ON acessos.id = faturamentos.id_acesso").
			Where("acessos.id_estacionamento = ? AND faturamentos.data_faturamento >= ? AND faturamentos.data_faturamento < ?",
				est.ID, de, fim).
			Find(&fats).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao consultar o faturamento")
		}

		// um balde por dia do intervalo, inclusive dias sem movimento
		porDia := make(map[string]*DiaFaturamento)
		ordem := make([]string, 0)
		for d := de; d.Before(fim); d = d.AddDate(0, 0, 1) {
			key := d.Format("2006-01-02")
			porDia[key] = &DiaFaturamento{Data: key}
			ordem = append(ordem, key)
		}

		var total float64
		for _, f := range fats {
			key := f.DataFaturamento.In(loc).Format("2006-01-02")
			if dia, ok := porDia[key]; ok {
				dia.Valor += f.Valor
				dia.Acessos++
			}
			total += f.Valor
		}

		res := ResumoResponse{
			EstacionamentoID: est.ID,
			De:               deStr,
			Ate:              ateStr,
			Total:            total,
			PorDia:           make([]DiaFaturamento, 0, len(ordem)),
		}
		for _, key := range ordem {
			res.PorDia = append(res.PorDia, *porDia[key])
		}

		return c.JSON(res)
	}
}
