package dashboard

import (
	"math"
	"time"

	"estacionamento-backend/internal/auth"
	"estacionamento-backend/internal/config"
	"estacionamento-backend/internal/database"
	"estacionamento-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type VisaoGeralMetrics struct {
	VagasOcupadas       int64   `json:"vagas_ocupadas"`
	TotalVagas          int     `json:"total_vagas"`
	PorcentagemOcupacao float64 `json:"porcentagem_ocupacao"`
	EntradasHoje        int64   `json:"entradas_hoje"`
	SaidasHoje          int64   `json:"saidas_hoje"`
	FaturamentoHoje     float64 `json:"faturamento_hoje"`
}

type OcupacaoHoraPoint struct {
	Hora    int `json:"hora"`
	Acessos int `json:"acessos"`
}

type VisaoGeralResponse struct {
	Metrics             VisaoGeralMetrics   `json:"metrics"`
	GraficoOcupacaoHora []OcupacaoHoraPoint `json:"grafico_ocupacao_hora"`
}

// localDayRange devolve o intervalo semiaberto [00:00, 00:00 do dia seguinte)
// do dia local que contém t. Comparar timestamps contra esse intervalo
// equivale a comparar a data local, sem depender de cast por dialeto.
func localDayRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	lt := t.In(loc)
	start := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// VariacaoPercentual aplica a regra de variação do delta de ocupação entre
// ontem e hoje. Baseline zero resulta em 0.0 — sem divisão por zero, ainda
// que isso achate variações grandes partindo de um dia estável.
func VariacaoPercentual(deltaHoje, deltaOntem int64) float64 {
	if deltaOntem == 0 {
		return 0.0
	}
	p := (float64(deltaHoje-deltaOntem) / math.Abs(float64(deltaOntem))) * 100
	return math.Round(p*100) / 100
}

// GET /dashboard/:estacionamento_id
// Visão geral de um estacionamento: ocupação atual, movimento do dia,
// faturamento do dia e o histograma de entradas por hora.
func VisaoGeralHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		estID, err := c.ParamsInt("estacionamento_id")
		if err != nil || estID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "estacionamento_id inválido")
		}

		var est models.Estacionamento
		if err := database.DB.First(&est, estID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Estacionamento não encontrado")
		}

		if err := auth.AuthorizeEstacionamento(c, &est); err != nil {
			return err
		}

		loc := cfg.Location
		hojeInicio, hojeFim := localDayRange(time.Now(), loc)
		ontemInicio, ontemFim := localDayRange(time.Now().AddDate(0, 0, -1), loc)

		var vagasOcupadas int64
		if err := database.DB.Model(&models.Acesso{}).
			Where("id_estacionamento = ? AND hora_saida IS NULL", est.ID).
			Count(&vagasOcupadas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao consultar a ocupação")
		}

		entradasHoje, err := contarAcessos(est.ID, "hora_entrada", hojeInicio, hojeFim)
		if err != nil {
			return err
		}
		saidasHoje, err := contarAcessos(est.ID, "hora_saida", hojeInicio, hojeFim)
		if err != nil {
			return err
		}
		entradasOntem, err := contarAcessos(est.ID, "hora_entrada", ontemInicio, ontemFim)
		if err != nil {
			return err
		}
		saidasOntem, err := contarAcessos(est.ID, "hora_saida", ontemInicio, ontemFim)
		if err != nil {
			return err
		}

		var faturamentoHoje float64
		if err := database.DB.Model(&models.Faturamento{}).
			Joins("JOIN acessos ON acessos.id = faturamentos.id_acesso").
			Where("acessos.id_estacionamento = ? AND faturamentos.data_faturamento >= ? AND faturamentos.data_faturamento < ?",
				est.ID, hojeInicio, hojeFim).
			Select("COALESCE(SUM(faturamentos.valor), 0)").
			Scan(&faturamentoHoje).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao consultar o faturamento")
		}

		deltaHoje := entradasHoje - saidasHoje
		deltaOntem := entradasOntem - saidasOntem
		porcentagem := VariacaoPercentual(deltaHoje, deltaOntem)

		// histograma conta apenas entradas: mede padrão de chegada, não
		// ocupação instantânea por hora
		var acessosHoje []models.Acesso
		if err := database.DB.
			Where("id_estacionamento = ? AND hora_entrada >= ? AND hora_entrada < ?", est.ID, hojeInicio, hojeFim).
			Find(&acessosHoje).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao consultar os acessos de hoje")
		}

		var porHora [24]int
		for _, a := range acessosHoje {
			porHora[a.HoraEntrada.In(loc).Hour()]++
		}

		grafico := make([]OcupacaoHoraPoint, 0, 24)
		for h := 0; h < 24; h++ {
			grafico = append(grafico, OcupacaoHoraPoint{Hora: h, Acessos: porHora[h]})
		}

		return c.JSON(VisaoGeralResponse{
			Metrics: VisaoGeralMetrics{
				VagasOcupadas:       vagasOcupadas,
				TotalVagas:          est.TotalVagas,
				PorcentagemOcupacao: porcentagem,
				EntradasHoje:        entradasHoje,
				SaidasHoje:          saidasHoje,
				FaturamentoHoje:     faturamentoHoje,
			},
			GraficoOcupacaoHora: grafico,
		})
	}
}

func contarAcessos(estID uint, coluna string, inicio, fim time.Time) (int64, error) {
	var n int64
	err := database.DB.Model(&models.Acesso{}).
		Where("id_estacionamento = ?", estID).
		Where(coluna+" >= ? AND "+coluna+" < ?", inicio, fim).
		Count(&n).Error
	if err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Erro ao consultar os acessos")
	}
	return n, nil
}
