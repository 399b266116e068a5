package acesso

import (
	"math"
	"time"

	"estacionamento-backend/internal/models"
)

// CalcularValor calcula o valor devido por uma permanência a partir das
// tarifas do estacionamento: primeira hora cheia + demais horas iniciadas,
// com teto na diária quando ela for mais barata; permanências de 24h ou mais
// pagam diária por dia iniciado.
func CalcularValor(est *models.Estacionamento, entrada, saida time.Time) float64 {
	dur := saida.Sub(entrada)
	if dur < 0 {
		dur = 0
	}

	if dur >= 24*time.Hour {
		dias := math.Ceil(dur.Hours() / 24)
		return round2(dias * est.ValorDiaria)
	}

	horas := int(math.Ceil(dur.Hours()))
	if horas < 1 {
		horas = 1
	}

	valor := est.ValorPrimeiraHora + float64(horas-1)*est.ValorDemaisHoras
	if est.ValorDiaria > 0 && valor > est.ValorDiaria {
		valor = est.ValorDiaria
	}
	return round2(valor)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
