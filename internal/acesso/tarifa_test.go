package acesso

import (
	"testing"
	"time"

	"estacionamento-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCalcularValor(t *testing.T) {
	est := &models.Estacionamento{
		ValorPrimeiraHora: 10,
		ValorDemaisHoras:  5,
		ValorDiaria:       30,
	}
	entrada := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	casos := []struct {
		nome  string
		saida time.Time
		valor float64
	}{
		{"menos de uma hora paga a primeira hora", entrada.Add(20 * time.Minute), 10},
		{"uma hora exata paga a primeira hora", entrada.Add(time.Hour), 10},
		{"hora iniciada conta inteira", entrada.Add(90 * time.Minute), 15},
		{"tres horas", entrada.Add(3 * time.Hour), 20},
		{"teto na diaria quando mais barata", entrada.Add(10 * time.Hour), 30},
		{"um dia inteiro paga uma diaria", entrada.Add(24 * time.Hour), 30},
		{"dia iniciado paga diaria adicional", entrada.Add(30 * time.Hour), 60},
		{"saida antes da entrada nao cobra negativo", entrada.Add(-time.Hour), 10},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			require.Equal(t, c.valor, CalcularValor(est, entrada, c.saida))
		})
	}
}

func TestCalcularValorSemDiaria(t *testing.T) {
	// sem diária cadastrada não há teto
	est := &models.Estacionamento{ValorPrimeiraHora: 10, ValorDemaisHoras: 5}
	entrada := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	require.Equal(t, 55.0, CalcularValor(est, entrada, entrada.Add(10*time.Hour)))
}
