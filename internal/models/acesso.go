package models

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type AcessoStatus string

const (
	StatusEstacionado AcessoStatus = "estacionado"
	StatusFinalizado  AcessoStatus = "finalizado"
)

// Acesso registra a permanência de um veículo: entrada sempre presente,
// saída nula enquanto o veículo estiver no pátio. O campo Status carrega o
// mesmo sinal de forma explícita e é mantido em sincronia com HoraSaida.
type Acesso struct {
	ID               uint           `gorm:"primaryKey"`
	IDEstacionamento uint           `gorm:"column:id_estacionamento;index;not null"`
	Estacionamento   Estacionamento `gorm:"foreignKey:IDEstacionamento"`

	Placa       string       `gorm:"size:10"`
	HoraEntrada time.Time    `gorm:"index;not null"`
	HoraSaida   null.Time    `gorm:"index"`
	Status      AcessoStatus `gorm:"size:20;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
