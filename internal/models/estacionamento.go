package models

import "time"

type Estacionamento struct {
	ID         uint   `gorm:"primaryKey"`
	Nome       string `gorm:"size:255;not null"`
	Endereco   string `gorm:"size:255"`
	TotalVagas int    `gorm:"not null"`

	// tarifas
	ValorPrimeiraHora float64 `gorm:"type:numeric(10,2)"`
	ValorDemaisHoras  float64 `gorm:"type:numeric(10,2)"`
	ValorDiaria       float64 `gorm:"type:numeric(10,2)"`

	AdminID *uint    `gorm:"index"`
	Admin   *Usuario `gorm:"foreignKey:AdminID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
