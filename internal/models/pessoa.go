package models

import "time"

type Pessoa struct {
	ID        uint    `gorm:"primaryKey"`
	Nome      string  `gorm:"size:255;not null"`
	CPF       string  `gorm:"column:cpf;size:14;uniqueIndex;not null"`
	Email     *string `gorm:"size:255;uniqueIndex"` // opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}
