package models

import "time"

type Faturamento struct {
	ID       uint   `gorm:"primaryKey"`
	IDAcesso uint   `gorm:"column:id_acesso;index;not null"`
	Acesso   Acesso `gorm:"foreignKey:IDAcesso"`

	Valor           float64   `gorm:"type:numeric(10,2);not null"`
	DataFaturamento time.Time `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
