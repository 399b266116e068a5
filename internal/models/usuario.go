package models

import "time"

type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleFuncionario UserRole = "funcionario"
)

type Usuario struct {
	ID       uint   `gorm:"primaryKey"`
	IDPessoa uint   `gorm:"column:id_pessoa;uniqueIndex;not null"`
	Pessoa   Pessoa `gorm:"foreignKey:IDPessoa"`

	Login     string   `gorm:"size:100;uniqueIndex;not null"`
	SenhaHash string   `gorm:"size:255;not null"`
	Role      UserRole `gorm:"size:20;not null"`

	// funcionário pertence a um admin; admin não tem admin
	AdminID *uint    `gorm:"index"`
	Admin   *Usuario `gorm:"foreignKey:AdminID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveAdminID resolve a identidade de admin usada nas checagens de
// posse de estacionamento: o próprio id para admins, o admin_id para
// funcionários.
func (u *Usuario) EffectiveAdminID() *uint {
	if u.Role == RoleAdmin {
		id := u.ID
		return &id
	}
	return u.AdminID
}
