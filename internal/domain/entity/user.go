package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RolePetugas = "petugas" // operador de conteo (piso o bodega)
)

// Estados de cuenta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un operador del sistema que registra conteos.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, petugas
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
