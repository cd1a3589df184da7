package entity

import "time"

// User representa un usuario del sistema. Cada usuario es dueño de exactamente
// un documento de plan de negocio (ver PlanDocument).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
