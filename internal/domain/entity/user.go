package entity

import "time"

// User usuario de la API (autenticación Bearer JWT).
type User struct {
	ID           string
	Email        string // único
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
