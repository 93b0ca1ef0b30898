package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleCoach  UserRole = "coach"
	RolePlayer UserRole = "player"
)

type User struct {
	Base
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	Name         string     `db:"name"`
	Phone        *string    `db:"phone"`
	Role         UserRole   `db:"role"`
	ClubID       *uuid.UUID `db:"club_id"`
	IsActive     bool       `db:"is_active"`
	LastLogin    *time.Time `db:"last_login"`
}
