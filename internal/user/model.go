package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleConsumer Role = "CONSUMER"
)

type User struct {
	ID           uint
	Username     string
	Role         Role
	AvatarURL    *string
	PasswordHash *string
	CreatedAt    time.Time
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}
