package domain

import (
	"time"

	"github.com/google/uuid"
)

// User описывает пользователя. Аутентификация и пароли живут в Identity
// и в этот сервис не попадают.
type User struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

func NewUser(email, firstName, lastName string) *User {
	return &User{
		ID:        uuid.New(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
}
