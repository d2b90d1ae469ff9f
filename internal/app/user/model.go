package user

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:char(24)"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RegisterRequest struct {
	Name string `json:"name" binding:"required"`
}

type RegisterResponse struct {
	User       *User  `json:"user"`
	SessionKey string `json:"sessionKey"`
}
