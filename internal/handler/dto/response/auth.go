package response

import (
	"time"

	"github.com/arjitrawat15/Stavia/internal/usecase/commands"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expiresIn"`
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		Token:     r.Token,
		ExpiresIn: int64(r.ExpiresIn.Seconds()),
		UserID:    r.UserID,
		Email:     r.Email,
		FullName:  r.FullName,
	}
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phoneNumber"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		FullName:  v.FullName,
		Email:     v.Email,
		Phone:     v.Phone,
		CreatedAt: v.CreatedAt,
	}
}
