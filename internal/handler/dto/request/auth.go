package request

import (
	"github.com/arjitrawat15/Stavia/internal/usecase/commands"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type SignupRequest struct {
	FullName    string `json:"fullName" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=50"`
}

func (r *SignupRequest) ToInput() commands.SignupInput {
	return commands.SignupInput{
		FullName:    r.FullName,
		Email:       r.Email,
		Password:    r.Password,
		PhoneNumber: r.PhoneNumber,
	}
}
