package request

import (
	"court-reserve/internal/domain/user"
	"court-reserve/internal/usecase"
)

type SignUpRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	FullName     string `json:"full_name" binding:"required"`
	FullNameKana string `json:"full_name_kana,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

func (r *SignUpRequest) ToParams() (usecase.SignUpParams, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return usecase.SignUpParams{}, err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return usecase.SignUpParams{}, err
	}
	return usecase.SignUpParams{
		Email:        email,
		Password:     password,
		FullName:     r.FullName,
		FullNameKana: r.FullNameKana,
		Phone:        r.Phone,
	}, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Credentials{}, err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(email, password), nil
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type EmailChangeRequest struct {
	NewEmail string `json:"new_email" binding:"required,email"`
}

type EmailChangeConfirmRequest struct {
	Token string `json:"token" binding:"required"`
}

type AccountDeleteRequest struct {
	Token string `json:"token" binding:"required"`
}
