package auth

import (
	authapp "eduhub/internal/application/auth"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r *RegisterRequest) ToCommand() authapp.RegisterCommand {
	return authapp.RegisterCommand{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() authapp.LoginCommand {
	return authapp.LoginCommand{
		Email:    r.Email,
		Password: r.Password,
	}
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	UserID       uint   `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func ToAuthResponse(r *authapp.AuthResult) *AuthResponse {
	if r == nil {
		return nil
	}
	return &AuthResponse{
		UserID:       r.UserID,
		Name:         r.Name,
		Email:        r.Email,
		Role:         r.Role,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresIn:    r.ExpiresIn,
	}
}
