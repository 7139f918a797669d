package dto

import "properties-api/domain"

// RegisterRequest creates a new account. Accounts always start as viewers;
// admins are only created through the startup seed.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed JWT plus the account it belongs to.
type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
