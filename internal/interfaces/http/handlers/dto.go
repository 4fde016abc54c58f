// Package handlers implements the HTTP request handlers.
package handlers

import (
	"ticketdesk/internal/application/ticket/usecases"
	userusecases "ticketdesk/internal/application/user/usecases"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r *RegisterRequest) ToCommand() userusecases.RegisterCommand {
	return userusecases.RegisterCommand{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() userusecases.LoginCommand {
	return userusecases.LoginCommand{
		Username: r.Username,
		Password: r.Password,
	}
}

type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Priority    string `json:"priority" binding:"required,ticketpriority"`
}

func (r *CreateTicketRequest) ToCommand(ownerID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Subject:     r.Subject,
		Description: r.Description,
		Priority:    r.Priority,
		OwnerID:     ownerID,
	}
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required,userrole"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type PrincipalResponse struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
