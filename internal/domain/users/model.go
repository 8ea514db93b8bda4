package users

import "zoo-management/internal/domain/authz"

// User es una cuenta del sistema. Password guarda el hash bcrypt.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     authz.Role
}

type DTO struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  authz.Role `json:"role"`
}

func ToDTO(u User) DTO {
	return DTO{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type AddInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// UpdateInput es parcial. Role solo lo puede cambiar un Admin.
type UpdateInput struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

type PageQuery struct {
	Page     int
	PageSize int
	Search   string
}

type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	User  DTO    `json:"user"`
	Token string `json:"token"`
}
