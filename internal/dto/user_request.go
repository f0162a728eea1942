package dto

import "github.com/questweb/user-service/internal/domain"

// UserUpdateRequest carries the PUT /user/:id patch body. Nil fields mean
// "leave unchanged".
type UserUpdateRequest struct {
	Username *string      `json:"username"`
	Role     *domain.Role `json:"role"`
}
