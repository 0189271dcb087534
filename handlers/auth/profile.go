package auth

import (
	"github.com/collegefinder/api/utils/middleware"
	"github.com/collegefinder/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /auth/me for the authenticated user
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "Not authenticated")
	}

	return response.Success(c, UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	})
}
