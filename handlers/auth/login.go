package auth

import (
	"crypto/subtle"

	"github.com/collegefinder/api/model"
	authutil "github.com/collegefinder/api/utils/auth"
	"github.com/collegefinder/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Message      string `json:"message"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	Username     string `json:"username,omitempty"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"` // in seconds
}

// Login handles POST /auth/login. The env-configured admin account is
// checked before the users table.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	ip := c.IP()

	// Admin first. Constant-time compare so the check leaks no timing
	// information about the configured password.
	if h.env.ADMIN_EMAIL != "" && req.Email == h.env.ADMIN_EMAIL {
		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.env.ADMIN_PASSWORD)) != 1 {
			h.recordFailure(c, ip)
			return response.Unauthorized(c, "Invalid credentials")
		}
		return h.issueTokens(c, ip, 0, req.Email, "", "admin", "Admin login successful")
	}

	var user model.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// Record the failed attempt even when the user does not exist
		h.recordFailure(c, ip)
		return response.Unauthorized(c, "Invalid credentials")
	}

	if err := authutil.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		h.recordFailure(c, ip)
		return response.Unauthorized(c, "Invalid credentials")
	}

	return h.issueTokens(c, ip, user.ID, user.Email, user.Username, user.Role, "User login successful")
}

func (h *AuthHandler) recordFailure(c *fiber.Ctx, ip string) {
	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordFailedAttempt(c, ip)
	}
}

func (h *AuthHandler) issueTokens(c *fiber.Ctx, ip string, userID uint, email, username, role, message string) error {
	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(userID, email, role)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate access token")
	}

	refreshToken, err := h.jwtManager.GenerateRefreshToken(userID, email, role)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate refresh token")
	}

	return response.Success(c, LoginResponse{
		Message:      message,
		Role:         role,
		Email:        email,
		Username:     username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    24 * 60 * 60, // 24 hours in seconds
	})
}
