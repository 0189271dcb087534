package college

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/collegefinder/api/services"
	"github.com/collegefinder/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles POST /college/like/:college_id with a user_id form
// field. Like if absent, unlike if present.
func (h *CollegeHandler) ToggleLike(c *fiber.Ctx) error {
	collegeID, err := strconv.ParseUint(c.Params("college_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	userID, err := strconv.ParseUint(c.FormValue("user_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "'user_id' form field is required.")
	}

	liked, err := h.relations.ToggleLike(c.Context(), uint(userID), uint(collegeID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found.")
		case errors.Is(err, services.ErrCollegeNotFound):
			return response.NotFound(c, "College not found.")
		default:
			return response.InternalServerError(c, "Failed to toggle like")
		}
	}

	var message string
	if liked {
		message = fmt.Sprintf("User_id %d liked college_id %d.", userID, collegeID)
	} else {
		message = fmt.Sprintf("User_id %d unliked college_id %d.", userID, collegeID)
	}

	return response.SuccessWithMessage(c, message, fiber.Map{"liked": liked})
}

// GetLikedColleges handles GET /college/liked/:user_id. An empty list is a
// 200 with an explanatory message, not a 404.
func (h *CollegeHandler) GetLikedColleges(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("user_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	colleges, err := h.relations.LikedColleges(c.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found.")
		}
		return response.InternalServerError(c, "Failed to fetch liked colleges")
	}

	if len(colleges) == 0 {
		return response.SuccessWithMessage(c, "User has not liked any colleges yet.", fiber.Map{
			"liked_colleges": []CollegeOut{},
		})
	}

	out := h.collegesOut(colleges)
	return response.Success(c, fiber.Map{
		"user_id":        userID,
		"total_liked":    len(out),
		"liked_colleges": out,
	})
}
