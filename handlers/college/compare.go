package college

import (
	"errors"
	"strconv"

	"github.com/collegefinder/api/services"
	"github.com/collegefinder/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

func compareParams(c *fiber.Ctx) (uint, uint, error) {
	userID, err := strconv.ParseUint(c.Params("user_id"), 10, 32)
	if err != nil {
		return 0, 0, errors.New("invalid user id")
	}
	collegeID, err := strconv.ParseUint(c.Params("college_id"), 10, 32)
	if err != nil {
		return 0, 0, errors.New("invalid college id")
	}
	return uint(userID), uint(collegeID), nil
}

// AddToCompare handles POST /college/compare/:user_id/:college_id. A
// duplicate add is a 400, deliberately stricter than the like toggle.
func (h *CollegeHandler) AddToCompare(c *fiber.Ctx) error {
	userID, collegeID, err := compareParams(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	entry, err := h.relations.AddCompare(c.Context(), userID, collegeID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found.")
		case errors.Is(err, services.ErrCollegeNotFound):
			return response.NotFound(c, "College not found.")
		case errors.Is(err, services.ErrAlreadyInCompareList):
			return response.BadRequest(c, "College already in compare list")
		default:
			return response.InternalServerError(c, "Failed to add college to compare list")
		}
	}

	return response.SuccessWithMessage(c, "College added to compare list", entry)
}

// RemoveFromCompare handles DELETE /college/compare/:user_id/:college_id
func (h *CollegeHandler) RemoveFromCompare(c *fiber.Ctx) error {
	userID, collegeID, err := compareParams(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.relations.RemoveCompare(c.Context(), userID, collegeID); err != nil {
		if errors.Is(err, services.ErrNotInCompareList) {
			return response.NotFound(c, "College not found in compare list")
		}
		return response.InternalServerError(c, "Failed to remove college from compare list")
	}

	return response.SuccessWithMessage(c, "College removed from compare list", nil)
}

// GetComparedColleges handles GET /college/compare/:user_id. Empty list is
// a 200 with a message, same shape as the liked listing.
func (h *CollegeHandler) GetComparedColleges(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("user_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	colleges, err := h.relations.ComparedColleges(c.Context(), uint(userID))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch compare list")
	}

	if len(colleges) == 0 {
		return response.SuccessWithMessage(c, "No colleges in compare list", fiber.Map{
			"compared_colleges": []CollegeOut{},
		})
	}

	out := h.collegesOut(colleges)
	return response.Success(c, fiber.Map{
		"user_id":           userID,
		"total_compared":    len(out),
		"compared_colleges": out,
	})
}
