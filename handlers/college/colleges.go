package college

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/collegefinder/api/services"
	"github.com/collegefinder/api/utils/response"
	"github.com/collegefinder/api/utils/validation"
	"github.com/gofiber/fiber/v2"
)

const (
	collegeListCacheKey = "colleges:all"
	collegeListCacheTTL = 60 * time.Second
)

// CreateCollege handles POST /college/ (multipart form). The college and
// every course in the form commit together or not at all.
func (h *CollegeHandler) CreateCollege(c *fiber.Ctx) error {
	name := validation.SanitizeString(c.FormValue("college_name"))
	if name == "" {
		return response.BadRequest(c, "'college_name' is required.")
	}

	in := services.CreateCollegeInput{
		Name:        name,
		Address:     validation.SanitizeString(c.FormValue("address")),
		About:       validation.SanitizeString(c.FormValue("about")),
		Stream:      validation.SanitizeString(c.FormValue("stream")),
		PriceRange:  validation.SanitizeString(c.FormValue("price_range")),
		CoursesJSON: c.FormValue("courses"),
		ImageURL:    c.FormValue("college_image_url"),
		ActorIP:     c.IP(),
	}

	// Uploaded file takes priority over the URL
	if fileHeader, err := c.FormFile("college_image_file"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return response.BadRequest(c, "Unable to read uploaded image.")
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return response.BadRequest(c, "Unable to read uploaded image.")
		}
		in.ImageBytes = data
		in.ImageMime = fileHeader.Header.Get("Content-Type")
	}

	college, err := h.colleges.CreateCollege(c.Context(), in)
	if err != nil {
		return h.mapIngestionError(c, err)
	}

	h.invalidateListCache(c)

	return response.Created(c, h.collegeOut(college))
}

func (h *CollegeHandler) mapIngestionError(c *fiber.Ctx, err error) error {
	var courseErr *services.CourseValidationError
	var imageErr *services.ImageFetchError

	switch {
	case errors.Is(err, services.ErrBadCourseJSON),
		errors.Is(err, services.ErrCoursesNotArray):
		return response.BadRequest(c, err.Error())
	case errors.As(err, &courseErr):
		return response.BadRequest(c, courseErr.Error())
	case errors.As(err, &imageErr):
		return response.BadRequest(c, imageErr.Error())
	default:
		return response.InternalServerError(c, "Failed to add college")
	}
}

// ListColleges handles GET /college/. An empty catalog is a 404, matching
// the original API contract; the liked/compare listings differ on purpose.
func (h *CollegeHandler) ListColleges(c *fiber.Ctx) error {
	if h.cache != nil {
		var cached []CollegeOut
		if err := h.cache.GetJSON(c.Context(), collegeListCacheKey, &cached); err == nil && len(cached) > 0 {
			return response.Success(c, cached)
		}
	}

	colleges, err := h.colleges.ListColleges(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch colleges")
	}
	if len(colleges) == 0 {
		return response.NotFound(c, "No colleges found.")
	}

	out := h.collegesOut(colleges)

	if h.cache != nil {
		h.cache.SetJSON(c.Context(), collegeListCacheKey, out, collegeListCacheTTL)
	}

	return response.Success(c, out)
}

// GetCollege handles GET /college/:id
func (h *CollegeHandler) GetCollege(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	college, err := h.colleges.GetCollege(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCollegeNotFound) {
			return response.NotFound(c, fmt.Sprintf("College with id %d not found.", id))
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	return response.Success(c, h.collegeOut(college))
}

// GetCollegeImage handles GET /college/:id/image and serves the raw bytes
func (h *CollegeHandler) GetCollegeImage(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	data, mime, err := h.colleges.GetImage(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			return response.NotFound(c, "Image not found")
		}
		return response.InternalServerError(c, "Failed to fetch image")
	}

	c.Set(fiber.HeaderContentType, mime)
	return c.Send(data)
}

// DeleteCollege handles DELETE /college/:id. Courses and like/compare rows
// cascade with the college row.
func (h *CollegeHandler) DeleteCollege(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	name, err := h.colleges.DeleteCollege(c.Context(), uint(id), nil, c.IP())
	if err != nil {
		if errors.Is(err, services.ErrCollegeNotFound) {
			return response.NotFound(c, fmt.Sprintf("College with id %d not found.", id))
		}
		return response.InternalServerError(c, "Failed to delete college")
	}

	h.invalidateListCache(c)

	return response.SuccessWithMessage(c,
		fmt.Sprintf("College '%s' and all its related data deleted successfully.", name), nil)
}

// GetCollegesByName handles GET /college/name/:college_name
func (h *CollegeHandler) GetCollegesByName(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("college_name"))
	if err != nil {
		return response.BadRequest(c, "Invalid college name")
	}

	colleges, err := h.colleges.FindByName(c.Context(), name)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch colleges")
	}
	if len(colleges) == 0 {
		return response.NotFound(c, "No colleges found with this name")
	}

	return response.Success(c, h.collegesOut(colleges))
}

func (h *CollegeHandler) invalidateListCache(c *fiber.Ctx) {
	if h.cache != nil {
		h.cache.Delete(c.Context(), collegeListCacheKey)
	}
}
