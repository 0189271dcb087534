package services

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCourseJSON means the courses form field is not valid JSON
	ErrBadCourseJSON = errors.New("Invalid JSON format for 'courses'.")
	// ErrCoursesNotArray means the courses form field parsed but is not an array
	ErrCoursesNotArray = errors.New("'courses' must be a JSON array.")

	ErrUserNotFound    = errors.New("user not found")
	ErrCollegeNotFound = errors.New("college not found")
	ErrImageNotFound   = errors.New("image not found")

	ErrAlreadyInCompareList = errors.New("college already in compare list")
	ErrNotInCompareList     = errors.New("college not found in compare list")

	// ErrPersistence is returned when the ingestion transaction fails for a
	// storage-layer reason. The underlying cause is logged, not surfaced.
	ErrPersistence = errors.New("failed to add college")
)

// CourseValidationError is a business-rule violation in a submitted course
// list. Message wording is part of the API contract.
type CourseValidationError struct {
	CourseName string
	Category   string
	Expected   int
	Got        int
	Reason     string
}

func (e *CourseValidationError) Error() string {
	return e.Reason
}

func missingFieldError() *CourseValidationError {
	return &CourseValidationError{
		Reason: "Each course must have 'course_name' and 'category'.",
	}
}

func invalidCategoryError(name, category string) *CourseValidationError {
	return &CourseValidationError{
		CourseName: name,
		Category:   category,
		Reason:     fmt.Sprintf("Invalid category '%s' for course '%s'. Must be 'UG', 'PG', or 'Engineering'.", category, name),
	}
}

func feeCountError(name, category string, expected, got int) *CourseValidationError {
	return &CourseValidationError{
		CourseName: name,
		Category:   category,
		Expected:   expected,
		Got:        got,
		Reason:     fmt.Sprintf("Course '%s' must have exactly %d semester fees, got %d.", name, expected, got),
	}
}

// ImageFetchError reports a failed remote image download
type ImageFetchError struct {
	URL string
	Err error
}

func (e *ImageFetchError) Error() string {
	return "Unable to fetch image from URL."
}

func (e *ImageFetchError) Unwrap() error { return e.Err }
