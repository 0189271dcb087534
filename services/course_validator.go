package services

import (
	"encoding/json"

	"github.com/collegefinder/api/model"
)

// CourseInput is the loosely-typed course record accepted inside the
// "courses" form field. Unset fee slots stay nil.
type CourseInput struct {
	Name     string   `json:"course_name"`
	About    string   `json:"course_about"`
	Category string   `json:"category"`
	Sem1Fee  *float64 `json:"sem1_fee"`
	Sem2Fee  *float64 `json:"sem2_fee"`
	Sem3Fee  *float64 `json:"sem3_fee"`
	Sem4Fee  *float64 `json:"sem4_fee"`
	Sem5Fee  *float64 `json:"sem5_fee"`
	Sem6Fee  *float64 `json:"sem6_fee"`
	Sem7Fee  *float64 `json:"sem7_fee"`
	Sem8Fee  *float64 `json:"sem8_fee"`
}

func (in *CourseInput) fees() []*float64 {
	return []*float64{in.Sem1Fee, in.Sem2Fee, in.Sem3Fee, in.Sem4Fee, in.Sem5Fee, in.Sem6Fee, in.Sem7Fee, in.Sem8Fee}
}

// ParseCourses decodes the raw form-field value into course inputs.
// Anything that is not a JSON array of objects is ErrBadCourseJSON.
func ParseCourses(raw string) ([]CourseInput, error) {
	var probe interface{}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, ErrBadCourseJSON
	}
	if _, ok := probe.([]interface{}); !ok {
		return nil, ErrCoursesNotArray
	}

	var courses []CourseInput
	if err := json.Unmarshal([]byte(raw), &courses); err != nil {
		return nil, ErrBadCourseJSON
	}
	return courses, nil
}

// ValidateCourses checks every course in input order and returns the
// normalized rows. The batch is all-or-nothing: the first violation aborts
// it. Category is read per course; the non-nil fee count must equal the
// category quota exactly.
func ValidateCourses(inputs []CourseInput) ([]model.Course, error) {
	courses := make([]model.Course, 0, len(inputs))

	for _, in := range inputs {
		if in.Name == "" || in.Category == "" {
			return nil, missingFieldError()
		}

		expected, ok := model.CategorySemesters[in.Category]
		if !ok {
			return nil, invalidCategoryError(in.Name, in.Category)
		}

		got := 0
		for _, f := range in.fees() {
			if f != nil {
				got++
			}
		}
		if got != expected {
			return nil, feeCountError(in.Name, in.Category, expected, got)
		}

		courses = append(courses, model.Course{
			Name:     in.Name,
			About:    in.About,
			Category: in.Category,
			Sem1Fee:  in.Sem1Fee,
			Sem2Fee:  in.Sem2Fee,
			Sem3Fee:  in.Sem3Fee,
			Sem4Fee:  in.Sem4Fee,
			Sem5Fee:  in.Sem5Fee,
			Sem6Fee:  in.Sem6Fee,
			Sem7Fee:  in.Sem7Fee,
			Sem8Fee:  in.Sem8Fee,
		})
	}

	return courses, nil
}
