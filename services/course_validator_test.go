package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/collegefinder/api/model"
)

func feeSlots(n int) CourseInput {
	in := CourseInput{Name: "Test Course", Category: model.CategoryUG}
	fees := []**float64{&in.Sem1Fee, &in.Sem2Fee, &in.Sem3Fee, &in.Sem4Fee, &in.Sem5Fee, &in.Sem6Fee, &in.Sem7Fee, &in.Sem8Fee}
	for i := 0; i < n && i < 8; i++ {
		v := float64(10000 + i)
		*fees[i] = &v
	}
	return in
}

func TestValidateCoursesFeeQuotas(t *testing.T) {
	quotas := map[string]int{
		model.CategoryPG:          4,
		model.CategoryUG:          6,
		model.CategoryEngineering: 8,
	}

	for category, expected := range quotas {
		for filled := 0; filled <= 8; filled++ {
			in := feeSlots(filled)
			in.Category = category

			_, err := ValidateCourses([]CourseInput{in})
			if filled == expected && err != nil {
				t.Errorf("%s with %d fees: unexpected error %v", category, filled, err)
			}
			if filled != expected && err == nil {
				t.Errorf("%s with %d fees: expected rejection, got none", category, filled)
			}
		}
	}
}

func TestValidateCoursesErrorWording(t *testing.T) {
	in := feeSlots(5) // UG needs 6
	_, err := ValidateCourses([]CourseInput{in})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var vErr *CourseValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected CourseValidationError, got %T", err)
	}
	if vErr.Expected != 6 || vErr.Got != 5 {
		t.Errorf("expected 6/5 in error, got %d/%d", vErr.Expected, vErr.Got)
	}
	if !strings.Contains(err.Error(), "exactly 6 semester fees, got 5") {
		t.Errorf("error message must cite expected and received counts: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "'Test Course'") {
		t.Errorf("error message must name the course: %q", err.Error())
	}
}

func TestValidateCoursesMissingFields(t *testing.T) {
	cases := []CourseInput{
		{Name: "", Category: model.CategoryUG},
		{Name: "No Category", Category: ""},
		{},
	}
	for _, in := range cases {
		if _, err := ValidateCourses([]CourseInput{in}); err == nil {
			t.Errorf("course %+v: expected missing-field error", in)
		}
	}
}

func TestValidateCoursesInvalidCategory(t *testing.T) {
	in := feeSlots(4)
	in.Category = "Diploma"

	_, err := ValidateCourses([]CourseInput{in})
	if err == nil {
		t.Fatal("expected invalid category error")
	}
	if !strings.Contains(err.Error(), "Diploma") || !strings.Contains(err.Error(), "'Test Course'") {
		t.Errorf("error must name category and course: %q", err.Error())
	}
}

func TestValidateCoursesBatchAllOrNothing(t *testing.T) {
	good := feeSlots(6)
	bad := feeSlots(3) // wrong for UG

	courses, err := ValidateCourses([]CourseInput{good, bad, good})
	if err == nil {
		t.Fatal("batch with one invalid course must be rejected")
	}
	if courses != nil {
		t.Errorf("no partial course list may be returned, got %d courses", len(courses))
	}
}

func TestValidateCoursesNormalization(t *testing.T) {
	in := feeSlots(4)
	in.Category = model.CategoryPG
	in.About = "A long description"

	courses, err := ValidateCourses([]CourseInput{in})
	if err != nil {
		t.Fatal(err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}

	course := courses[0]
	if course.Name != "Test Course" || course.Category != model.CategoryPG || course.About != "A long description" {
		t.Errorf("normalized course lost fields: %+v", course)
	}

	// All 8 slots carried, unset ones stay nil
	fees := course.SemesterFees()
	for i, f := range fees {
		if i < 4 && f == nil {
			t.Errorf("sem%d_fee should be set", i+1)
		}
		if i >= 4 && f != nil {
			t.Errorf("sem%d_fee should stay nil", i+1)
		}
	}
}

func TestValidateCoursesEmptyBatch(t *testing.T) {
	courses, err := ValidateCourses(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(courses) != 0 {
		t.Errorf("expected empty result, got %d", len(courses))
	}
}

func TestParseCourses(t *testing.T) {
	t.Run("valid array", func(t *testing.T) {
		parsed, err := ParseCourses(`[{"course_name":"BCA","category":"UG","sem1_fee":1000}]`)
		if err != nil {
			t.Fatal(err)
		}
		if len(parsed) != 1 || parsed[0].Name != "BCA" || parsed[0].Sem1Fee == nil {
			t.Errorf("unexpected parse result: %+v", parsed)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := ParseCourses(`{invalid`); !errors.Is(err, ErrBadCourseJSON) {
			t.Errorf("expected ErrBadCourseJSON, got %v", err)
		}
	})

	t.Run("not an array", func(t *testing.T) {
		if _, err := ParseCourses(`{"course_name":"BCA"}`); !errors.Is(err, ErrCoursesNotArray) {
			t.Errorf("expected ErrCoursesNotArray, got %v", err)
		}
	})

	t.Run("null fees stay nil", func(t *testing.T) {
		parsed, err := ParseCourses(`[{"course_name":"MCA","category":"PG","sem1_fee":null}]`)
		if err != nil {
			t.Fatal(err)
		}
		if parsed[0].Sem1Fee != nil {
			t.Error("explicit null fee must stay nil")
		}
	})
}
