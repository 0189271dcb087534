package college

import (
	"fmt"

	"github.com/collegefinder/api/model"
)

// CourseOut is the externally visible course shape
type CourseOut struct {
	ID       uint     `json:"id"`
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

// CollegeOut is the externally visible college shape. The stored image blob
// is replaced by a retrieval URL, present only when image bytes exist.
type CollegeOut struct {
	ID         uint        `json:"id"`
	Name       string      `json:"college_name"`
	Address    string      `json:"address"`
	About      string      `json:"about"`
	Stream     string      `json:"stream"`
	PriceRange string      `json:"price_range"`
	ImgURL     *string     `json:"img_url"`
	Courses    []CourseOut `json:"courses"`
}

func (h *CollegeHandler) collegeOut(college *model.College) CollegeOut {
	out := CollegeOut{
		ID:         college.ID,
		Name:       college.Name,
		Address:    college.Address,
		About:      college.About,
		Stream:     college.Stream,
		PriceRange: college.PriceRange,
		Courses:    make([]CourseOut, 0, len(college.Courses)),
	}

	if college.HasImage() {
		url := fmt.Sprintf("%s/college/%d/image", h.baseURL, college.ID)
		out.ImgURL = &url
	}

	for _, course := range college.Courses {
		out.Courses = append(out.Courses, CourseOut{
			ID:       course.ID,
			Name:     course.Name,
			About:    course.About,
			Category: course.Category,
			Sem1Fee:  course.Sem1Fee,
			Sem2Fee:  course.Sem2Fee,
			Sem3Fee:  course.Sem3Fee,
			Sem4Fee:  course.Sem4Fee,
			Sem5Fee:  course.Sem5Fee,
			Sem6Fee:  course.Sem6Fee,
			Sem7Fee:  course.Sem7Fee,
			Sem8Fee:  course.Sem8Fee,
		})
	}

	return out
}

func (h *CollegeHandler) collegesOut(colleges []model.College) []CollegeOut {
	out := make([]CollegeOut, 0, len(colleges))
	for i := range colleges {
		out = append(out, h.collegeOut(&colleges[i]))
	}
	return out
}
