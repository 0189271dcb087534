package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/collegefinder/api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CollegeService owns the college ingestion transaction and catalog reads
type CollegeService struct {
	db     *gorm.DB
	images *ImageFetcher
}

// NewCollegeService creates a new college service
func NewCollegeService(db *gorm.DB, images *ImageFetcher) *CollegeService {
	return &CollegeService{
		db:     db,
		images: images,
	}
}

// CreateCollegeInput carries the multipart form fields of a create request
type CreateCollegeInput struct {
	Name       string
	Address    string
	About      string
	Stream     string
	PriceRange string

	// CoursesJSON is the raw "courses" form field; empty means no courses
	CoursesJSON string

	ImageBytes []byte
	ImageMime  string
	ImageURL   string

	// Audit metadata
	ActorID *uint
	ActorIP string
}

// CreateCollege validates the course batch, resolves the image, and writes
// the college with all its courses in one transaction. Nothing is persisted
// unless every course is valid and every insert succeeds.
func (s *CollegeService) CreateCollege(ctx context.Context, in CreateCollegeInput) (*model.College, error) {
	// Parse and validate courses before touching storage to avoid orphan
	// college rows.
	var courses []model.Course
	if in.CoursesJSON != "" {
		parsed, err := ParseCourses(in.CoursesJSON)
		if err != nil {
			return nil, err
		}
		courses, err = ValidateCourses(parsed)
		if err != nil {
			return nil, err
		}
	}

	imageData, imageMime, err := s.images.Resolve(ctx, in.ImageBytes, in.ImageMime, in.ImageURL)
	if err != nil {
		return nil, err
	}

	college := model.College{
		Name:       in.Name,
		Address:    in.Address,
		About:      in.About,
		Stream:     in.Stream,
		PriceRange: in.PriceRange,
		ImageData:  imageData,
		ImageMime:  imageMime,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&college).Error; err != nil {
			return err
		}

		// The insert above populated college.ID without committing yet
		for i := range courses {
			courses[i].CollegeID = college.ID
		}
		if len(courses) > 0 {
			if err := tx.Create(&courses).Error; err != nil {
				return err
			}
		}

		return writeAuditLog(tx, "college_create", college.ID, in.ActorID, in.ActorIP, map[string]interface{}{
			"college_name": college.Name,
			"course_count": len(courses),
		})
	})
	if err != nil {
		log.Println("College ingestion transaction failed:", err)
		return nil, ErrPersistence
	}

	// Reload together with the just-inserted courses
	if err := s.db.WithContext(ctx).Preload("Courses").First(&college, college.ID).Error; err != nil {
		return nil, ErrPersistence
	}

	return &college, nil
}

// GetCollege fetches a single college with its courses
func (s *CollegeService) GetCollege(ctx context.Context, id uint) (*model.College, error) {
	var college model.College
	if err := s.db.WithContext(ctx).Preload("Courses").First(&college, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollegeNotFound
		}
		return nil, err
	}
	return &college, nil
}

// ListColleges fetches all colleges with their courses
func (s *CollegeService) ListColleges(ctx context.Context) ([]model.College, error) {
	var colleges []model.College
	if err := s.db.WithContext(ctx).Preload("Courses").Find(&colleges).Error; err != nil {
		return nil, err
	}
	return colleges, nil
}

// FindByName fetches all colleges with an exact name match
func (s *CollegeService) FindByName(ctx context.Context, name string) ([]model.College, error) {
	var colleges []model.College
	if err := s.db.WithContext(ctx).Where("name = ?", name).Preload("Courses").Find(&colleges).Error; err != nil {
		return nil, err
	}
	return colleges, nil
}

// GetImage returns the stored image bytes and MIME type of a college
func (s *CollegeService) GetImage(ctx context.Context, id uint) ([]byte, string, error) {
	var college model.College
	if err := s.db.WithContext(ctx).First(&college, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrImageNotFound
		}
		return nil, "", err
	}
	if !college.HasImage() {
		return nil, "", ErrImageNotFound
	}
	return college.ImageData, college.ImageMime, nil
}

// DeleteCollege removes a college; courses and like/compare rows go with it
// through the cascading foreign keys. Returns the deleted college's name.
func (s *CollegeService) DeleteCollege(ctx context.Context, id uint, actorID *uint, actorIP string) (string, error) {
	var college model.College
	if err := s.db.WithContext(ctx).First(&college, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrCollegeNotFound
		}
		return "", err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&college).Error; err != nil {
			return err
		}
		return writeAuditLog(tx, "college_delete", college.ID, actorID, actorIP, map[string]interface{}{
			"college_name": college.Name,
		})
	})
	if err != nil {
		return "", err
	}

	return college.Name, nil
}

func writeAuditLog(tx *gorm.DB, action string, collegeID uint, actorID *uint, actorIP string, detail map[string]interface{}) error {
	payload, err := json.Marshal(detail)
	if err != nil {
		return err
	}

	entry := model.AdminAuditLog{
		AdminID:    actorID,
		Action:     action,
		Resource:   "colleges",
		ResourceID: collegeID,
		Detail:     datatypes.JSON(payload),
		IPAddress:  actorIP,
	}
	return tx.Create(&entry).Error
}
