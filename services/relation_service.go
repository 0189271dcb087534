package services

import (
	"context"
	"errors"

	"github.com/collegefinder/api/model"
	"gorm.io/gorm"
)

// RelationService implements the like/compare relations. Like is a toggle;
// compare is an explicit add/remove pair that rejects duplicate adds. The
// two deliberately differ.
type RelationService struct {
	db *gorm.DB
}

// NewRelationService creates a new relation service
func NewRelationService(db *gorm.DB) *RelationService {
	return &RelationService{db: db}
}

func (s *RelationService) checkPair(ctx context.Context, userID, collegeID uint) error {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	var college model.College
	if err := s.db.WithContext(ctx).First(&college, collegeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCollegeNotFound
		}
		return err
	}

	return nil
}

// ToggleLike inserts the like relation if absent and deletes it if present.
// Returns the resulting liked state.
func (s *RelationService) ToggleLike(ctx context.Context, userID, collegeID uint) (bool, error) {
	if err := s.checkPair(ctx, userID, collegeID); err != nil {
		return false, err
	}

	var existing model.LikedCollege
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND college_id = ?", userID, collegeID).
		First(&existing).Error

	if err == nil {
		// Unlike path
		if err := s.db.WithContext(ctx).Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like := model.LikedCollege{UserID: userID, CollegeID: collegeID}
	if err := s.db.WithContext(ctx).Create(&like).Error; err != nil {
		// A concurrent toggle won the insert race. The unique index makes
		// this converge to "liked" instead of an error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}

	return true, nil
}

// AddCompare adds the college to the user's compare list. A duplicate add
// is rejected, unlike the like toggle.
func (s *RelationService) AddCompare(ctx context.Context, userID, collegeID uint) (*model.CompareCollege, error) {
	if err := s.checkPair(ctx, userID, collegeID); err != nil {
		return nil, err
	}

	entry := model.CompareCollege{UserID: userID, CollegeID: collegeID}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyInCompareList
		}
		return nil, err
	}

	return &entry, nil
}

// RemoveCompare removes the college from the user's compare list
func (s *RelationService) RemoveCompare(ctx context.Context, userID, collegeID uint) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND college_id = ?", userID, collegeID).
		Delete(&model.CompareCollege{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotInCompareList
	}
	return nil
}

// LikedColleges lists the colleges a user has liked, with courses
func (s *RelationService) LikedColleges(ctx context.Context, userID uint) ([]model.College, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var colleges []model.College
	err := s.db.WithContext(ctx).
		Joins("JOIN liked_colleges ON liked_colleges.college_id = colleges.id").
		Where("liked_colleges.user_id = ?", userID).
		Preload("Courses").
		Find(&colleges).Error
	if err != nil {
		return nil, err
	}

	return colleges, nil
}

// ComparedColleges lists the colleges in a user's compare list, with courses
func (s *RelationService) ComparedColleges(ctx context.Context, userID uint) ([]model.College, error) {
	var colleges []model.College
	err := s.db.WithContext(ctx).
		Joins("JOIN compare_colleges ON compare_colleges.college_id = colleges.id").
		Where("compare_colleges.user_id = ?", userID).
		Preload("Courses").
		Find(&colleges).Error
	if err != nil {
		return nil, err
	}

	return colleges, nil
}
