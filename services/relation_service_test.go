package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/collegefinder/api/model"
	"gorm.io/gorm"
)

func relationFixture(t *testing.T) (*RelationService, *gorm.DB, *model.User, *model.College) {
	t.Helper()
	db := setupTestDB(t)
	suffix := time.Now().UnixNano()
	user := createTestUser(t, db, fmt.Sprintf("relation-%d@example.com", suffix))
	college := createTestCollege(t, db, fmt.Sprintf("%s College %d", t.Name(), suffix))
	return NewRelationService(db), db, user, college
}

func TestToggleLikeInvolution(t *testing.T) {
	svc, db, user, college := relationFixture(t)

	liked, err := svc.ToggleLike(testCtx(), user.ID, college.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !liked {
		t.Fatal("expected first toggle to like")
	}

	var count int64
	db.Model(&model.LikedCollege{}).
		Where("user_id = ? AND college_id = ?", user.ID, college.ID).
		Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly 1 like row, got %d", count)
	}

	liked, err = svc.ToggleLike(testCtx(), user.ID, college.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if liked {
		t.Fatal("expected second toggle to unlike")
	}

	db.Model(&model.LikedCollege{}).
		Where("user_id = ? AND college_id = ?", user.ID, college.ID).
		Count(&count)
	if count != 0 {
		t.Fatalf("expected like row removed, got %d", count)
	}
}

func TestToggleLikeMissingEntities(t *testing.T) {
	svc, _, user, college := relationFixture(t)

	if _, err := svc.ToggleLike(testCtx(), 999999999, college.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.ToggleLike(testCtx(), user.ID, 999999999); !errors.Is(err, ErrCollegeNotFound) {
		t.Errorf("expected ErrCollegeNotFound, got %v", err)
	}
}

func TestAddCompareRejectsDuplicate(t *testing.T) {
	svc, db, user, college := relationFixture(t)

	entry, err := svc.AddCompare(testCtx(), user.ID, college.ID)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if entry.UserID != user.ID || entry.CollegeID != college.ID {
		t.Fatalf("unexpected entry %+v", entry)
	}

	if _, err := svc.AddCompare(testCtx(), user.ID, college.ID); !errors.Is(err, ErrAlreadyInCompareList) {
		t.Fatalf("expected ErrAlreadyInCompareList, got %v", err)
	}

	var count int64
	db.Model(&model.CompareCollege{}).
		Where("user_id = ? AND college_id = ?", user.ID, college.ID).
		Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly 1 compare row after duplicate add, got %d", count)
	}
}

func TestRemoveCompare(t *testing.T) {
	svc, _, user, college := relationFixture(t)

	if err := svc.RemoveCompare(testCtx(), user.ID, college.ID); !errors.Is(err, ErrNotInCompareList) {
		t.Fatalf("expected ErrNotInCompareList, got %v", err)
	}

	if _, err := svc.AddCompare(testCtx(), user.ID, college.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.RemoveCompare(testCtx(), user.ID, college.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := svc.RemoveCompare(testCtx(), user.ID, college.ID); !errors.Is(err, ErrNotInCompareList) {
		t.Fatalf("expected ErrNotInCompareList on second remove, got %v", err)
	}
}

func TestLikedCollegesListing(t *testing.T) {
	svc, _, user, college := relationFixture(t)

	colleges, err := svc.LikedColleges(testCtx(), user.ID)
	if err != nil {
		t.Fatalf("LikedColleges failed: %v", err)
	}
	if len(colleges) != 0 {
		t.Fatalf("expected empty liked list, got %d", len(colleges))
	}

	if _, err := svc.ToggleLike(testCtx(), user.ID, college.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	colleges, err = svc.LikedColleges(testCtx(), user.ID)
	if err != nil {
		t.Fatalf("LikedColleges failed: %v", err)
	}
	if len(colleges) != 1 || colleges[0].ID != college.ID {
		t.Fatalf("expected the liked college back, got %+v", colleges)
	}

	if _, err := svc.LikedColleges(testCtx(), 999999999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for unknown user, got %v", err)
	}
}

func TestComparedCollegesListing(t *testing.T) {
	svc, _, user, college := relationFixture(t)

	colleges, err := svc.ComparedColleges(testCtx(), user.ID)
	if err != nil {
		t.Fatalf("ComparedColleges failed: %v", err)
	}
	if len(colleges) != 0 {
		t.Fatalf("expected empty compare list, got %d", len(colleges))
	}

	if _, err := svc.AddCompare(testCtx(), user.ID, college.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	colleges, err = svc.ComparedColleges(testCtx(), user.ID)
	if err != nil {
		t.Fatalf("ComparedColleges failed: %v", err)
	}
	if len(colleges) != 1 || colleges[0].ID != college.ID {
		t.Fatalf("expected the compared college back, got %+v", colleges)
	}
}
