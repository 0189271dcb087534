package services

import (
	"context"
	"os"
	"testing"

	"github.com/collegefinder/api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens the database named by TEST_DATABASE_DSN. Tests that
// need storage skip when it is unset so the unit suite stays self-contained.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set; skipping database-backed test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.College{},
		&model.Course{},
		&model.LikedCollege{},
		&model.CompareCollege{},
		&model.AdminAuditLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := model.User{
		Username:     "test_user",
		Email:        email,
		PasswordHash: "$2a$12$not.a.real.hash.but.fine.for.tests",
		Role:         "student",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	t.Cleanup(func() {
		db.Delete(&model.User{}, user.ID)
	})

	return &user
}

func createTestCollege(t *testing.T, db *gorm.DB, name string) *model.College {
	t.Helper()

	college := model.College{Name: name, Stream: "Test"}
	if err := db.Create(&college).Error; err != nil {
		t.Fatalf("failed to create test college: %v", err)
	}
	t.Cleanup(func() {
		db.Delete(&model.College{}, college.ID)
	})

	return &college
}

func testCtx() context.Context { return context.Background() }
