package database

import (
	"fmt"
	"log"

	"github.com/collegefinder/api/model"
	"github.com/collegefinder/api/utils/auth"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	// Run seeds in order (respecting foreign key constraints)
	if err := s.SeedDemoUser(); err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	if err := s.SeedColleges(); err != nil {
		return fmt.Errorf("failed to seed colleges: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedDemoUser creates a demo student account
func (s *Seeder) SeedDemoUser() error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("email = ?", "student@example.com").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Demo user already exists, skipping")
		return nil
	}

	hash, err := auth.HashPassword("student123")
	if err != nil {
		return err
	}

	user := model.User{
		Username:     "demo_student",
		Email:        "student@example.com",
		PasswordHash: hash,
		Role:         "student",
	}
	if err := s.db.Create(&user).Error; err != nil {
		return err
	}

	log.Println("Seeded demo user:", user.Email)
	return nil
}

func fee(v float64) *float64 { return &v }

// SeedColleges creates a couple of colleges with category-complete course lists
func (s *Seeder) SeedColleges() error {
	var count int64
	if err := s.db.Model(&model.College{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Colleges already exist, skipping")
		return nil
	}

	colleges := []model.College{
		{
			Name:       "National Institute of Technology",
			Address:    "Sector 1, Model Town",
			About:      "Autonomous engineering institute with a strong placement record.",
			Stream:     "Engineering",
			PriceRange: "1-2 Lakh/year",
			Courses: []model.Course{
				{
					Name:     "B.Tech Computer Science",
					About:    "Four year undergraduate engineering program.",
					Category: model.CategoryEngineering,
					Sem1Fee:  fee(95000), Sem2Fee: fee(95000),
					Sem3Fee: fee(105000), Sem4Fee: fee(105000),
					Sem5Fee: fee(110000), Sem6Fee: fee(110000),
					Sem7Fee: fee(120000), Sem8Fee: fee(120000),
				},
				{
					Name:     "MCA",
					About:    "Two year postgraduate computer applications program.",
					Category: model.CategoryPG,
					Sem1Fee:  fee(60000), Sem2Fee: fee(60000),
					Sem3Fee: fee(65000), Sem4Fee: fee(65000),
				},
			},
		},
		{
			Name:       "City Arts and Science College",
			Address:    "MG Road, Central District",
			About:      "Affiliated college offering undergraduate degrees across streams.",
			Stream:     "Arts & Science",
			PriceRange: "30-50k/year",
			Courses: []model.Course{
				{
					Name:     "B.Sc Mathematics",
					About:    "Three year undergraduate science program.",
					Category: model.CategoryUG,
					Sem1Fee:  fee(15000), Sem2Fee: fee(15000),
					Sem3Fee: fee(16000), Sem4Fee: fee(16000),
					Sem5Fee: fee(17000), Sem6Fee: fee(17000),
				},
			},
		},
	}

	for i := range colleges {
		if err := s.db.Create(&colleges[i]).Error; err != nil {
			return err
		}
		log.Println("Seeded college:", colleges[i].Name)
	}

	return nil
}
