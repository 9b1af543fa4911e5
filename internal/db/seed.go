package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Mmasetshaba28/haircut-booking/internal/models"
)

const (
	adminEmail    = "admin@barbershop.com"
	adminPassword = "admin123"
)

var seedServices = []models.Service{
	{Name: "Basic Haircut", Description: "A standard haircut service.", Price: 20.00, DurationMinutes: 30},
	{Name: "Deluxe Haircut", Description: "A premium haircut service with additional styling.", Price: 35.00, DurationMinutes: 45},
	{Name: "Beard Trim", Description: "Professional beard shaping and trimming", Price: 15.00, DurationMinutes: 20},
	{Name: "Haircut + Beard", Description: "Complete grooming package", Price: 45.00, DurationMinutes: 60},
	{Name: "Kids Haircut", Description: "Special haircut for children with fun styling", Price: 18.00, DurationMinutes: 25},
	{Name: "Senior Haircut", Description: "Haircut service for senior citizens", Price: 17.00, DurationMinutes: 30},
	{Name: "Fade Haircut", Description: "Modern fade style with precise blending", Price: 30.00, DurationMinutes: 45},
	{Name: "Buzz Cut", Description: "Short, even length buzz cut all over", Price: 15.00, DurationMinutes: 20},
	{Name: "Scissor Cut", Description: "Precise scissor-only haircut for natural look", Price: 25.00, DurationMinutes: 40},
	{Name: "Hair Wash & Treatment", Description: "Professional hair washing with conditioning treatment", Price: 12.00, DurationMinutes: 20},
	{Name: "Hair Coloring", Description: "Professional hair coloring service", Price: 50.00, DurationMinutes: 90},
	{Name: "Hair Styling", Description: "Professional styling for special occasions", Price: 22.00, DurationMinutes: 30},
	{Name: "Traditional Shave", Description: "Traditional straight razor shave with hot towels", Price: 25.00, DurationMinutes: 30},
	{Name: "Mustache Trim", Description: "Precise mustache shaping and trimming", Price: 10.00, DurationMinutes: 15},
	{Name: "Hair & Scalp Treatment", Description: "Deep conditioning treatment for hair and scalp", Price: 35.00, DurationMinutes: 45},
}

// Seed creates the admin account and the service catalog on first run.
// Idempotent: existing rows are left alone.
func Seed(db *gorm.DB) error {
	var adminCount int64
	if err := db.Model(&models.User{}).
		Where("email = ?", adminEmail).
		Count(&adminCount).Error; err != nil {
		return err
	}

	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := models.User{
			Email:        adminEmail,
			PasswordHash: string(hashed),
			Role:         models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("admin user created: %s", adminEmail)
	}

	var serviceCount int64
	if err := db.Model(&models.Service{}).Count(&serviceCount).Error; err != nil {
		return err
	}

	if serviceCount == 0 {
		services := make([]models.Service, len(seedServices))
		copy(services, seedServices)
		for i := range services {
			services[i].Active = true
		}
		if err := db.Create(&services).Error; err != nil {
			return err
		}
		log.Printf("seeded %d services", len(services))
	}

	return nil
}
