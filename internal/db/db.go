package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Mmasetshaba28/haircut-booking/internal/config"
	"github.com/Mmasetshaba28/haircut-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// One chair: at most one live appointment per timestamp. The index is
	// partial so cancelled rows free their slot.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_live_slot
        ON appointments (appointment_date)
        WHERE status <> 'cancelled'
    `)

	if err := Seed(db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	return db
}
