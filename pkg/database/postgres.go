package database

import (
	"log"
	"os"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Invitation{},
		&models.RSVP{},
		&models.Plan{},
	)
	if err != nil {
		return err
	}

	return seedPlans(db)
}

// seedPlans inserts the pricing catalog the pricing page serves. Existing
// rows are left alone.
func seedPlans(db *gorm.DB) error {
	plans := []models.Plan{
		{
			Name:            "Cơ Bản",
			Description:     "1 thiệp cưới, link chia sẻ không giới hạn",
			InvitationLimit: 1,
			Price:           99000,
			IsActive:        true,
		},
		{
			Name:            "Gia Đình",
			Description:     "5 thiệp cưới, xuất danh sách khách mời ra Google Sheet",
			InvitationLimit: 5,
			Price:           299000,
			IsActive:        true,
		},
		{
			Name:            "Studio",
			Description:     "Không giới hạn thiệp, hỗ trợ ưu tiên",
			InvitationLimit: 999,
			Price:           999000,
			IsActive:        true,
		},
	}

	for _, plan := range plans {
		var count int64
		db.Model(&models.Plan{}).Where("name = ?", plan.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&plan).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
