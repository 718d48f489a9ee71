package repository

import (
	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"gorm.io/gorm"
)

type RSVPRepository struct {
	db *gorm.DB
}

func NewRSVPRepository(db *gorm.DB) *RSVPRepository {
	return &RSVPRepository{db: db}
}

func (r *RSVPRepository) Create(rsvp *models.RSVP) (*models.RSVP, error) {
	result := r.db.Create(rsvp)
	if result.Error != nil {
		return nil, result.Error
	}
	return rsvp, nil
}

func (r *RSVPRepository) GetByInvitationID(invitationID uint) ([]models.RSVP, error) {
	var rsvps []models.RSVP
	err := r.db.Where("invitation_id = ?", invitationID).Order("created_at DESC").Find(&rsvps).Error
	return rsvps, err
}

func (r *RSVPRepository) CountByInvitationID(invitationID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.RSVP{}).Where("invitation_id = ?", invitationID).Count(&count).Error
	return count, err
}
