package repository

import (
	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"gorm.io/gorm"
)

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(inv *models.Invitation) (*models.Invitation, error) {
	result := r.db.Create(inv)
	if result.Error != nil {
		return nil, result.Error
	}
	return inv, nil
}

// GetByCode returns gorm.ErrRecordNotFound when no invitation carries the
// code; callers surface that as absence, never as a crash.
func (r *InvitationRepository) GetByCode(code string) (*models.Invitation, error) {
	var inv models.Invitation
	err := r.db.Where("code = ?", code).First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetAll returns every invitation, newest first.
func (r *InvitationRepository) GetAll() ([]models.Invitation, error) {
	var invs []models.Invitation
	err := r.db.Order("created_at DESC").Find(&invs).Error
	return invs, err
}

func (r *InvitationRepository) Update(inv *models.Invitation) error {
	return r.db.Save(inv).Error
}

func (r *InvitationRepository) Delete(code string) error {
	return r.db.Where("code = ?", code).Delete(&models.Invitation{}).Error
}

func (r *InvitationRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Invitation{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *InvitationRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Invitation{}).Where("created_by = ?", userID).Count(&count).Error
	return count, err
}
