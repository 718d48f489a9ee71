package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/danhluom/thiepcuoi-backend/internal/config"
	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/internal/repository"
	"github.com/danhluom/thiepcuoi-backend/pkg/googleauth"
)

type UserService struct {
	userRepo *repository.UserRepository
	cfg      *config.Config
	logger   *zap.SugaredLogger
}

func NewUserService(userRepo *repository.UserRepository, cfg *config.Config, logger *zap.SugaredLogger) *UserService {
	return &UserService{
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger,
	}
}

// SyncGoogleUser upserts the account on every sign-in and resolves its
// role. Allow-listed super admins are always admin, whatever the stored
// role says; an existing account keeps its stored role; the very first
// account of a fresh deployment bootstraps as admin.
func (s *UserService) SyncGoogleUser(claims *googleauth.Claims) (*models.User, error) {
	existing, err := s.userRepo.GetByGoogleID(claims.Subject)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	isSuper := s.cfg.IsSuperAdmin(claims.Email)
	var count int64 = 1
	if existing == nil && !isSuper {
		if count, err = s.userRepo.Count(); err != nil {
			return nil, err
		}
		if count == 0 {
			s.logger.Infow("bootstrapping first account as admin", "email", claims.Email)
		}
	}
	role := resolveRole(isSuper, existing, count)

	if existing == nil {
		user := &models.User{
			GoogleID:  claims.Subject,
			FullName:  claims.Name,
			Email:     claims.Email,
			Picture:   claims.Picture,
			Role:      role,
			LastLogin: time.Now(),
		}
		return s.userRepo.Create(user)
	}

	existing.FullName = claims.Name
	existing.Picture = claims.Picture
	existing.Role = role
	existing.LastLogin = time.Now()
	if err := s.userRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// resolveRole decides the role on sign-in: the allow-list always wins over
// any stored role, an existing account keeps what it has, and the very
// first account of a fresh deployment becomes admin.
func resolveRole(isSuperAdmin bool, existing *models.User, totalUsers int64) models.UserRole {
	switch {
	case isSuperAdmin:
		return models.RoleAdmin
	case existing != nil:
		return existing.Role
	case totalUsers == 0:
		return models.RoleAdmin
	default:
		return models.RoleUser
	}
}

func (s *UserService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GetAllUsers backs the admin user-management screen.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// UpdateUserRole promotes or demotes an account. Accounts are never
// deleted; demoting to "user" is the strongest removal there is.
func (s *UserService) UpdateUserRole(id uint, role models.UserRole) (*models.User, error) {
	if !role.Valid() {
		return nil, errors.New("unknown role")
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// The allow-list wins over any demotion attempt.
	if s.cfg.IsSuperAdmin(user.Email) && role != models.RoleAdmin {
		return nil, errors.New("cannot demote a super admin")
	}

	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	s.logger.Infow("role updated", "user", user.Email, "role", role)
	return user, nil
}
