package service

import (
	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/pkg/googleauth"
	"github.com/danhluom/thiepcuoi-backend/pkg/jwt"
)

type AuthService struct {
	verifier    *googleauth.Verifier
	userService *UserService
}

func NewAuthService(verifier *googleauth.Verifier, userService *UserService) *AuthService {
	return &AuthService{
		verifier:    verifier,
		userService: userService,
	}
}

// GoogleLogin verifies the Google ID token, merges the account, and mints
// a session token carrying the resolved role.
func (s *AuthService) GoogleLogin(req models.GoogleLoginRequest) (*models.AuthResponse, error) {
	claims, err := s.verifier.Verify(req.IDToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userService.SyncGoogleUser(claims)
	if err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(user.Email, user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
