package service

import (
	"testing"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
)

func TestResolveRole(t *testing.T) {
	demoted := &models.User{Email: "boss@example.com", Role: models.RoleUser}
	editor := &models.User{Email: "e@example.com", Role: models.RoleEditor}

	tests := []struct {
		name     string
		isSuper  bool
		existing *models.User
		total    int64
		want     models.UserRole
	}{
		{"allow-list overrides stored role", true, demoted, 5, models.RoleAdmin},
		{"allow-list on first sign-in", true, nil, 5, models.RoleAdmin},
		{"existing account keeps stored role", false, editor, 5, models.RoleEditor},
		{"first account bootstraps as admin", false, nil, 0, models.RoleAdmin},
		{"later accounts default to user", false, nil, 3, models.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveRole(tt.isSuper, tt.existing, tt.total); got != tt.want {
				t.Errorf("resolveRole() = %q, want %q", got, tt.want)
			}
		})
	}
}
