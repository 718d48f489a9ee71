package models

import (
	"testing"
)

func TestWithDefaults_FillsMissingFields(t *testing.T) {
	got := WithDefaults(InvitationData{})

	if got.GroomName != defaultInvitationData.GroomName {
		t.Errorf("GroomName = %q, want default %q", got.GroomName, defaultInvitationData.GroomName)
	}
	if got.Date != "2025-02-15" {
		t.Errorf("Date = %q, want default", got.Date)
	}
	if len(got.AlbumImages) != 5 {
		t.Errorf("AlbumImages len = %d, want 5", len(got.AlbumImages))
	}
	if len(got.GalleryImages) != 3 {
		t.Errorf("GalleryImages len = %d, want 3", len(got.GalleryImages))
	}
	if got.ElementStyles == nil {
		t.Error("ElementStyles is nil, want empty map")
	}
}

func TestWithDefaults_PreservesSetFields(t *testing.T) {
	partial := InvitationData{
		GroomName:   "Minh",
		BrideName:   "Lan",
		Date:        "2026-01-01",
		AlbumImages: []string{"data:image/jpeg;base64,abc"},
		ElementStyles: map[string]ElementStyle{
			"groomName": {FontSize: 32},
		},
		Style: StylePersonalized,
	}

	got := WithDefaults(partial)

	if got.GroomName != "Minh" || got.BrideName != "Lan" {
		t.Errorf("names = %q/%q, want Minh/Lan", got.GroomName, got.BrideName)
	}
	if got.Date != "2026-01-01" {
		t.Errorf("Date = %q, want 2026-01-01", got.Date)
	}
	if len(got.AlbumImages) != 1 || got.AlbumImages[0] != "data:image/jpeg;base64,abc" {
		t.Errorf("AlbumImages = %v, want caller's slice kept", got.AlbumImages)
	}
	if got.ElementStyles["groomName"].FontSize != 32 {
		t.Errorf("ElementStyles not merged: %v", got.ElementStyles)
	}
	if got.Style != StylePersonalized {
		t.Errorf("Style = %q, want personalized", got.Style)
	}
	// Fields the caller left empty still fall back.
	if got.Location != defaultInvitationData.Location {
		t.Errorf("Location = %q, want default", got.Location)
	}
}

func TestWithDefaults_DoesNotMutateInput(t *testing.T) {
	partial := InvitationData{AlbumImages: []string{"a"}}
	got := WithDefaults(partial)
	got.AlbumImages[0] = "changed"

	if partial.AlbumImages[0] != "a" {
		t.Error("WithDefaults aliased the caller's slice")
	}
}

func TestSetAlbumImage_PadsIntermediateSlots(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		index   int
		wantLen int
	}{
		{"empty to index 3", nil, 3, 4},
		{"existing shorter", []string{"x"}, 4, 5},
		{"in range", []string{"x", "y", "z"}, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := InvitationData{AlbumImages: tt.initial}
			d.SetAlbumImage(tt.index, "img")

			if len(d.AlbumImages) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(d.AlbumImages), tt.wantLen)
			}
			if d.AlbumImages[tt.index] != "img" {
				t.Errorf("slot %d = %q, want img", tt.index, d.AlbumImages[tt.index])
			}
			for i := 0; i < tt.index; i++ {
				if i < len(tt.initial) {
					continue
				}
				if d.AlbumImages[i] != "" {
					t.Errorf("slot %d = %q, want empty placeholder", i, d.AlbumImages[i])
				}
			}
		})
	}
}

func TestSetGalleryImage_NegativeIndexIsNoop(t *testing.T) {
	d := InvitationData{}
	d.SetGalleryImage(-1, "img")
	if len(d.GalleryImages) != 0 {
		t.Errorf("GalleryImages = %v, want untouched", d.GalleryImages)
	}
}

func TestSanitize_DropsEmptyStyleEntries(t *testing.T) {
	d := InvitationData{
		ElementStyles: map[string]ElementStyle{
			"kept":    {FontSize: 20},
			"dropped": {},
		},
	}
	d.Sanitize()

	if _, ok := d.ElementStyles["dropped"]; ok {
		t.Error("zero-value style entry survived Sanitize")
	}
	if d.ElementStyles["kept"].FontSize != 20 {
		t.Error("non-empty style entry lost")
	}
}

func TestApplyGuestName(t *testing.T) {
	stored := WithDefaults(InvitationData{})

	got := ApplyGuestName(stored, "An")
	if got.InvitedTitle != "Trân Trọng Kính Mời An" {
		t.Errorf("InvitedTitle = %q", got.InvitedTitle)
	}
	// The stored record keeps its default greeting.
	if stored.InvitedTitle != "Trân Trọng Kính Mời" {
		t.Errorf("stored greeting mutated: %q", stored.InvitedTitle)
	}

	unchanged := ApplyGuestName(stored, "")
	if unchanged.InvitedTitle != stored.InvitedTitle {
		t.Error("empty guest name should be a no-op")
	}
}

func TestRoleHelpers(t *testing.T) {
	if !RoleAdmin.CanEdit() || !RoleEditor.CanEdit() {
		t.Error("admin and editor must be able to edit")
	}
	if RoleUser.CanEdit() {
		t.Error("plain user must not be able to edit")
	}
	if RoleUser.Valid() != true || UserRole("owner").Valid() {
		t.Error("role validity check wrong")
	}
}
