package service

import (
	"errors"
	"testing"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
)

func TestApplyImageScalarFields(t *testing.T) {
	tests := []struct {
		field ImageField
		get   func(d *models.InvitationData) string
	}{
		{FieldMainImage, func(d *models.InvitationData) string { return d.ImageURL }},
		{FieldCenterImage, func(d *models.InvitationData) string { return d.CenterImage }},
		{FieldFooterImage, func(d *models.InvitationData) string { return d.FooterImage }},
		{FieldMapImage, func(d *models.InvitationData) string { return d.MapImageURL }},
		{FieldBankQR, func(d *models.InvitationData) string { return d.QRCodeURL }},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			var d models.InvitationData
			if err := applyImage(&d, tt.field, 3, "https://cdn.example/x.jpg"); err != nil {
				t.Fatalf("applyImage: %v", err)
			}
			if got := tt.get(&d); got != "https://cdn.example/x.jpg" {
				t.Errorf("field %s = %q", tt.field, got)
			}
		})
	}
}

func TestApplyImageAlbumPadsSlots(t *testing.T) {
	var d models.InvitationData
	if err := applyImage(&d, FieldAlbum, 2, "u"); err != nil {
		t.Fatalf("applyImage: %v", err)
	}
	if len(d.AlbumImages) != 3 || d.AlbumImages[2] != "u" {
		t.Errorf("AlbumImages = %v", d.AlbumImages)
	}
	if d.AlbumImages[0] != "" || d.AlbumImages[1] != "" {
		t.Errorf("intervening slots not padded: %v", d.AlbumImages)
	}
}

func TestApplyImageRejectsBadInput(t *testing.T) {
	var d models.InvitationData
	if err := applyImage(&d, FieldAlbum, -1, "u"); err == nil {
		t.Error("negative album slot accepted")
	}
	if err := applyImage(&d, ImageField("backgroundImage"), 0, "u"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown field: got %v, want ErrUnknownField", err)
	}
}

func TestMusicExt(t *testing.T) {
	if got := musicExt("audio/mpeg"); got != ".mp3" {
		t.Errorf("mpeg ext = %q", got)
	}
	if got := musicExt("audio/mp4"); got != ".m4a" {
		t.Errorf("mp4 ext = %q", got)
	}
}
