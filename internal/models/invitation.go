package models

import (
	"time"
)

// Template styles supported by the renderer.
type TemplateStyle string

const (
	StyleModern       TemplateStyle = "modern"
	StyleClassic      TemplateStyle = "classic"
	StyleFloral       TemplateStyle = "floral"
	StyleLuxury       TemplateStyle = "luxury"
	StyleRedGold      TemplateStyle = "red-gold"
	StylePersonalized TemplateStyle = "personalized"
)

// ElementStyle holds per-field presentation overrides. Only applied when
// rendering the field it is keyed under.
type ElementStyle struct {
	FontSize int `json:"fontSize,omitempty"`
}

// InvitationData is the single record the builder edits and the guest view
// renders. Media fields hold either a remote URL or an inline data: URI;
// consumers treat both uniformly as an image source.
type InvitationData struct {
	GroomName   string `json:"groomName"`
	GroomFather string `json:"groomFather"`
	GroomMother string `json:"groomMother"`
	BrideName   string `json:"brideName"`
	BrideFather string `json:"brideFather"`
	BrideMother string `json:"brideMother"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"`
	Location    string `json:"location"`
	Address     string `json:"address"`
	Message     string `json:"message"`
	ImageURL    string `json:"imageUrl,omitempty"`

	MapURL      string `json:"mapUrl,omitempty"`
	MapImageURL string `json:"mapImageUrl,omitempty"`
	QRCodeURL   string `json:"qrCodeUrl,omitempty"` // bank transfer QR image
	BankInfo    string `json:"bankInfo,omitempty"`
	MusicURL    string `json:"musicUrl,omitempty"`

	// Per-invitation Apps Script webhook for exporting RSVPs, and the
	// spreadsheet view URL the probe endpoint reported back.
	GoogleSheetURL     string `json:"googleSheetUrl,omitempty"`
	GoogleSheetViewURL string `json:"googleSheetViewUrl,omitempty"`

	CenterImage   string   `json:"centerImage,omitempty"`
	FooterImage   string   `json:"footerImage,omitempty"`
	AlbumImages   []string `json:"albumImages,omitempty"`
	GalleryImages []string `json:"galleryImages,omitempty"`

	LunarDate string `json:"lunarDate,omitempty"`

	GroomAddress string `json:"groomAddress,omitempty"`
	BrideAddress string `json:"brideAddress,omitempty"`

	InvitedTitle string `json:"invitedTitle,omitempty"`
	AlbumTitle   string `json:"albumTitle,omitempty"`

	ElementStyles map[string]ElementStyle `json:"elementStyles,omitempty"`

	Style TemplateStyle `json:"style,omitempty"`
}

// SetAlbumImage writes to album slot k, padding intervening slots with the
// empty placeholder so the array never carries gaps.
func (d *InvitationData) SetAlbumImage(k int, src string) {
	d.AlbumImages = setSlot(d.AlbumImages, k, src)
}

// SetGalleryImage writes to gallery slot k with the same padding rule.
func (d *InvitationData) SetGalleryImage(k int, src string) {
	d.GalleryImages = setSlot(d.GalleryImages, k, src)
}

func setSlot(slots []string, k int, src string) []string {
	if k < 0 {
		return slots
	}
	for len(slots) <= k {
		slots = append(slots, "")
	}
	slots[k] = src
	return slots
}

// Sanitize normalizes the record before persisting: zero-value style
// entries are dropped so the stored document never carries empty nested
// objects.
func (d *InvitationData) Sanitize() {
	for key, st := range d.ElementStyles {
		if st == (ElementStyle{}) {
			delete(d.ElementStyles, key)
		}
	}
}

// Invitation is the persisted envelope around InvitationData. Code is the
// crypto-random share code carried in guest links; possession of the code is
// the read-access control for the guest view.
type Invitation struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Code         string         `json:"code" gorm:"unique;not null;index"`
	CustomerName string         `json:"customer_name" gorm:"not null"`
	Data         InvitationData `json:"data" gorm:"type:jsonb;serializer:json"`
	CreatedBy    uint           `json:"created_by" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type InvitationRequest struct {
	CustomerName string         `json:"customerName" validate:"required"`
	Data         InvitationData `json:"data"`
}

type AutosaveRequest struct {
	Data InvitationData `json:"data"`
}

// InvitationResponse is the list/detail shape, annotated with the derived
// shareable link.
type InvitationResponse struct {
	ID           uint           `json:"id"`
	Code         string         `json:"code"`
	CustomerName string         `json:"customerName"`
	Data         InvitationData `json:"data"`
	Link         string         `json:"link"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// GuestView is the read-only projection served to link holders. Data is
// always merged with defaults; GuestName echoes the URL parameter when one
// was supplied, without touching the stored record.
type GuestView struct {
	Code      string         `json:"code"`
	Data      InvitationData `json:"data"`
	GuestName string         `json:"guestName,omitempty"`
}

// InvitationLinks is the link-generator ("mode=tool") payload.
type InvitationLinks struct {
	Base         string `json:"base"`
	Personalized string `json:"personalized,omitempty"`
	Tool         string `json:"tool"`
}
