package models

import (
	"time"
)

// RSVP is a guest's reply to one invitation. The guest's reply is considered
// successful once this row is written; the spreadsheet relay is best-effort
// on top.
type RSVP struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	InvitationID  uint      `json:"invitation_id" gorm:"not null;index"`
	GuestName     string    `json:"guest_name" gorm:"not null"`
	GuestRelation string    `json:"guest_relation"`
	GuestWishes   string    `json:"guest_wishes" gorm:"type:text"`
	Attendance    string    `json:"attendance" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

type RSVPRequest struct {
	GuestName     string `json:"guestName" validate:"required"`
	GuestRelation string `json:"guestRelation"`
	GuestWishes   string `json:"guestWishes"`
	Attendance    string `json:"attendance" validate:"required,oneof='Có Thể Tham Dự' 'Không Thể Tham Dự'"`
}

// SheetRelayPayload is the JSON body posted to the per-invitation Apps
// Script webhook. SubmittedAt is a human-readable vi-VN timestamp, matching
// what the spreadsheet columns expect.
type SheetRelayPayload struct {
	GuestName     string `json:"guestName"`
	GuestRelation string `json:"guestRelation"`
	GuestWishes   string `json:"guestWishes"`
	Attendance    string `json:"attendance"`
	SubmittedAt   string `json:"submittedAt"`
}

type SheetCheckResponse struct {
	SheetURL string `json:"sheetUrl"`
}
