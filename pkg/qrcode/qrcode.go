package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRService renders guest-view links as QR codes for printed cards.
type QRService struct{}

func NewQRService() *QRService {
	return &QRService{}
}

// GenerateQRCode returns a PNG QR code for the given share link.
func (s *QRService) GenerateQRCode(link string, size int) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}
