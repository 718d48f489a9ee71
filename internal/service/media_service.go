package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/pkg/imageproc"
	"github.com/danhluom/thiepcuoi-backend/pkg/storage"
)

// maxInlineImageBytes caps an inline image payload; anything bigger goes to
// object storage when one is configured, keeping the whole document under
// the 1 MB limit.
const maxInlineImageBytes = 300 * 1024

// maxInlineMusicBytes matches the builder's historical 800 KB music cap.
const maxInlineMusicBytes = 800 * 1024

var (
	ErrImageDiscarded = errors.New("image could not be processed, previous image kept")
	ErrUnknownField   = errors.New("unknown image field")
	ErrMusicTooLarge  = errors.New("music file exceeds 800KB and no object storage is configured")
)

// ImageField names the image slots an upload may target. Dispatch is
// exhaustive: a field outside this set is rejected, not silently written.
type ImageField string

const (
	FieldMainImage   ImageField = "imageUrl"
	FieldCenterImage ImageField = "centerImage"
	FieldFooterImage ImageField = "footerImage"
	FieldMapImage    ImageField = "mapImageUrl"
	FieldBankQR      ImageField = "qrCodeUrl"
	FieldAlbum       ImageField = "albumImages"
	FieldGallery     ImageField = "galleryImages"
)

type ImageUploadRequest struct {
	Field    ImageField         `json:"field" validate:"required"`
	Slot     int                `json:"slot"`
	Crop     imageproc.CropRect `json:"crop"`
	Rotation float64            `json:"rotation"`
	Flip     imageproc.Flip     `json:"flip"`
}

type MediaService struct {
	invService *InvitationService
	objStorage storage.ObjectStorage
	logger     *zap.SugaredLogger
}

// NewMediaService wires the crop pipeline into the invitation document.
// objStorage may be nil; media is then stored inline only.
func NewMediaService(invService *InvitationService, objStorage storage.ObjectStorage, logger *zap.SugaredLogger) *MediaService {
	return &MediaService{
		invService: invService,
		objStorage: objStorage,
		logger:     logger,
	}
}

// AttachImage runs the crop pipeline on an uploaded image and writes the
// result into the requested field. Pipeline failures leave the prior image
// untouched and surface as ErrImageDiscarded.
func (s *MediaService) AttachImage(code string, file []byte, req ImageUploadRequest) (*models.Invitation, error) {
	dataURL, err := imageproc.CroppedDataURL(file, req.Crop, req.Rotation, req.Flip)
	if err != nil {
		s.logger.Warnw("image pipeline failed", "code", code, "field", req.Field, "err", err)
		return nil, ErrImageDiscarded
	}

	src := dataURL
	if len(dataURL) > maxInlineImageBytes && s.objStorage != nil {
		if uploaded, err := s.offload(code, dataURL); err == nil {
			src = uploaded
		} else {
			s.logger.Warnw("image offload failed, keeping inline payload", "code", code, "err", err)
		}
	}

	return s.invService.UpdateData(code, func(d *models.InvitationData) error {
		return applyImage(d, req.Field, req.Slot, src)
	})
}

// AttachMusic stores a background-music file. Object storage is preferred;
// without it the file must fit inline under the document cap.
func (s *MediaService) AttachMusic(code string, file []byte, contentType string) (*models.Invitation, error) {
	var src string
	switch {
	case s.objStorage != nil:
		key := fmt.Sprintf("invitations/%s/%s%s", code, uuid.NewString(), musicExt(contentType))
		if err := s.objStorage.Upload(key, bytes.NewReader(file), contentType); err != nil {
			return nil, err
		}
		src = s.objStorage.PublicURL(key)
	case len(file) <= maxInlineMusicBytes:
		src = "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(file)
	default:
		return nil, ErrMusicTooLarge
	}

	return s.invService.UpdateData(code, func(d *models.InvitationData) error {
		d.MusicURL = src
		return nil
	})
}

func (s *MediaService) offload(code, dataURL string) (string, error) {
	raw, err := imageproc.RawFromDataURL(dataURL)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("invitations/%s/%s.jpg", code, uuid.NewString())
	if err := s.objStorage.Upload(key, bytes.NewReader(raw), "image/jpeg"); err != nil {
		return "", err
	}
	return s.objStorage.PublicURL(key), nil
}

// applyImage dispatches on the field kind. Album and gallery writes pad
// intervening slots; scalar fields ignore the slot index.
func applyImage(d *models.InvitationData, field ImageField, slot int, src string) error {
	switch field {
	case FieldMainImage:
		d.ImageURL = src
	case FieldCenterImage:
		d.CenterImage = src
	case FieldFooterImage:
		d.FooterImage = src
	case FieldMapImage:
		d.MapImageURL = src
	case FieldBankQR:
		d.QRCodeURL = src
	case FieldAlbum:
		if slot < 0 {
			return fmt.Errorf("album slot %d out of range", slot)
		}
		d.SetAlbumImage(slot, src)
	case FieldGallery:
		if slot < 0 {
			return fmt.Errorf("gallery slot %d out of range", slot)
		}
		d.SetGalleryImage(slot, src)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

func musicExt(contentType string) string {
	if strings.Contains(contentType, "mp4") || strings.Contains(contentType, "aac") {
		return ".m4a"
	}
	return ".mp3"
}
