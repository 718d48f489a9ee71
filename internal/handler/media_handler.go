package handler

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/internal/service"
	"github.com/danhluom/thiepcuoi-backend/pkg/utils"
)

// maxUploadBytes bounds the multipart read; the service applies its own
// inline caps when no object storage is wired.
const maxUploadBytes = 20 << 20

type imageUpload struct {
	ContentType string `validate:"required,supported_image"`
}

type musicUpload struct {
	ContentType string `validate:"required,supported_audio"`
}

type MediaHandler struct {
	mediaService *service.MediaService
	validator    *utils.Validator
}

func NewMediaHandler(mediaService *service.MediaService, validator *utils.Validator) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		validator:    validator,
	}
}

// UploadImage accepts a multipart form with the image under "file" and the
// crop parameters as a JSON document under "meta".
func (h *MediaHandler) UploadImage(c *fiber.Ctx) error {
	var req service.ImageUploadRequest
	if meta := c.FormValue("meta"); meta != "" {
		if err := json.Unmarshal([]byte(meta), &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid crop parameters"))
		}
	}
	if req.Field == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Target field is required"))
	}

	file, contentType, err := readUpload(c, maxUploadBytes)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No file uploaded"))
	}
	if err := h.validator.Struct(imageUpload{ContentType: contentType}); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Unsupported image type"))
	}

	inv, err := h.mediaService.AttachImage(c.Params("code"), file, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Invitation not found"))
		case errors.Is(err, service.ErrImageDiscarded), errors.Is(err, service.ErrUnknownField):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(err.Error()))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
		}
	}

	return c.JSON(models.SuccessResponse(inv.Data, "Image uploaded successfully"))
}

func (h *MediaHandler) UploadMusic(c *fiber.Ctx) error {
	file, contentType, err := readUpload(c, maxUploadBytes)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No file uploaded"))
	}
	if err := h.validator.Struct(musicUpload{ContentType: contentType}); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Only audio files are accepted"))
	}

	inv, err := h.mediaService.AttachMusic(c.Params("code"), file, contentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Invitation not found"))
		case errors.Is(err, service.ErrMusicTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(models.ErrorResponse(err.Error()))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
		}
	}

	return c.JSON(models.SuccessResponse(inv.Data, "Music uploaded successfully"))
}

// readUpload parses the "file" part once and hands back its bytes with the
// declared content type.
func readUpload(c *fiber.Ctx, limit int64) ([]byte, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", err
	}
	if fileHeader.Size > limit {
		return nil, "", errors.New("file too large")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return b, fileHeader.Header.Get("Content-Type"), nil
}
