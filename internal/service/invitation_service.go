package service

import (
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/danhluom/thiepcuoi-backend/internal/autosave"
	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/internal/repository"
	"github.com/danhluom/thiepcuoi-backend/pkg/lunar"
	"github.com/danhluom/thiepcuoi-backend/pkg/sheets"
	"github.com/danhluom/thiepcuoi-backend/pkg/utils"
)

var ErrInvitationNotFound = errors.New("invitation not found")

type InvitationService struct {
	invRepo     *repository.InvitationRepository
	coordinator *autosave.Coordinator
	sheetClient *sheets.Client
	publicURL   string
	logger      *zap.SugaredLogger
}

func NewInvitationService(
	invRepo *repository.InvitationRepository,
	sheetClient *sheets.Client,
	publicURL string,
	logger *zap.SugaredLogger,
) *InvitationService {
	s := &InvitationService{
		invRepo:     invRepo,
		sheetClient: sheetClient,
		publicURL:   publicURL,
		logger:      logger,
	}
	s.coordinator = autosave.NewCoordinator(autosave.DefaultDelay, s.autosaveWrite, logger)
	return s
}

// Close flushes pending autosaves. Called on shutdown.
func (s *InvitationService) Close() {
	s.coordinator.Close()
}

func (s *InvitationService) CreateInvitation(userID uint, req models.InvitationRequest) (*models.InvitationResponse, error) {
	code, err := s.newCode()
	if err != nil {
		return nil, err
	}

	data := withDerivedLunar("", req.Data)
	data.Sanitize()

	inv := &models.Invitation{
		Code:         code,
		CustomerName: req.CustomerName,
		Data:         data,
		CreatedBy:    userID,
	}

	created, err := s.invRepo.Create(inv)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(created)
	return &resp, nil
}

// UpdateInvitation is the explicit, non-debounced save path. It supersedes
// any pending autosave for the same record.
func (s *InvitationService) UpdateInvitation(code string, req models.InvitationRequest) (*models.InvitationResponse, error) {
	var inv *models.Invitation
	err := s.coordinator.Do(code, func() error {
		var err error
		inv, err = s.invRepo.GetByCode(code)
		if err != nil {
			return err
		}

		data := withDerivedLunar(inv.Data.Date, req.Data)
		data.Sanitize()

		inv.CustomerName = req.CustomerName
		inv.Data = data
		return s.invRepo.Update(inv)
	})
	if err != nil {
		return nil, notFoundOr(err)
	}

	resp := s.toResponse(inv)
	return &resp, nil
}

// UpdateData applies a mutation to the stored payload under the record's
// write lock. The media endpoints and the sheet probe go through here.
func (s *InvitationService) UpdateData(code string, mutate func(*models.InvitationData) error) (*models.Invitation, error) {
	var inv *models.Invitation
	err := s.coordinator.Do(code, func() error {
		var err error
		inv, err = s.invRepo.GetByCode(code)
		if err != nil {
			return err
		}
		if err := mutate(&inv.Data); err != nil {
			return err
		}
		inv.Data.Sanitize()
		return s.invRepo.Update(inv)
	})
	if err != nil {
		return nil, notFoundOr(err)
	}
	return inv, nil
}

// Autosave debounces an edit. The record must already exist; a brand-new
// invitation goes through CreateInvitation first.
func (s *InvitationService) Autosave(code string, data models.InvitationData) (autosave.Status, error) {
	if _, err := s.invRepo.GetByCode(code); err != nil {
		return autosave.StatusIdle, notFoundOr(err)
	}
	s.coordinator.Queue(code, data)
	return s.coordinator.Status(code), nil
}

func (s *InvitationService) AutosaveStatus(code string) autosave.Status {
	return s.coordinator.Status(code)
}

// autosaveWrite is the coordinator's write func: the debounced counterpart
// of UpdateInvitation, keeping the customer label untouched.
func (s *InvitationService) autosaveWrite(code string, data models.InvitationData) error {
	inv, err := s.invRepo.GetByCode(code)
	if err != nil {
		return err
	}
	data = withDerivedLunar(inv.Data.Date, data)
	data.Sanitize()
	inv.Data = data
	return s.invRepo.Update(inv)
}

func (s *InvitationService) GetInvitations() ([]models.InvitationResponse, error) {
	invs, err := s.invRepo.GetAll()
	if err != nil {
		return nil, err
	}

	resp := make([]models.InvitationResponse, 0, len(invs))
	for i := range invs {
		resp = append(resp, s.toResponse(&invs[i]))
	}
	return resp, nil
}

func (s *InvitationService) GetInvitation(code string) (*models.InvitationResponse, error) {
	inv, err := s.invRepo.GetByCode(code)
	if err != nil {
		return nil, notFoundOr(err)
	}
	resp := s.toResponse(inv)
	return &resp, nil
}

func (s *InvitationService) DeleteInvitation(code string) error {
	if _, err := s.invRepo.GetByCode(code); err != nil {
		return notFoundOr(err)
	}
	s.coordinator.Cancel(code)
	return s.invRepo.Delete(code)
}

// GuestView is the read-only projection served to anyone holding the share
// code. The stored record is merged against defaults and, when a guest name
// rides along on the URL, the greeting is personalized without touching
// storage.
func (s *InvitationService) GuestView(code, guestName string) (*models.GuestView, error) {
	inv, err := s.invRepo.GetByCode(code)
	if err != nil {
		return nil, notFoundOr(err)
	}

	data := models.WithDefaults(inv.Data)
	data = models.ApplyGuestName(data, guestName)

	return &models.GuestView{
		Code:      inv.Code,
		Data:      data,
		GuestName: guestName,
	}, nil
}

// Links builds the share, personalized, and link-generator URLs for one
// invitation.
func (s *InvitationService) Links(code, guestName string) (*models.InvitationLinks, error) {
	if _, err := s.invRepo.GetByCode(code); err != nil {
		return nil, notFoundOr(err)
	}

	links := &models.InvitationLinks{
		Base: ShareLink(s.publicURL, code),
		Tool: ToolLink(s.publicURL, code),
	}
	if guestName != "" {
		links.Personalized = PersonalizedLink(s.publicURL, code, guestName)
	}
	return links, nil
}

// VerifySheetConnection probes the invitation's Apps Script webhook and
// stores the spreadsheet view URL it reports.
func (s *InvitationService) VerifySheetConnection(code string) (string, error) {
	inv, err := s.invRepo.GetByCode(code)
	if err != nil {
		return "", notFoundOr(err)
	}
	if inv.Data.GoogleSheetURL == "" {
		return "", errors.New("invitation has no spreadsheet webhook configured")
	}

	viewURL, err := s.sheetClient.CheckConnection(inv.Data.GoogleSheetURL)
	if err != nil {
		return "", err
	}

	_, err = s.UpdateData(code, func(d *models.InvitationData) error {
		d.GoogleSheetViewURL = viewURL
		return nil
	})
	if err != nil {
		return "", err
	}
	return viewURL, nil
}

func (s *InvitationService) toResponse(inv *models.Invitation) models.InvitationResponse {
	return models.InvitationResponse{
		ID:           inv.ID,
		Code:         inv.Code,
		CustomerName: inv.CustomerName,
		Data:         inv.Data,
		Link:         ShareLink(s.publicURL, inv.Code),
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}
}

func (s *InvitationService) newCode() (string, error) {
	for i := 0; i < 5; i++ {
		code, err := utils.GenerateShareCode()
		if err != nil {
			return "", err
		}
		exists, err := s.invRepo.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not allocate a unique share code")
}

// withDerivedLunar recomputes the lunar date line when the wedding date
// changed or the line is missing. Derivation failures leave the field
// as-is.
func withDerivedLunar(prevDate string, data models.InvitationData) models.InvitationData {
	if data.Date == "" {
		return data
	}
	if data.LunarDate != "" && data.Date == prevDate {
		return data
	}
	ld, err := lunar.FullDateString(data.Date)
	if err != nil {
		zap.S().Warnw("lunar derivation failed", "date", data.Date, "err", err)
		return data
	}
	data.LunarDate = ld
	return data
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvitationNotFound
	}
	return err
}

// ShareLink is the base guest-view URL: origin + query carrying the code.
func ShareLink(origin, code string) string {
	return fmt.Sprintf("%s?invitationId=%s", origin, code)
}

// PersonalizedLink appends the urlencoded guest name.
func PersonalizedLink(origin, code, guestName string) string {
	return fmt.Sprintf("%s&guestName=%s", ShareLink(origin, code), url.QueryEscape(guestName))
}

// ToolLink opens the link-generator utility for the invitation.
func ToolLink(origin, code string) string {
	return fmt.Sprintf("%s?mode=tool&invitationId=%s", origin, code)
}
