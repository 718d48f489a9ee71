package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/internal/repository"
	"github.com/danhluom/thiepcuoi-backend/pkg/email"
	"github.com/danhluom/thiepcuoi-backend/pkg/sheets"
)

// vnLocation pins the human-readable relay timestamp to Vietnam time.
var vnLocation = time.FixedZone("ICT", 7*3600)

type RSVPService struct {
	rsvpRepo     *repository.RSVPRepository
	invRepo      *repository.InvitationRepository
	userRepo     *repository.UserRepository
	sheetClient  *sheets.Client
	emailService *email.EmailService
	logger       *zap.SugaredLogger
}

func NewRSVPService(
	rsvpRepo *repository.RSVPRepository,
	invRepo *repository.InvitationRepository,
	userRepo *repository.UserRepository,
	sheetClient *sheets.Client,
	emailService *email.EmailService,
	logger *zap.SugaredLogger,
) *RSVPService {
	return &RSVPService{
		rsvpRepo:     rsvpRepo,
		invRepo:      invRepo,
		userRepo:     userRepo,
		sheetClient:  sheetClient,
		emailService: emailService,
		logger:       logger,
	}
}

// Submit records a guest's reply. The database row is the only write the
// guest's success depends on; the spreadsheet relay and the owner email are
// fired afterwards and their failures are only logged.
func (s *RSVPService) Submit(code string, req models.RSVPRequest) (*models.RSVP, error) {
	inv, err := s.invRepo.GetByCode(code)
	if err != nil {
		return nil, notFoundOr(err)
	}

	rsvp := &models.RSVP{
		InvitationID:  inv.ID,
		GuestName:     req.GuestName,
		GuestRelation: req.GuestRelation,
		GuestWishes:   req.GuestWishes,
		Attendance:    req.Attendance,
	}
	created, err := s.rsvpRepo.Create(rsvp)
	if err != nil {
		return nil, err
	}

	go s.relayToSheet(inv, req)
	go s.notifyOwner(inv, req)

	return created, nil
}

// GetByInvitation lists replies for the editor's guest manager.
func (s *RSVPService) GetByInvitation(code string) ([]models.RSVP, error) {
	inv, err := s.invRepo.GetByCode(code)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return s.rsvpRepo.GetByInvitationID(inv.ID)
}

func (s *RSVPService) relayToSheet(inv *models.Invitation, req models.RSVPRequest) {
	webhook := inv.Data.GoogleSheetURL
	if webhook == "" {
		return
	}

	payload := models.SheetRelayPayload{
		GuestName:     req.GuestName,
		GuestRelation: req.GuestRelation,
		GuestWishes:   req.GuestWishes,
		Attendance:    req.Attendance,
		SubmittedAt:   time.Now().In(vnLocation).Format("02/01/2006 15:04:05"),
	}
	if err := s.sheetClient.Relay(webhook, payload); err != nil {
		s.logger.Warnw("sheet relay failed", "code", inv.Code, "err", err)
	}
}

func (s *RSVPService) notifyOwner(inv *models.Invitation, req models.RSVPRequest) {
	owner, err := s.userRepo.GetByID(inv.CreatedBy)
	if err != nil {
		s.logger.Warnw("RSVP notification skipped, owner lookup failed", "code", inv.Code, "err", err)
		return
	}

	err = s.emailService.SendRSVPNotification(
		owner.Email, inv.CustomerName, req.GuestName, req.Attendance, req.GuestWishes,
	)
	if err != nil {
		s.logger.Warnw("RSVP notification failed", "code", inv.Code, "err", err)
	}
}
