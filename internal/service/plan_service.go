package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/internal/repository"
	"github.com/danhluom/thiepcuoi-backend/pkg/payment"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanService struct {
	planRepo *repository.PlanRepository
	stripe   *payment.StripeService
	logger   *zap.SugaredLogger
}

func NewPlanService(planRepo *repository.PlanRepository, stripe *payment.StripeService, logger *zap.SugaredLogger) *PlanService {
	return &PlanService{
		planRepo: planRepo,
		stripe:   stripe,
		logger:   logger,
	}
}

func (s *PlanService) GetPlans() ([]models.Plan, error) {
	return s.planRepo.GetAllActive()
}

// Checkout opens a Stripe session for the given plan. The plan must still
// be active; a retired plan is treated as missing.
func (s *PlanService) Checkout(userID uint, userEmail string, planID uint) (*models.CheckoutResponse, error) {
	plan, err := s.planRepo.GetByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if !plan.IsActive {
		return nil, ErrPlanNotFound
	}

	sess, err := s.stripe.CreateCheckoutSession(userEmail, plan.Name, int64(plan.Price), map[string]string{
		"user_id": fmt.Sprintf("%d", userID),
		"plan_id": fmt.Sprintf("%d", planID),
	})
	if err != nil {
		s.logger.Errorw("stripe checkout failed", "plan_id", planID, "err", err)
		return nil, err
	}

	return &models.CheckoutResponse{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}
