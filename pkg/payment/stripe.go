package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
)

type StripeService struct {
	secretKey string
	publicURL string
}

func NewStripeService(secretKey, publicURL string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{
		secretKey: secretKey,
		publicURL: publicURL,
	}
}

// CreateCheckoutSession opens a one-off Stripe Checkout for a pricing plan.
// Amounts are in VND, which Stripe treats as a zero-decimal currency.
func (s *StripeService) CreateCheckoutSession(userEmail, planName string, amountVND int64, metadata map[string]string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		CustomerEmail: &userEmail,
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("vnd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(planName),
					},
					UnitAmount: stripe.Int64(amountVND),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.publicURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.publicURL + "/payment/cancel"),
	}

	params.AddMetadata("user_id", metadata["user_id"])
	params.AddMetadata("plan_id", metadata["plan_id"])

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return sess, nil
}
