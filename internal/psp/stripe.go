package psp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/paymentmethod"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/logger"
)

// StripeConfig configures the Stripe provider
type StripeConfig struct {
	SecretKey      string
	WebhookSecret  string
	PublicURL      string
	MaxRetries     int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

type (
	paymentMethodFetcher func(id string) (*stripe.PaymentMethod, error)
	sessionCreator       func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
)

// StripeClient tokenises cards through Stripe Checkout in setup mode
type StripeClient struct {
	webhookSecret string
	publicURL     string
	executor      failsafe.Executor[*stripe.PaymentMethod]

	fetchPaymentMethod paymentMethodFetcher
	newSession         sessionCreator
}

// NewStripeClient creates a Stripe provider and sets the global API key
func NewStripeClient(cfg StripeConfig) *StripeClient {
	stripe.Key = cfg.SecretKey

	return &StripeClient{
		webhookSecret: cfg.WebhookSecret,
		publicURL:     cfg.PublicURL,
		executor:      failsafe.With(newPaymentMethodRetryPolicy(cfg)),
		fetchPaymentMethod: func(id string) (*stripe.PaymentMethod, error) {
			return paymentmethod.Get(id, nil)
		},
		newSession: checkoutsession.New,
	}
}

func (c *StripeClient) DemoMode() bool { return false }

// CreateSetupSession starts a Checkout session that collects a card without charging it
func (c *StripeClient) CreateSetupSession(ctx context.Context, userID string) (*SetupSession, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	metadata := map[string]string{MetadataUserID: userID}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSetup)),
		PaymentMethodTypes: stripe.StringSlice([]string{paymentMethodTypeCard}),
		SuccessURL:         stripe.String(c.publicURL + setupSuccessPath),
		CancelURL:          stripe.String(c.publicURL + setupCancelPath),
		ClientReferenceID:  stripe.String(userID),
		Metadata:           metadata,
		SetupIntentData: &stripe.CheckoutSessionSetupIntentDataParams{
			Metadata: metadata,
		},
	}
	params.Context = ctx

	sess, err := c.newSession(params)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create setup session: %v", domain.ErrPspError, err)
	}

	logger.FromContext(ctx).Info(LogMsgSetupSessionCreated, "session_id", sess.ID, "user_id", userID)
	return &SetupSession{ID: sess.ID, URL: sess.URL}, nil
}

// Normalize verifies a StripePayload and resolves its card details
func (c *StripeClient) Normalize(ctx context.Context, p Payload) (*CardToken, error) {
	sp, ok := p.(StripePayload)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVariantNotAccepted, p.variant())
	}

	evt, err := webhook.ConstructEventWithOptions(sp.Body, sp.Signature, c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if evt.Type != EventSetupIntentSucceeded {
		logger.FromContext(ctx).Debug(LogMsgWebhookIgnored, "event_type", evt.Type, "event_id", evt.ID)
		return nil, ErrUnhandledEvent
	}

	var si stripe.SetupIntent
	if err := json.Unmarshal(evt.Data.Raw, &si); err != nil {
		return nil, fmt.Errorf("%w: failed to decode setup intent: %v", domain.ErrInvalidInput, err)
	}
	if si.PaymentMethod == nil || si.PaymentMethod.ID == "" {
		return nil, domain.ErrNoToken
	}
	userID := si.Metadata[MetadataUserID]
	if userID == "" {
		return nil, fmt.Errorf("%w: setup intent has no %s", domain.ErrInvalidInput, MetadataUserID)
	}

	pm, err := c.FetchCard(ctx, si.PaymentMethod.ID)
	if err != nil {
		return nil, err
	}
	if pm.Card == nil {
		return nil, fmt.Errorf("%w: payment method %s is not a card", domain.ErrInvalidInput, pm.ID)
	}

	return normalizeCard(userID, pm.ID, pm.Card.Last4, string(pm.Card.Brand), SourceStripe), nil
}

// FetchCard loads a payment method, retrying transient failures
func (c *StripeClient) FetchCard(ctx context.Context, paymentMethodID string) (*stripe.PaymentMethod, error) {
	attempt := 0
	pm, err := c.executor.WithContext(ctx).Get(func() (*stripe.PaymentMethod, error) {
		attempt++
		if attempt > 1 {
			logger.FromContext(ctx).Warn(LogMsgPaymentMethodRetry, "payment_method", paymentMethodID, "attempt", attempt)
		}
		return c.fetchPaymentMethod(paymentMethodID)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch payment method: %v", domain.ErrPspError, err)
	}
	return pm, nil
}

func newPaymentMethodRetryPolicy(cfg StripeConfig) retrypolicy.RetryPolicy[*stripe.PaymentMethod] {
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	base := cfg.RetryBaseDelay
	if base <= 0 {
		base = 200 * time.Millisecond
	}
	maxDelay := cfg.RetryMaxDelay
	if maxDelay < base {
		maxDelay = base
	}

	return retrypolicy.NewBuilder[*stripe.PaymentMethod]().
		WithBackoff(base, maxDelay).
		WithMaxRetries(maxRetries).
		WithJitterFactor(0.1).
		HandleIf(func(_ *stripe.PaymentMethod, err error) bool {
			return isTransient(err)
		}).
		Build()
}

// isTransient reports rate limits and provider 5xx. Errors that did not come
// back as a Stripe API error are network failures.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	var se *stripe.Error
	if errors.As(err, &se) {
		return se.HTTPStatusCode == http.StatusTooManyRequests || se.HTTPStatusCode >= http.StatusInternalServerError
	}
	return true
}
