package psp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"regexp"

	"github.com/google/uuid"

	"github.com/osse101/Ycine_Go/internal/domain"
)

const (
	demoBrand        = "VISA"
	demoCallbackPath = "/api/link-card/callback"
)

var last4Pattern = regexp.MustCompile(`^[0-9]{4}$`)

// DemoClient simulates tokenisation by handing out a callback URL that
// completes the link immediately.
type DemoClient struct {
	publicURL string
}

// NewDemoClient creates a demo provider rooted at publicURL
func NewDemoClient(publicURL string) *DemoClient {
	return &DemoClient{publicURL: publicURL}
}

func (c *DemoClient) DemoMode() bool { return true }

// CreateSetupSession returns a callback URL with a fresh demo token and a random card
func (c *DemoClient) CreateSetupSession(_ context.Context, userID string) (*SetupSession, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPspError, err)
	}
	token := "demo_" + uuid.NewString()

	q := url.Values{}
	q.Set(ParamDemoToken, token)
	q.Set(ParamUserID, userID)
	q.Set(ParamLast4, fmt.Sprintf("%04d", n.Int64()))
	q.Set(ParamBrand, demoBrand)

	return &SetupSession{
		ID:   token,
		URL:  c.publicURL + demoCallbackPath + "?" + q.Encode(),
		Demo: true,
	}, nil
}

// Normalize accepts only DemoPayload
func (c *DemoClient) Normalize(_ context.Context, p Payload) (*CardToken, error) {
	demo, ok := p.(DemoPayload)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVariantNotAccepted, p.variant())
	}
	return NormalizeDemo(demo)
}

// NormalizeDemo validates a demo payload and converts it to a CardToken
func NormalizeDemo(p DemoPayload) (*CardToken, error) {
	tok := normalizeCard(p.UserID, p.Token, p.Last4, p.Brand, SourceDemo)
	if tok.Token == "" {
		return nil, domain.ErrNoToken
	}
	if tok.UserID == "" || tok.Brand == "" || !last4Pattern.MatchString(tok.Last4) {
		return nil, domain.ErrInvalidInput
	}
	return tok, nil
}

// DemoPayloadFromValues reads the demo parameters, accepting either token name
func DemoPayloadFromValues(v url.Values) DemoPayload {
	token := v.Get(ParamDemoToken)
	if token == "" {
		token = v.Get(ParamToken)
	}
	return DemoPayload{
		Token:  token,
		UserID: v.Get(ParamUserID),
		Last4:  v.Get(ParamLast4),
		Brand:  v.Get(ParamBrand),
	}
}
