package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ycine_Go/internal/cardlink"
	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/psp"
)

func activeLink() *domain.PaymentLink {
	return &domain.PaymentLink{
		ID:        "pl-1",
		UserID:    "u1",
		Token:     "demo_tok",
		Last4:     "1234",
		Brand:     "VISA",
		Source:    psp.SourceDemo,
		Verified:  true,
		Status:    domain.PaymentLinkActive,
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestHandleInitiate(t *testing.T) {
	t.Run("demo session", func(t *testing.T) {
		svc := new(MockCardLinkService)
		svc.On("Initiate", mock.Anything, "u1").Return(&psp.SetupSession{URL: "http://localhost:3000/api/link-card/callback?demo_token=x", Demo: true}, nil)

		w := httptest.NewRecorder()
		NewCardLinkHandlers(svc).HandleInitiate()(w, newJSONRequest(http.MethodPost, "/api/link-card", `{"userId":"u1"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"url":"http://localhost:3000/api/link-card/callback?demo_token=x","demo":true}`, w.Body.String())
	})

	t.Run("provider failure", func(t *testing.T) {
		svc := new(MockCardLinkService)
		svc.On("Initiate", mock.Anything, "u1").Return(nil, fmt.Errorf("%w: checkout unavailable", domain.ErrPspError))

		w := httptest.NewRecorder()
		NewCardLinkHandlers(svc).HandleInitiate()(w, newJSONRequest(http.MethodPost, "/api/link-card", `{"userId":"u1"}`))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"psp_error"}`, w.Body.String())
	})
}

func TestHandleCallback_Stripe(t *testing.T) {
	svc := new(MockCardLinkService)
	svc.On("DemoMode").Return(false)
	svc.On("Complete", mock.Anything, psp.StripePayload{Body: []byte(`{"id":"evt_1"}`), Signature: "t=1,v1=abc"}).
		Return(&cardlink.LinkResult{Link: activeLink()}, nil)

	req := newJSONRequest(http.MethodPost, "/api/link-card/callback", `{"id":"evt_1"}`)
	req.Header.Set(psp.SignatureHeader, "t=1,v1=abc")
	w := httptest.NewRecorder()
	NewCardLinkHandlers(svc).HandleCallback()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"link":{"id":"pl-1"`)
	assert.NotContains(t, w.Body.String(), "demo_tok")
	svc.AssertExpectations(t)
}

func TestHandleCallback_StripeIgnoredEvent(t *testing.T) {
	svc := new(MockCardLinkService)
	svc.On("DemoMode").Return(false)
	svc.On("Complete", mock.Anything, mock.AnythingOfType("psp.StripePayload")).Return(&cardlink.LinkResult{Ignored: true}, nil)

	w := httptest.NewRecorder()
	NewCardLinkHandlers(svc).HandleCallback()(w, newJSONRequest(http.MethodPost, "/api/link-card/callback", `{}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"ignored":true}`, w.Body.String())
}

func TestHandleCallback_DemoJSON(t *testing.T) {
	svc := new(MockCardLinkService)
	svc.On("DemoMode").Return(true)
	want := psp.DemoPayload{Token: "demo_abc", UserID: "u1", Last4: "1234", Brand: "visa"}
	svc.On("Complete", mock.Anything, want).Return(&cardlink.LinkResult{Link: activeLink()}, nil)

	w := httptest.NewRecorder()
	NewCardLinkHandlers(svc).HandleCallback()(w, newJSONRequest(http.MethodPost, "/api/link-card/callback",
		`{"demo_token":"demo_abc","token":"ignored","userId":"u1","last4":"1234","brand":"visa"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleCallback_DemoForm(t *testing.T) {
	svc := new(MockCardLinkService)
	svc.On("DemoMode").Return(true)
	want := psp.DemoPayload{Token: "tok", UserID: "u2", Last4: "1234", Brand: "VISA"}
	svc.On("Complete", mock.Anything, want).
		Return(nil, fmt.Errorf("failed to link card: %w", domain.ErrCardAlreadyUsed))

	form := url.Values{"token": {"tok"}, "userId": {"u2"}, "last4": {"1234"}, "brand": {"VISA"}}
	req := httptest.NewRequest(http.MethodPost, "/api/link-card/callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	NewCardLinkHandlers(svc).HandleCallback()(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"card_already_used"}`, w.Body.String())
}

func TestHandleCallback_DemoJSONBadLast4(t *testing.T) {
	svc := new(MockCardLinkService)
	svc.On("DemoMode").Return(true)

	w := httptest.NewRecorder()
	NewCardLinkHandlers(svc).HandleCallback()(w, newJSONRequest(http.MethodPost, "/api/link-card/callback",
		`{"token":"t","userId":"u1","last4":"12a4","brand":"VISA"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"last4":"Must be exactly 4 digits"`)
	svc.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestHandleDemoCallback(t *testing.T) {
	t.Run("redirects on success", func(t *testing.T) {
		svc := new(MockCardLinkService)
		want := psp.DemoPayload{Token: "demo_abc", UserID: "u1", Last4: "1234", Brand: "VISA"}
		svc.On("Complete", mock.Anything, want).Return(&cardlink.LinkResult{Link: activeLink()}, nil)

		w := httptest.NewRecorder()
		NewCardLinkHandlers(svc).HandleDemoCallback()(w, httptest.NewRequest(http.MethodGet,
			"/api/link-card/callback?demo_token=demo_abc&userId=u1&last4=1234&brand=VISA", nil))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, cardLinkedRedirect, w.Header().Get("Location"))
	})

	t.Run("no token", func(t *testing.T) {
		svc := new(MockCardLinkService)
		svc.On("Complete", mock.Anything, mock.AnythingOfType("psp.DemoPayload")).Return(nil, domain.ErrNoToken)

		w := httptest.NewRecorder()
		NewCardLinkHandlers(svc).HandleDemoCallback()(w, httptest.NewRequest(http.MethodGet,
			"/api/link-card/callback?userId=u1", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"no_token"}`, w.Body.String())
	})

	t.Run("demo payload refused by live provider", func(t *testing.T) {
		svc := new(MockCardLinkService)
		svc.On("Complete", mock.Anything, mock.AnythingOfType("psp.DemoPayload")).Return(nil, psp.ErrVariantNotAccepted)

		w := httptest.NewRecorder()
		NewCardLinkHandlers(svc).HandleDemoCallback()(w, httptest.NewRequest(http.MethodGet,
			"/api/link-card/callback?token=t&userId=u1&last4=1234&brand=VISA", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"bad"}`, w.Body.String())
	})
}
