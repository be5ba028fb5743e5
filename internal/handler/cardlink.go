package handler

import (
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/osse101/Ycine_Go/internal/cardlink"
	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/metrics"
	"github.com/osse101/Ycine_Go/internal/psp"
)

// cardLinkedRedirect is where the browser lands after a demo link completes
const cardLinkedRedirect = "/?card=linked"

// CardLinkHandlers serves the card tokenisation flow
type CardLinkHandlers struct {
	svc cardlink.Service
}

// NewCardLinkHandlers creates new card-link handlers
func NewCardLinkHandlers(svc cardlink.Service) *CardLinkHandlers {
	return &CardLinkHandlers{svc: svc}
}

// LinkCardRequest is the body of POST /api/link-card
type LinkCardRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// LinkCardResponse carries the URL where the user enters card details
type LinkCardResponse struct {
	OK   bool   `json:"ok"`
	URL  string `json:"url"`
	Demo bool   `json:"demo,omitempty"`
}

// DemoCallbackRequest is the JSON form of a demo callback
type DemoCallbackRequest struct {
	DemoToken string `json:"demo_token"`
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Last4     string `json:"last4" validate:"omitempty,last4"`
	Brand     string `json:"brand"`
}

// PaymentLinkView is a payment link as returned to clients
type PaymentLinkView struct {
	ID        string                   `json:"id"`
	UserID    string                   `json:"userId"`
	Last4     string                   `json:"last4"`
	Brand     string                   `json:"brand"`
	Source    string                   `json:"source"`
	Verified  bool                     `json:"verified"`
	Status    domain.PaymentLinkStatus `json:"status"`
	CreatedAt time.Time                `json:"createdAt"`
}

// CallbackResponse reports the outcome of a provider callback
type CallbackResponse struct {
	OK      bool             `json:"ok"`
	Ignored bool             `json:"ignored,omitempty"`
	Link    *PaymentLinkView `json:"link,omitempty"`
}

func toPaymentLinkView(l *domain.PaymentLink) *PaymentLinkView {
	return &PaymentLinkView{
		ID:        l.ID,
		UserID:    l.UserID,
		Last4:     l.Last4,
		Brand:     l.Brand,
		Source:    l.Source,
		Verified:  l.Verified,
		Status:    l.Status,
		CreatedAt: l.CreatedAt,
	}
}

// HandleInitiate handles POST /api/link-card
// @Summary Start card linking
// @Description Creates a tokenisation session. In demo mode the URL points at the demo callback.
// @Tags cards
// @Accept json
// @Produce json
// @Param request body LinkCardRequest true "Account to link"
// @Success 200 {object} LinkCardResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "psp_error"
// @Router /api/link-card [post]
func (h *CardLinkHandlers) HandleInitiate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LinkCardRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Link card"); err != nil {
			return
		}

		sess, err := h.svc.Initiate(r.Context(), req.UserID)
		if err != nil {
			respondServiceError(w, r, metrics.OperationCardLink, err)
			return
		}

		respondJSON(w, http.StatusOK, LinkCardResponse{OK: true, URL: sess.URL, Demo: sess.Demo})
	}
}

// HandleCallback handles POST /api/link-card/callback.
// With a live provider the body is a signed Stripe event; in demo mode it is
// a JSON or form-encoded DemoCallbackRequest.
// @Summary Card tokenisation callback
// @Tags cards
// @Accept json
// @Produce json
// @Param Stripe-Signature header string false "Stripe webhook signature"
// @Success 200 {object} CallbackResponse
// @Failure 400 {object} ErrorResponse "bad or no_token"
// @Failure 409 {object} ErrorResponse "card_already_used"
// @Failure 502 {object} ErrorResponse "psp_error"
// @Router /api/link-card/callback [post]
func (h *CardLinkHandlers) HandleCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload psp.Payload
		if h.svc.DemoMode() {
			p, ok := readDemoPayload(w, r)
			if !ok {
				return
			}
			payload = p
		} else {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				logger.FromContext(r.Context()).Warn(LogMsgCallbackUnreadable, "error", err)
				respondError(w, http.StatusBadRequest, ErrCodeBad)
				return
			}
			payload = psp.StripePayload{Body: body, Signature: r.Header.Get(psp.SignatureHeader)}
		}

		res, ok := h.complete(w, r, payload)
		if !ok {
			return
		}
		if res.Ignored {
			respondJSON(w, http.StatusOK, CallbackResponse{OK: true, Ignored: true})
			return
		}
		respondJSON(w, http.StatusOK, CallbackResponse{OK: true, Link: toPaymentLinkView(res.Link)})
	}
}

// HandleDemoCallback handles GET /api/link-card/callback, the landing URL of
// the demo flow. On success the browser is redirected back to the app.
// @Summary Demo card callback
// @Tags cards
// @Produce json
// @Param demo_token query string false "Demo token"
// @Param token query string false "Token (alias)"
// @Param userId query string true "Account id"
// @Param last4 query string true "Last four digits"
// @Param brand query string true "Card brand"
// @Success 303
// @Failure 400 {object} ErrorResponse "bad or no_token"
// @Failure 409 {object} ErrorResponse "card_already_used"
// @Router /api/link-card/callback [get]
func (h *CardLinkHandlers) HandleDemoCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := h.complete(w, r, psp.DemoPayloadFromValues(r.URL.Query()))
		if !ok {
			return
		}
		if res.Ignored {
			respondJSON(w, http.StatusOK, CallbackResponse{OK: true, Ignored: true})
			return
		}
		http.Redirect(w, r, cardLinkedRedirect, http.StatusSeeOther)
	}
}

func (h *CardLinkHandlers) complete(w http.ResponseWriter, r *http.Request, payload psp.Payload) (*cardlink.LinkResult, bool) {
	res, err := h.svc.Complete(r.Context(), payload)
	if err != nil {
		respondServiceError(w, r, metrics.OperationCardLink, err)
		return nil, false
	}
	if res.Ignored {
		logger.FromContext(r.Context()).Debug(LogMsgCallbackIgnored)
	}
	return res, true
}

// readDemoPayload accepts a JSON body or form values
func readDemoPayload(w http.ResponseWriter, r *http.Request) (psp.Payload, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req DemoCallbackRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Demo card callback"); err != nil {
			return nil, false
		}
		token := req.DemoToken
		if token == "" {
			token = req.Token
		}
		return psp.DemoPayload{Token: token, UserID: req.UserID, Last4: req.Last4, Brand: req.Brand}, true
	}

	if err := r.ParseForm(); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgCallbackUnreadable, "error", err)
		respondError(w, http.StatusBadRequest, ErrCodeBad)
		return nil, false
	}
	return psp.DemoPayloadFromValues(r.Form), true
}
