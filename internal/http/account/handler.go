package account

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/account"
	"github.com/schuelerstaat/statebank/internal/auth"
	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/http/respond"
	"github.com/schuelerstaat/statebank/internal/http/session"
	"github.com/schuelerstaat/statebank/internal/ledger"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/me", h.own)

	r.Group(func(r chi.Router) {
		r.Use(session.Require(auth.RoleBank, auth.RoleAdmin))
		r.Post("/", h.open)
		r.Get("/", h.list)
		r.Get("/{signature}", h.get)
	})
}

type accountResponse struct {
	Owner             string          `json:"owner"`
	Balance           decimal.Decimal `json:"balance"`
	RedemptionBalance decimal.Decimal `json:"redemption_balance"`
	CreatedAt         time.Time       `json:"created_at"`
}

func toResponse(a *account.Account) accountResponse {
	return accountResponse{
		Owner:             a.Owner.Encode(),
		Balance:           a.Balance,
		RedemptionBalance: a.RedemptionBalance,
		CreatedAt:         a.CreatedAt,
	}
}

type openRequest struct {
	Owner   string          `json:"owner"`
	Balance decimal.Decimal `json:"balance"`
}

func (h *Handler) open(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	owner, err := ledger.DecodeUserSignature(req.Owner)
	if err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid owner"))
		return
	}

	a, err := h.svc.Open(r.Context(), owner, req.Balance)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) own(w http.ResponseWriter, r *http.Request) {
	c, ok := session.From(r.Context())
	if !ok {
		respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
		return
	}

	a, err := h.svc.Get(r.Context(), c.Signature)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	owner, err := ledger.DecodeUserSignature(chi.URLParam(r, "signature"))
	if err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid signature"))
		return
	}

	a, err := h.svc.Get(r.Context(), owner)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toResponse(a)
	}

	respond.JSON(w, http.StatusOK, resp)
}
