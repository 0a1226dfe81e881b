package authn

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/schuelerstaat/statebank/internal/auth"
	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/http/respond"
	"github.com/schuelerstaat/statebank/internal/ledger"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
}

// AdminRoutes are mounted behind the admin role check.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Post("/register", h.register)
}

type loginRequest struct {
	Name     string  `json:"name"`
	Password *string `json:"password,omitempty"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Signature string    `json:"signature"`
	Role      auth.Role `json:"role"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	token, p, err := h.svc.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, loginResponse{
		Token:     token,
		Signature: p.Signature.Encode(),
		Role:      p.Role,
	})
}

type registerRequest struct {
	Signature string    `json:"signature"`
	Name      string    `json:"name"`
	Role      auth.Role `json:"role"`
	Password  *string   `json:"password,omitempty"`
}

type principalResponse struct {
	Signature string    `json:"signature"`
	Name      string    `json:"name"`
	Role      auth.Role `json:"role"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	sig, err := ledger.DecodeUserSignature(req.Signature)
	if err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid signature"))
		return
	}

	p, err := h.svc.Register(r.Context(), sig, req.Name, req.Role, req.Password)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, principalResponse{
		Signature: p.Signature.Encode(),
		Name:      p.Name,
		Role:      p.Role,
	})
}
