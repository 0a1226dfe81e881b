package product

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/auth"
	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/http/respond"
	"github.com/schuelerstaat/statebank/internal/http/session"
	"github.com/schuelerstaat/statebank/internal/product"
)

type Handler struct {
	svc *product.Service
}

func NewHandler(svc *product.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}", h.get)

	r.Group(func(r chi.Router) {
		r.Use(session.Require(auth.RoleCompany, auth.RoleAdmin))
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Patch("/{id}", h.edit)
		r.Delete("/{id}", h.remove)
	})
}

type productResponse struct {
	ID        uuid.UUID       `json:"id"`
	Revision  int             `json:"revision"`
	CompanyID uuid.UUID       `json:"company_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Deleted   bool            `json:"deleted"`
	CreatedAt time.Time       `json:"created_at"`
}

func toResponse(p *product.Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Revision:  p.Revision,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		Price:     p.Price,
		Deleted:   p.Deleted,
		CreatedAt: p.CreatedAt,
	}
}

func productID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fault.New(fault.CodeBadUserInput, "invalid product id")
	}

	return id, nil
}

type createRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	c, ok := session.From(r.Context())
	if !ok {
		respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	p, err := h.svc.Create(r.Context(), c.Signature.ID, req.Name, req.Price)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(p))
}

type editRequest struct {
	Name  *string          `json:"name,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	c, ok := session.From(r.Context())
	if !ok {
		respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
		return
	}

	id, err := productID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	p, err := h.svc.Edit(r.Context(), c.Signature.ID, id, req.Name, req.Price)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	c, ok := session.From(r.Context())
	if !ok {
		respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
		return
	}

	id, err := productID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if err := h.svc.Remove(r.Context(), c.Signature.ID, id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// get resolves a pinned revision when ?revision= is set, otherwise the
// current one.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	var p *product.Product
	if raw := r.URL.Query().Get("revision"); raw != "" {
		revision, err := strconv.Atoi(raw)
		if err != nil {
			respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid revision"))
			return
		}

		p, err = h.svc.Get(r.Context(), id, revision)
		if err != nil {
			respond.Error(w, err)
			return
		}
	} else {
		p, err = h.svc.Current(r.Context(), id)
		if err != nil {
			respond.Error(w, err)
			return
		}
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	c, ok := session.From(r.Context())
	if !ok {
		respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
		return
	}

	liveOnly := r.URL.Query().Get("all") == ""

	products, err := h.svc.List(r.Context(), c.Signature.ID, liveOnly)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toResponse(p)
	}

	respond.JSON(w, http.StatusOK, resp)
}
