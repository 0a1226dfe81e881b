package ledger

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/auth"
	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/http/respond"
	"github.com/schuelerstaat/statebank/internal/http/session"
	"github.com/schuelerstaat/statebank/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/transfers", h.transfer)

	r.With(session.Require(auth.RoleBorderControl, auth.RoleAdmin)).
		Post("/customs", h.chargeCustoms)

	r.Route("/change-drafts", func(r chi.Router) {
		r.Use(session.Require(auth.RoleBank, auth.RoleAdmin))
		r.Post("/", h.createChangeDraft)
		r.Get("/", h.listChangeDrafts)
		r.Post("/{id}/pay", h.payChangeDraft)
		r.Delete("/{id}", h.deleteChangeDraft)
	})

	r.Route("/purchase-drafts", func(r chi.Router) {
		r.With(session.Require(auth.RoleCompany, auth.RoleAdmin)).Get("/", h.listPurchaseDrafts)
		r.Post("/{id}/pay", h.payPurchaseDraft)
		r.With(session.Require(auth.RoleCompany, auth.RoleAdmin)).Delete("/{id}", h.deletePurchaseDraft)
	})

	r.With(session.Require(auth.RoleCompany, auth.RoleAdmin)).
		Post("/sales", h.sell)
	r.With(session.Require(auth.RoleCompany, auth.RoleAdmin)).
		Post("/warehouse-purchases", h.warehousePurchase)

	r.Get("/transactions", h.statement)
	r.With(session.Require(auth.RoleBank, auth.RoleAdmin)).
		Get("/transactions/{id}", h.transaction)
}

func caller(w http.ResponseWriter, r *http.Request) (session.Caller, bool) {
	c, ok := session.From(r.Context())
	if !ok {
		respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
	}

	return c, ok
}

func draftID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fault.New(fault.CodeBadUserInput, "invalid id")
	}

	return id, nil
}

type transferRequest struct {
	Receiver string          `json:"receiver"`
	Value    decimal.Decimal `json:"value"`
	Purpose  *string         `json:"purpose,omitempty"`
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	receiver, err := ledger.DecodeUserSignature(req.Receiver)
	if err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid receiver"))
		return
	}

	t, err := h.svc.TransferMoney(r.Context(), c.Signature, receiver, req.Value, req.Purpose)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toTransactionResponse(t))
}

type customsRequest struct {
	User    string          `json:"user"`
	Customs decimal.Decimal `json:"customs"`
}

func (h *Handler) chargeCustoms(w http.ResponseWriter, r *http.Request) {
	var req customsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	user, err := ledger.DecodeUserSignature(req.User)
	if err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid user"))
		return
	}

	t, err := h.svc.ChargeCustoms(r.Context(), user, req.Customs)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toTransactionResponse(t))
}

type createChangeDraftRequest struct {
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
	FromValue    decimal.Decimal `json:"from_value"`
}

func (h *Handler) createChangeDraft(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req createChangeDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	d, err := h.svc.CreateChangeDraft(r.Context(), c.Signature, req.FromCurrency, req.ToCurrency, req.FromValue)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toChangeDraftResponse(d))
}

func (h *Handler) listChangeDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.svc.OpenChangeDrafts(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]changeDraftResponse, len(drafts))
	for i, d := range drafts {
		resp[i] = toChangeDraftResponse(d)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type settleRequest struct {
	User     string  `json:"user"`
	Password *string `json:"password,omitempty"`
}

func (h *Handler) payChangeDraft(w http.ResponseWriter, r *http.Request) {
	id, err := draftID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	user, err := ledger.DecodeUserSignature(req.User)
	if err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid user"))
		return
	}

	t, err := h.svc.PayChangeDraft(r.Context(), id, user, req.Password)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toTransactionResponse(t))
}

func (h *Handler) deleteChangeDraft(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	id, err := draftID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if err := h.svc.DeleteChangeDraft(r.Context(), c.Signature, id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type orderItemRequest struct {
	ProductID string `json:"product_id"`
	Revision  int    `json:"revision"`
	Amount    int    `json:"amount"`
}

type sellRequest struct {
	Items    []orderItemRequest `json:"items"`
	Discount *decimal.Decimal   `json:"discount,omitempty"`
}

func toOrderItems(reqs []orderItemRequest) ([]ledger.OrderItem, error) {
	items := make([]ledger.OrderItem, len(reqs))
	for i, it := range reqs {
		id, err := uuid.Parse(it.ProductID)
		if err != nil {
			return nil, fault.New(fault.CodeBadUserInput, "invalid product id %q", it.ProductID)
		}

		items[i] = ledger.OrderItem{
			ProductRef: ledger.ProductRef{ProductID: id, Revision: it.Revision},
			Amount:     it.Amount,
		}
	}

	return items, nil
}

func (h *Handler) sell(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req sellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	items, err := toOrderItems(req.Items)
	if err != nil {
		respond.Error(w, err)
		return
	}

	d, err := h.svc.Sell(r.Context(), c.Signature, items, req.Discount)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toPurchaseDraftResponse(d))
}

type warehousePurchaseRequest struct {
	Items []orderItemRequest `json:"items"`
}

func (h *Handler) warehousePurchase(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req warehousePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	items, err := toOrderItems(req.Items)
	if err != nil {
		respond.Error(w, err)
		return
	}

	t, err := h.svc.WarehousePurchase(r.Context(), c.Signature, items)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toTransactionResponse(t))
}

func (h *Handler) listPurchaseDrafts(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	drafts, err := h.svc.OpenPurchaseDrafts(r.Context(), c.Signature.ID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]purchaseDraftResponse, len(drafts))
	for i, d := range drafts {
		resp[i] = toPurchaseDraftResponse(d)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) payPurchaseDraft(w http.ResponseWriter, r *http.Request) {
	id, err := draftID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	customer, err := ledger.DecodeUserSignature(req.User)
	if err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid user"))
		return
	}

	t, err := h.svc.PayPurchaseDraft(r.Context(), id, customer, req.Password)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toTransactionResponse(t))
}

func (h *Handler) deletePurchaseDraft(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	id, err := draftID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if err := h.svc.DeletePurchaseDraft(r.Context(), c.Signature, id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	user := c.Signature
	// The bank may pull any principal's statement.
	if raw := r.URL.Query().Get("user"); raw != "" {
		if c.Role != auth.RoleBank && c.Role != auth.RoleAdmin {
			respond.Error(w, fault.New(fault.CodePermissionDenied, "only the bank reads foreign statements"))
			return
		}

		sig, err := ledger.DecodeUserSignature(raw)
		if err != nil {
			respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid user"))
			return
		}

		user = sig
	}

	ts, err := h.svc.Statement(r.Context(), user)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toTransactionResponses(ts))
}

func (h *Handler) transaction(w http.ResponseWriter, r *http.Request) {
	id, err := draftID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	t, err := h.svc.Transaction(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toTransactionResponse(t))
}
