package payroll

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/auth"
	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/http/respond"
	"github.com/schuelerstaat/statebank/internal/http/session"
	"github.com/schuelerstaat/statebank/internal/payroll"
)

type Handler struct {
	svc *payroll.Service
}

func NewHandler(svc *payroll.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(session.Require(auth.RoleCompany, auth.RoleAdmin))

		r.Post("/employments", h.employ)
		r.Get("/employments", h.employments)
		r.Delete("/employments/{id}", h.cancel)
		r.Post("/worktimes", h.recordWorktime)
		r.Post("/bonuses", h.payBonus)
		r.Post("/salaries", h.paySalary)
	})
}

// actingCompany resolves the company a caller acts for. Admins may act on
// any company and get the zero id.
func actingCompany(c session.Caller) uuid.UUID {
	if c.Role == auth.RoleAdmin {
		return uuid.Nil
	}

	return c.Signature.ID
}

type employmentResponse struct {
	ID          uuid.UUID       `json:"id"`
	CompanyID   uuid.UUID       `json:"company_id"`
	CitizenID   uuid.UUID       `json:"citizen_id"`
	Salary      decimal.Decimal `json:"salary"`
	MinWorktime int             `json:"min_worktime"`
	Employer    bool            `json:"employer"`
	Cancelled   bool            `json:"cancelled"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toEmploymentResponse(e *payroll.Employment) employmentResponse {
	return employmentResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		CitizenID:   e.CitizenID,
		Salary:      e.Salary,
		MinWorktime: e.MinWorktime,
		Employer:    e.Employer,
		Cancelled:   e.Cancelled,
		CreatedAt:   e.CreatedAt,
	}
}

type employRequest struct {
	CitizenID   uuid.UUID       `json:"citizen_id"`
	Salary      decimal.Decimal `json:"salary"`
	MinWorktime int             `json:"min_worktime"`
	Employer    bool            `json:"employer"`
}

func (h *Handler) employ(w http.ResponseWriter, r *http.Request) {
	c, ok := session.From(r.Context())
	if !ok {
		respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
		return
	}

	var req employRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	e, err := h.svc.Employ(r.Context(), c.Signature.ID, req.CitizenID, req.Salary, req.MinWorktime, req.Employer)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toEmploymentResponse(e))
}

func (h *Handler) employments(w http.ResponseWriter, r *http.Request) {
	c, ok := session.From(r.Context())
	if !ok {
		respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
		return
	}

	employments, err := h.svc.Employments(r.Context(), c.Signature.ID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]employmentResponse, len(employments))
	for i, e := range employments {
		resp[i] = toEmploymentResponse(e)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	c, ok := session.From(r.Context())
	if !ok {
		respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid employment id"))
		return
	}

	if err := h.svc.Cancel(r.Context(), actingCompany(c), id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type worktimeRequest struct {
	EmploymentID uuid.UUID `json:"employment_id"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
}

type worktimeResponse struct {
	ID           uuid.UUID `json:"id"`
	EmploymentID uuid.UUID `json:"employment_id"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
}

func (h *Handler) recordWorktime(w http.ResponseWriter, r *http.Request) {
	c, ok := session.From(r.Context())
	if !ok {
		respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
		return
	}

	var req worktimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	wt, err := h.svc.RecordWorktime(r.Context(), actingCompany(c), req.EmploymentID, req.Start, req.End)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, worktimeResponse{
		ID:           wt.ID,
		EmploymentID: wt.EmploymentID,
		Start:        wt.Start,
		End:          wt.End,
	})
}

type bonusRequest struct {
	Value         decimal.Decimal `json:"value"`
	EmploymentIDs []uuid.UUID     `json:"employment_ids"`
}

type payoutResponse struct {
	ID           int64           `json:"id"`
	EmploymentID uuid.UUID       `json:"employment_id"`
	GrossValue   decimal.Decimal `json:"gross_value"`
	NetValue     decimal.Decimal `json:"net_value"`
	Tax          decimal.Decimal `json:"tax"`
	IsBonus      bool            `json:"is_bonus"`
}

func (h *Handler) payBonus(w http.ResponseWriter, r *http.Request) {
	c, ok := session.From(r.Context())
	if !ok {
		respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
		return
	}

	var req bonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	payouts, err := h.svc.PayBonus(r.Context(), c.Signature.ID, req.Value, req.EmploymentIDs)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]payoutResponse, len(payouts))
	for i, t := range payouts {
		resp[i] = payoutResponse{
			ID:           t.ID,
			EmploymentID: t.Salary.EmploymentID,
			GrossValue:   t.Salary.GrossValue,
			NetValue:     t.Salary.NetValue,
			Tax:          t.Salary.Tax,
			IsBonus:      t.Salary.IsBonus,
		}
	}

	respond.JSON(w, http.StatusCreated, resp)
}

type salaryRequest struct {
	EmploymentID uuid.UUID `json:"employment_id"`
	WorktimeID   uuid.UUID `json:"worktime_id"`
}

func (h *Handler) paySalary(w http.ResponseWriter, r *http.Request) {
	c, ok := session.From(r.Context())
	if !ok {
		respond.Error(w, fault.New(fault.CodePermissionDenied, "not authenticated"))
		return
	}

	var req salaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, fault.New(fault.CodeBadUserInput, "invalid request body"))
		return
	}

	t, err := h.svc.PaySalary(r.Context(), actingCompany(c), req.EmploymentID, req.WorktimeID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, payoutResponse{
		ID:           t.ID,
		EmploymentID: t.Salary.EmploymentID,
		GrossValue:   t.Salary.GrossValue,
		NetValue:     t.Salary.NetValue,
		Tax:          t.Salary.Tax,
		IsBonus:      t.Salary.IsBonus,
	})
}
