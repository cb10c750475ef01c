package http

import (
	"net/http"

	"loanbridge/internal/adapter/middleware"
	loanuc "loanbridge/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type LoanHandler struct {
	uc  *loanuc.Usecase
	log *logrus.Logger
}

func NewLoanHandler(uc *loanuc.Usecase, log *logrus.Logger) *LoanHandler {
	return &LoanHandler{uc: uc, log: log}
}

type applyReq struct {
	Amount      float64 `json:"amount"        validate:"required,gt=0,dec2"`
	Purpose     string  `json:"purpose"       validate:"required"`
	LenderID    string  `json:"lender_id"     validate:"required"`
	DownPayment float64 `json:"down_payment"  validate:"omitempty,gte=0,dec2"`

	Email        string   `json:"email"          validate:"omitempty,email"`
	BirthDate    string   `json:"birth_date"     validate:"omitempty,datetime=2006-01-02"`
	NationalID   string   `json:"national_id"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	AnnualIncome *float64 `json:"annual_income"  validate:"omitempty,gte=0"`
	Employer     string   `json:"employer"`
	Occupation   string   `json:"occupation"`
	GrossMonthly *float64 `json:"gross_monthly"  validate:"omitempty,gte=0"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Apply(c.Request().Context(), actor, loanuc.ApplyInput{
		Amount:       req.Amount,
		Purpose:      req.Purpose,
		LenderID:     req.LenderID,
		DownPayment:  req.DownPayment,
		Email:        req.Email,
		BirthDate:    parseDate(req.BirthDate),
		NationalID:   req.NationalID,
		Address:      req.Address,
		Phone:        req.Phone,
		AnnualIncome: req.AnnualIncome,
		Employer:     req.Employer,
		Occupation:   req.Occupation,
		GrossMonthly: req.GrossMonthly,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) History(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	loans, err := h.uc.History(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) ListPending(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	loans, err := h.uc.PendingForLender(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, loans)
}

type approveReq struct {
	// Pointers so an explicit 0% rate passes "required".
	InterestRate   *float64 `json:"interest_rate"    validate:"required,gte=0,lte=100"`
	DurationMonths *int     `json:"duration_months"  validate:"required,gt=0"`
}

func (h *LoanHandler) Approve(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	var req approveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Approve(c.Request().Context(), actor, c.Param("loan_id"), loanuc.ApproveInput{
		InterestRate:   *req.InterestRate,
		DurationMonths: *req.DurationMonths,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Reject(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	dto, err := h.uc.Reject(c.Request().Context(), actor, c.Param("loan_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type payReq struct {
	AmountPaid *float64 `json:"amount_paid" validate:"required,gt=0,dec2"`
}

func (h *LoanHandler) Pay(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	var req payReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Pay(c.Request().Context(), actor, c.Param("loan_id"), *req.AmountPaid)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
