package http

import (
	"net/http"

	"loanbridge/internal/adapter/middleware"
	useruc "loanbridge/internal/usecase/user"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	uc  *useruc.Usecase
	log *logrus.Logger
}

func NewUserHandler(uc *useruc.Usecase, log *logrus.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

func (h *UserHandler) Profile(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	usr, err := h.uc.Profile(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, usr)
}

type updateProfileReq struct {
	Name             *string  `json:"name"`
	Phone            *string  `json:"phone"`
	Address          *string  `json:"address"`
	NetSalary        *float64 `json:"net_salary"         validate:"omitempty,gt=0,dec2"`
	Employer         *string  `json:"employer"`
	Occupation       *string  `json:"occupation"`
	EmploymentStatus *string  `json:"employment_status"`
	EmployerAddress  *string  `json:"employer_address"`
	EmployerPhone    *string  `json:"employer_phone"`
	DateOfBirth      string   `json:"date_of_birth"      validate:"omitempty,datetime=2006-01-02"`
	NationalID       *string  `json:"national_id"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	usr, err := h.uc.UpdateProfile(c.Request().Context(), actor, useruc.UpdateProfileInput{
		Name:             req.Name,
		Phone:            req.Phone,
		Address:          req.Address,
		NetSalary:        req.NetSalary,
		Employer:         req.Employer,
		Occupation:       req.Occupation,
		EmploymentStatus: req.EmploymentStatus,
		EmployerAddress:  req.EmployerAddress,
		EmployerPhone:    req.EmployerPhone,
		DateOfBirth:      parseDate(req.DateOfBirth),
		NationalID:       req.NationalID,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ListLenders(c echo.Context) error {
	lenders, err := h.uc.Lenders(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, lenders)
}

type adminCreateReq struct {
	Name     string `json:"name"      validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6"`
	Role     string `json:"role"      validate:"required,oneof=borrower lender admin"`
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req adminCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	usr, err := h.uc.AdminCreate(c.Request().Context(), useruc.AdminCreateInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, usr)
}

type adminUpdateReq struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	Role     *string `json:"role"      validate:"omitempty,oneof=borrower lender admin"`
	Password *string `json:"password"  validate:"omitempty,min=6"`
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req adminUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	usr, err := h.uc.AdminUpdate(c.Request().Context(), c.Param("user_id"), useruc.AdminUpdateInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("user_id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}
