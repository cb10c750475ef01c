package http

import (
	"net/http"

	"loanbridge/internal/adapter/middleware"
	"loanbridge/internal/usecase/report"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	uc  *report.Usecase
	log *logrus.Logger
}

func NewReportHandler(uc *report.Usecase, log *logrus.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

func (h *ReportHandler) Dashboard(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	stats, err := h.uc.Dashboard(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) BorrowerReport(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	rows, err := h.uc.BorrowerReport(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) LenderReport(c echo.Context) error {
	rows, err := h.uc.LenderReport(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) BorrowerDetails(c echo.Context) error {
	details, err := h.uc.BorrowerDetails(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *ReportHandler) CreditHistory(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	rows, err := h.uc.CreditHistory(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}
