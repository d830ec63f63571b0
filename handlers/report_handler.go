package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/database"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/models"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler { return &ReportHandler{} }

// parsePeriod reads year (required, 4-digit) and month (optional, 1–12).
func parsePeriod(c echo.Context) (year, month int, msg string) {
	y := strings.TrimSpace(c.QueryParam("year"))
	year, err := strconv.Atoi(y)
	if err != nil || year < 1000 || year > 9999 {
		return 0, 0, "year must be a 4-digit number"
	}
	if m := strings.TrimSpace(c.QueryParam("month")); m != "" {
		month, err = strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			return 0, 0, "month must be between 1 and 12"
		}
	}
	return year, month, ""
}

func loadReportRows() ([]models.RequestForm, []models.Registration, error) {
	var requests []models.RequestForm
	if err := database.DB.Find(&requests).Error; err != nil {
		return nil, nil, err
	}
	var registrations []models.Registration
	if err := database.DB.Find(&registrations).Error; err != nil {
		return nil, nil, err
	}
	return requests, registrations, nil
}

// GET /api/reports/medication?year=YYYY&month=M (admin)
func (h *ReportHandler) Medication(c echo.Context) error {
	year, month, msg := parsePeriod(c)
	if msg != "" {
		return respondErr(c, http.StatusBadRequest, msg)
	}

	requests, registrations, err := loadReportRows()
	if err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to load report data")
	}

	return respondOK(c, http.StatusOK, BuildReport(year, month, requests, registrations))
}
