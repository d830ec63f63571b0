package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/database"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/models"
)

type RequestFormHandler struct{}

func NewRequestFormHandler() *RequestFormHandler { return &RequestFormHandler{} }

type requestFormPayload struct {
	Fullname         string `json:"fullname"`
	YearSection      string `json:"yearSection"`
	SchoolIDNumber   string `json:"schoolIdNumber"`
	DepartmentCourse string `json:"departmentCourse"`
	Assessment       string `json:"assessment"`
	ReferredTo       string `json:"referredTo"`
}

func (p *requestFormPayload) normalize() {
	trimAll(&p.Fullname, &p.YearSection, &p.SchoolIDNumber,
		&p.DepartmentCourse, &p.Assessment, &p.ReferredTo)
}

var requestFormRequired = []string{
	"fullname", "yearSection", "schoolIdNumber", "departmentCourse", "assessment",
}

func validateRequestForm(p *requestFormPayload) map[string]string {
	fields := map[string]string{
		"fullname":         p.Fullname,
		"yearSection":      p.YearSection,
		"schoolIdNumber":   p.SchoolIDNumber,
		"departmentCourse": p.DepartmentCourse,
		"assessment":       p.Assessment,
	}
	errs := map[string]string{}
	for _, k := range requestFormRequired {
		if strings.TrimSpace(fields[k]) == "" {
			errs[k] = "required"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// POST /api/requests (public)
func (h *RequestFormHandler) Create(c echo.Context) error {
	var p requestFormPayload
	if err := c.Bind(&p); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}
	p.normalize()
	if errs := validateRequestForm(&p); errs != nil {
		return respondValidation(c, errs, requestFormRequired)
	}

	r := models.RequestForm{
		Fullname:         p.Fullname,
		YearSection:      p.YearSection,
		SchoolIDNumber:   p.SchoolIDNumber,
		DepartmentCourse: p.DepartmentCourse,
		Assessment:       p.Assessment,
		ReferredTo:       p.ReferredTo,
		Status:           models.RequestStatusPending,
	}
	if err := database.DB.Create(&r).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to save request")
	}
	return respondOK(c, http.StatusCreated, r)
}

// GET /api/requests?status=&q= (admin), newest first
func (h *RequestFormHandler) List(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	q := strings.TrimSpace(c.QueryParam("q"))

	tx := database.DB.Model(&models.RequestForm{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("fullname ILIKE ? OR school_id_number ILIKE ? OR assessment ILIKE ?", like, like, like)
	}

	var rows []models.RequestForm
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to load requests")
	}
	return respondOK(c, http.StatusOK, rows)
}

// GET /api/requests/:id (admin)
func (h *RequestFormHandler) Get(c echo.Context) error {
	var r models.RequestForm
	if err := database.DB.First(&r, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return respondErr(c, http.StatusNotFound, "request not found")
		}
		return respondErr(c, http.StatusInternalServerError, "failed to load request")
	}
	return respondOK(c, http.StatusOK, r)
}

type statusReq struct {
	Status string `json:"status"`
}

// PATCH /api/requests/:id/status (admin)
// Any allowed status may replace any other; there is no transition table.
func (h *RequestFormHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")

	var body statusReq
	if err := c.Bind(&body); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}
	status := strings.TrimSpace(body.Status)
	if !models.RequestStatuses[status] {
		return respondErr(c, http.StatusBadRequest,
			"invalid status: must be one of pending, approved, rejected, processing")
	}

	var r models.RequestForm
	if err := database.DB.First(&r, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return respondErr(c, http.StatusNotFound, "request not found")
		}
		return respondErr(c, http.StatusInternalServerError, "failed to load request")
	}

	r.Status = status
	r.UpdatedAt = time.Now()
	updates := map[string]any{"status": r.Status, "updated_at": r.UpdatedAt}
	if err := database.DB.Model(&r).Updates(updates).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to update status")
	}
	return respondOK(c, http.StatusOK, r)
}
