package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/database"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/models"
)

// Visit log. Records are append-only: no update or delete endpoints, and
// the link to a registration is a plain school-ID string match.
type MedicalRecordHandler struct{}

func NewMedicalRecordHandler() *MedicalRecordHandler { return &MedicalRecordHandler{} }

type medicalRecordPayload struct {
	SchoolIDNumber string `json:"schoolIdNumber"`
	Fullname       string `json:"fullname"`
	VisitDate      string `json:"visitDate"`
	VisitType      string `json:"visitType"`
	Diagnosis      string `json:"diagnosis"`

	BloodPressure   string `json:"bloodPressure"`
	Temperature     string `json:"temperature"`
	PulseRate       string `json:"pulseRate"`
	RespiratoryRate string `json:"respiratoryRate"`

	Treatment              string `json:"treatment"`
	Remarks                string `json:"remarks"`
	AttendingPersonnelName string `json:"attendingPersonnelName"`
}

func (p *medicalRecordPayload) normalize() {
	trimAll(&p.SchoolIDNumber, &p.Fullname, &p.VisitDate, &p.VisitType,
		&p.Diagnosis, &p.BloodPressure, &p.Temperature, &p.PulseRate,
		&p.RespiratoryRate, &p.Treatment, &p.Remarks, &p.AttendingPersonnelName)
}

var medicalRecordRequired = []string{
	"schoolIdNumber", "fullname", "visitDate", "visitType", "attendingPersonnelName",
}

func validateMedicalRecord(p *medicalRecordPayload) map[string]string {
	errs := map[string]string{}

	required := map[string]string{
		"schoolIdNumber":         p.SchoolIDNumber,
		"fullname":               p.Fullname,
		"visitDate":              p.VisitDate,
		"visitType":              p.VisitType,
		"attendingPersonnelName": p.AttendingPersonnelName,
	}
	for _, k := range medicalRecordRequired {
		if strings.TrimSpace(required[k]) == "" {
			errs[k] = "required"
		}
	}
	if p.VisitDate != "" && !validDate(p.VisitDate) {
		errs["visitDate"] = "visit date must be YYYY-MM-DD"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// POST /api/medical-records (admin)
func (h *MedicalRecordHandler) Create(c echo.Context) error {
	var p medicalRecordPayload
	if err := c.Bind(&p); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}
	p.normalize()
	if errs := validateMedicalRecord(&p); errs != nil {
		return respondValidation(c, errs, medicalRecordRequired)
	}

	m := models.MedicalRecord{
		SchoolIDNumber:         p.SchoolIDNumber,
		Fullname:               p.Fullname,
		VisitDate:              p.VisitDate,
		VisitType:              p.VisitType,
		Diagnosis:              p.Diagnosis,
		BloodPressure:          p.BloodPressure,
		Temperature:            p.Temperature,
		PulseRate:              p.PulseRate,
		RespiratoryRate:        p.RespiratoryRate,
		Treatment:              p.Treatment,
		Remarks:                p.Remarks,
		AttendingPersonnelName: p.AttendingPersonnelName,
	}
	if err := database.DB.Create(&m).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to save medical record")
	}
	return respondOK(c, http.StatusCreated, m)
}

// GET /api/medical-records?schoolIdNumber=&q=&page=&size= (admin)
// The visit log only grows, so this is the one paginated list.
func (h *MedicalRecordHandler) List(c echo.Context) error {
	schoolID := strings.TrimSpace(c.QueryParam("schoolIdNumber"))
	q := strings.TrimSpace(c.QueryParam("q"))

	page := atoiOr(c.QueryParam("page"), 1)
	size := atoiOr(c.QueryParam("size"), 50)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 200 {
		size = 50
	}

	tx := database.DB.Model(&models.MedicalRecord{})
	if schoolID != "" {
		tx = tx.Where("school_id_number = ?", schoolID)
	}
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("fullname ILIKE ? OR diagnosis ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to load medical records")
	}

	var rows []models.MedicalRecord
	if err := tx.Order("created_at DESC").Limit(size).Offset((page - 1) * size).Find(&rows).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to load medical records")
	}
	return respondOK(c, http.StatusOK, map[string]any{
		"records": rows,
		"page":    page,
		"size":    size,
		"total":   total,
	})
}

// GET /api/medical-records/:id (admin)
func (h *MedicalRecordHandler) Get(c echo.Context) error {
	var m models.MedicalRecord
	if err := database.DB.First(&m, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return respondErr(c, http.StatusNotFound, "medical record not found")
		}
		return respondErr(c, http.StatusInternalServerError, "failed to load medical record")
	}
	return respondOK(c, http.StatusOK, m)
}
