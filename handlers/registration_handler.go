package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/database"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/models"
)

type RegistrationHandler struct{}

func NewRegistrationHandler() *RegistrationHandler { return &RegistrationHandler{} }

// ===== Validation rules (match the public registration form) =====
var (
	regReSchoolID = regexp.MustCompile(`^[0-9]{2}-[0-9]{4}$|^[0-9]{4,11}$`) // e.g. 20-1234 or plain digits
	regRePhone    = regexp.MustCompile(`^[0-9+\- ]{7,15}$`)
)

type registrationPayload struct {
	Fullname         string `json:"fullname"`
	StudentIDLrn     string `json:"studentIdLrn"`
	SchoolIDNumber   string `json:"schoolIdNumber"`
	DepartmentCourse string `json:"departmentCourse"`
	YearSection      string `json:"yearSection"`
	ContactNumber    string `json:"contactNumber"`
	Address          string `json:"address"`
	BirthDate        string `json:"birthDate"`
	Gender           string `json:"gender"`

	Allergies     string `json:"allergies"`
	Medications   string `json:"medications"`
	PastIllnesses string `json:"pastIllnesses"`

	EmergencyContactName   string `json:"emergencyContactName"`
	EmergencyContactNumber string `json:"emergencyContactNumber"`
}

func (p *registrationPayload) normalize() {
	trimAll(&p.Fullname, &p.StudentIDLrn, &p.SchoolIDNumber, &p.DepartmentCourse,
		&p.YearSection, &p.ContactNumber, &p.Address, &p.BirthDate, &p.Gender,
		&p.Allergies, &p.Medications, &p.PastIllnesses,
		&p.EmergencyContactName, &p.EmergencyContactNumber)
	p.Fullname = strings.Join(strings.Fields(p.Fullname), " ")
}

var registrationRequired = []string{
	"fullname", "studentIdLrn", "schoolIdNumber", "departmentCourse",
	"yearSection", "contactNumber",
}

func validateRegistration(p *registrationPayload) map[string]string {
	errs := map[string]string{}

	required := map[string]string{
		"fullname":         p.Fullname,
		"studentIdLrn":     p.StudentIDLrn,
		"schoolIdNumber":   p.SchoolIDNumber,
		"departmentCourse": p.DepartmentCourse,
		"yearSection":      p.YearSection,
		"contactNumber":    p.ContactNumber,
	}
	for _, k := range registrationRequired {
		if strings.TrimSpace(required[k]) == "" {
			errs[k] = "required"
		}
	}

	if p.SchoolIDNumber != "" && !regReSchoolID.MatchString(p.SchoolIDNumber) {
		errs["schoolIdNumber"] = "invalid school ID number"
	}
	if p.ContactNumber != "" && !regRePhone.MatchString(p.ContactNumber) {
		errs["contactNumber"] = "invalid contact number"
	}
	if p.EmergencyContactNumber != "" && !regRePhone.MatchString(p.EmergencyContactNumber) {
		errs["emergencyContactNumber"] = "invalid contact number"
	}
	if p.BirthDate != "" && !validDate(p.BirthDate) {
		errs["birthDate"] = "birth date must be YYYY-MM-DD or empty"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (p *registrationPayload) apply(r *models.Registration) {
	r.Fullname = p.Fullname
	r.StudentIDLrn = p.StudentIDLrn
	r.SchoolIDNumber = p.SchoolIDNumber
	r.DepartmentCourse = p.DepartmentCourse
	r.YearSection = p.YearSection
	r.ContactNumber = p.ContactNumber
	r.Address = p.Address
	r.BirthDate = p.BirthDate
	r.Gender = p.Gender
	r.Allergies = p.Allergies
	r.Medications = p.Medications
	r.PastIllnesses = p.PastIllnesses
	r.EmergencyContactName = p.EmergencyContactName
	r.EmergencyContactNumber = p.EmergencyContactNumber
}

// POST /api/registrations (public)
func (h *RegistrationHandler) Create(c echo.Context) error {
	var p registrationPayload
	if err := c.Bind(&p); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}
	p.normalize()
	if errs := validateRegistration(&p); errs != nil {
		return respondValidation(c, errs, registrationRequired)
	}

	r := models.Registration{Status: models.RegistrationStatusActive}
	p.apply(&r)
	if err := database.DB.Create(&r).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to save registration")
	}
	return respondOK(c, http.StatusCreated, r)
}

// GET /api/registrations?status=&q= (admin), newest first
func (h *RegistrationHandler) List(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	q := strings.TrimSpace(c.QueryParam("q"))

	tx := database.DB.Model(&models.Registration{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("fullname ILIKE ? OR school_id_number ILIKE ? OR student_id_lrn ILIKE ?", like, like, like)
	}

	var rows []models.Registration
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to load registrations")
	}
	return respondOK(c, http.StatusOK, rows)
}

// GET /api/registrations/:id (admin)
func (h *RegistrationHandler) Get(c echo.Context) error {
	var r models.Registration
	if err := database.DB.First(&r, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return respondErr(c, http.StatusNotFound, "registration not found")
		}
		return respondErr(c, http.StatusInternalServerError, "failed to load registration")
	}
	return respondOK(c, http.StatusOK, r)
}

// PUT /api/registrations/:id (admin)
func (h *RegistrationHandler) Update(c echo.Context) error {
	var existing models.Registration
	if err := database.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return respondErr(c, http.StatusNotFound, "registration not found")
		}
		return respondErr(c, http.StatusInternalServerError, "failed to load registration")
	}

	var p registrationPayload
	if err := c.Bind(&p); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}
	p.normalize()
	if errs := validateRegistration(&p); errs != nil {
		return respondValidation(c, errs, registrationRequired)
	}

	p.apply(&existing)
	if err := database.DB.Save(&existing).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to update registration")
	}
	return respondOK(c, http.StatusOK, existing)
}

// PATCH /api/registrations/:id/status (admin)
// active ↔ inactive, toggled manually; membership check only.
func (h *RegistrationHandler) UpdateStatus(c echo.Context) error {
	var body statusReq
	if err := c.Bind(&body); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}
	status := strings.TrimSpace(body.Status)
	if !models.RegistrationStatuses[status] {
		return respondErr(c, http.StatusBadRequest, "invalid status: must be active or inactive")
	}

	var r models.Registration
	if err := database.DB.First(&r, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return respondErr(c, http.StatusNotFound, "registration not found")
		}
		return respondErr(c, http.StatusInternalServerError, "failed to load registration")
	}

	r.Status = status
	r.UpdatedAt = time.Now()
	updates := map[string]any{"status": r.Status, "updated_at": r.UpdatedAt}
	if err := database.DB.Model(&r).Updates(updates).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to update status")
	}
	return respondOK(c, http.StatusOK, r)
}
