package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/database"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/models"
)

func validRegistrationPayload() registrationPayload {
	return registrationPayload{
		Fullname:         "Maria Clara Santos",
		StudentIDLrn:     "123456789012",
		SchoolIDNumber:   "21-0456",
		DepartmentCourse: "BS Nursing",
		YearSection:      "2-B",
		ContactNumber:    "0917 123 4567",
	}
}

func TestValidateRegistrationComplete(t *testing.T) {
	p := validRegistrationPayload()
	p.normalize()
	assert.Nil(t, validateRegistration(&p))
}

func TestValidateRegistrationMissingFields(t *testing.T) {
	p := registrationPayload{Fullname: "Maria Clara Santos"}
	p.normalize()

	errs := validateRegistration(&p)
	require.NotNil(t, errs)
	for _, k := range []string{"studentIdLrn", "schoolIdNumber", "departmentCourse", "yearSection", "contactNumber"} {
		assert.Contains(t, errs, k)
	}
}

func TestValidateRegistrationSchoolIDPattern(t *testing.T) {
	p := validRegistrationPayload()
	p.SchoolIDNumber = "not-an-id"
	p.normalize()

	errs := validateRegistration(&p)
	require.NotNil(t, errs)
	assert.Equal(t, "invalid school ID number", errs["schoolIdNumber"])
}

func TestValidateRegistrationBirthDate(t *testing.T) {
	p := validRegistrationPayload()
	p.BirthDate = "01/02/2004"
	p.normalize()

	errs := validateRegistration(&p)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "birthDate")

	p.BirthDate = "2004-02-01"
	assert.Nil(t, validateRegistration(&p))
}

// PUT and POST must report absent fields with the same wording.
func TestUpdateRegistrationReportsMissingFields(t *testing.T) {
	setupTestDB(t)

	stored := models.Registration{
		Fullname:         "Maria Clara Santos",
		StudentIDLrn:     "123456789012",
		SchoolIDNumber:   "21-0456",
		DepartmentCourse: "BS Nursing",
		YearSection:      "2-B",
		ContactNumber:    "0917 123 4567",
		Status:           models.RegistrationStatusActive,
	}
	require.NoError(t, database.DB.Create(&stored).Error)

	c, rec := newTestContext(http.MethodPut, "/", `{"fullname":"Maria Clara Santos"}`)
	c.SetParamNames("id")
	c.SetParamValues(stored.ID)
	h := NewRegistrationHandler()
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing required field: studentIdLrn")
}

func TestRegistrationStatusDomain(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"pending"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3f0a2e6c-0000-0000-0000-000000000000")

	h := NewRegistrationHandler()
	require.NoError(t, h.UpdateStatus(c))

	// "pending" belongs to request forms, not registrations
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid status")
}
