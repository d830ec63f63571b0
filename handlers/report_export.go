package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /api/reports/medication/export?year=YYYY&month=M (admin)
// Same report as Medication, rendered as an .xlsx workbook.
func (h *ReportHandler) Export(c echo.Context) error {
	year, month, msg := parsePeriod(c)
	if msg != "" {
		return respondErr(c, http.StatusBadRequest, msg)
	}

	requests, registrations, err := loadReportRows()
	if err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to load report data")
	}
	report := BuildReport(year, month, requests, registrations)

	buf, err := renderReportXLSX(report)
	if err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to render report")
	}

	name := fmt.Sprintf("clinic-report-%04d", year)
	if month != 0 {
		name = fmt.Sprintf("%s-%02d", name, month)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.xlsx"`, name))
	return c.Blob(http.StatusOK, xlsxMIME, buf)
}

func renderReportXLSX(report ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	writeRow := func(sheet string, row int, values ...any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, cell, &values)
	}

	// Summary
	summary := "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}
	if err := writeRow(summary, 1, "Total Requests", report.TotalRequests); err != nil {
		return nil, err
	}
	if err := writeRow(summary, 2, "Total Registrations", report.TotalRegistrations); err != nil {
		return nil, err
	}
	if err := writeRow(summary, 3, "Total Students", report.TotalStudents); err != nil {
		return nil, err
	}

	monthly := "Monthly"
	if _, err := f.NewSheet(monthly); err != nil {
		return nil, err
	}
	if err := writeRow(monthly, 1, "Month", "Requests", "Registrations", "Total"); err != nil {
		return nil, err
	}
	for i, m := range report.MonthlyData {
		if err := writeRow(monthly, i+2, m.Month, m.Requests, m.Registrations, m.Total); err != nil {
			return nil, err
		}
	}

	medications := "Medications"
	if _, err := f.NewSheet(medications); err != nil {
		return nil, err
	}
	if err := writeRow(medications, 1, "Assessment", "Count"); err != nil {
		return nil, err
	}
	for i, e := range report.MedicationData {
		if err := writeRow(medications, i+2, e.Name, e.Count); err != nil {
			return nil, err
		}
	}

	departments := "Departments"
	if _, err := f.NewSheet(departments); err != nil {
		return nil, err
	}
	if err := writeRow(departments, 1, "Department / Course", "Count"); err != nil {
		return nil, err
	}
	for i, e := range report.DepartmentData {
		if err := writeRow(departments, i+2, e.Name, e.Count); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
