package handlers

import (
	"fmt"
	"sort"
	"time"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/models"
)

type MonthlyCount struct {
	Month         string `json:"month"` // YYYY-MM
	Requests      int    `json:"requests"`
	Registrations int    `json:"registrations"`
	Total         int    `json:"total"`
}

type TallyEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type AssessmentEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ReportData is the monthly clinic report. medicationData and
// assessmentData are two presentations of the same assessment tally; the
// admin UI consumes both, so both stay.
type ReportData struct {
	MonthlyData    []MonthlyCount    `json:"monthlyData"`
	MedicationData []TallyEntry      `json:"medicationData"`
	AssessmentData []AssessmentEntry `json:"assessmentData"`
	DepartmentData []TallyEntry      `json:"departmentData"`

	TotalRequests      int `json:"totalRequests"`
	TotalRegistrations int `json:"totalRegistrations"`
	TotalStudents      int `json:"totalStudents"`
}

// inPeriod filters by creation time. month == 0 means the whole year.
// A zero timestamp (seen on imported rows) passes the filter: such rows
// count toward totals and tallies but land in no monthly bucket.
func inPeriod(t time.Time, year, month int) bool {
	if t.IsZero() {
		return true
	}
	if t.Year() != year {
		return false
	}
	if month != 0 && int(t.Month()) != month {
		return false
	}
	return true
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// BuildReport is a single pass over both collections. Tally keys are exact
// string matches: "Paracetamol" and "paracetamol" are distinct buckets,
// matching how the free-text forms are entered.
func BuildReport(year, month int, requests []models.RequestForm, registrations []models.Registration) ReportData {
	monthly := map[string]*MonthlyCount{}
	medication := map[string]int{}
	department := map[string]int{}
	students := map[string]bool{}

	bucket := func(key string) *MonthlyCount {
		m, ok := monthly[key]
		if !ok {
			m = &MonthlyCount{Month: key}
			monthly[key] = m
		}
		return m
	}

	totalRequests := 0
	for _, r := range requests {
		if !inPeriod(r.CreatedAt, year, month) {
			continue
		}
		totalRequests++
		if !r.CreatedAt.IsZero() {
			bucket(monthKey(r.CreatedAt)).Requests++
		}
		medication[r.Assessment]++
		department[r.DepartmentCourse]++
		if r.SchoolIDNumber != "" {
			students[r.SchoolIDNumber] = true
		}
	}

	totalRegistrations := 0
	for _, r := range registrations {
		if !inPeriod(r.CreatedAt, year, month) {
			continue
		}
		totalRegistrations++
		if !r.CreatedAt.IsZero() {
			bucket(monthKey(r.CreatedAt)).Registrations++
		}
		department[r.DepartmentCourse]++
		if r.SchoolIDNumber != "" {
			students[r.SchoolIDNumber] = true
		}
	}

	monthlyData := make([]MonthlyCount, 0, len(monthly))
	for _, m := range monthly {
		m.Total = m.Requests + m.Registrations
		monthlyData = append(monthlyData, *m)
	}
	sort.Slice(monthlyData, func(i, j int) bool {
		return monthlyData[i].Month < monthlyData[j].Month
	})

	medicationData := sortTally(medication)
	assessmentData := make([]AssessmentEntry, len(medicationData))
	for i, e := range medicationData {
		assessmentData[i] = AssessmentEntry{Label: e.Name, Count: e.Count}
	}

	return ReportData{
		MonthlyData:        monthlyData,
		MedicationData:     medicationData,
		AssessmentData:     assessmentData,
		DepartmentData:     sortTally(department),
		TotalRequests:      totalRequests,
		TotalRegistrations: totalRegistrations,
		TotalStudents:      len(students),
	}
}

// sortTally orders by count descending, then name ascending so equal
// counts render deterministically.
func sortTally(tally map[string]int) []TallyEntry {
	out := make([]TallyEntry, 0, len(tally))
	for name, count := range tally {
		out = append(out, TallyEntry{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
