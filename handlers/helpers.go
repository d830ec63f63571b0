package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// All endpoints answer with the same envelope: {success, message?, data?}.

func respondOK(c echo.Context, code int, data any) error {
	return c.JSON(code, map[string]any{"success": true, "data": data})
}

func respondErr(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]any{"success": false, "message": msg})
}

// respondFields is respondErr plus a field→message map for form screens.
func respondFields(c echo.Context, code int, msg string, fields map[string]string) error {
	return c.JSON(code, map[string]any{"success": false, "message": msg, "fields": fields})
}

// string -> int; returns def when not parseable
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func trimAll(ss ...*string) {
	for _, s := range ss {
		*s = strings.TrimSpace(*s)
	}
}

// validDate accepts YYYY-MM-DD only.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// respondValidation answers a failed validation with the same wording on
// every endpoint: "missing required field" for absent fields, "invalid
// value" for malformed ones.
func respondValidation(c echo.Context, errs map[string]string, order []string) error {
	k := firstErrKey(errs, order)
	if errs[k] == "required" {
		return respondFields(c, http.StatusBadRequest, "missing required field: "+k, errs)
	}
	return respondFields(c, http.StatusBadRequest, "invalid value for field: "+k, errs)
}

// firstErrKey picks the first errored field in form order, for the
// top-level message; the full map still travels in "fields".
func firstErrKey(errs map[string]string, order []string) string {
	for _, k := range order {
		if _, ok := errs[k]; ok {
			return k
		}
	}
	for k := range errs {
		return k
	}
	return ""
}
