package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/database"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/models"
)

func TestAsQuantity(t *testing.T) {
	cases := []struct {
		in   any
		want int
		ok   bool
	}{
		{float64(10), 10, true},
		{float64(0), 0, true},
		{"25", 25, true},
		{" 7 ", 7, true},
		{float64(-1), 0, false},
		{float64(2.5), 0, false},
		{"ten", 0, false},
		{"", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, tc := range cases {
		got, ok := asQuantity(tc.in)
		assert.Equal(t, tc.ok, ok, "input %v", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %v", tc.in)
		}
	}
}

func newStoredItem(t *testing.T, qty int) models.InventoryItem {
	t.Helper()
	item := models.InventoryItem{
		Name:           "Paracetamol 500mg",
		Category:       "medicine",
		Quantity:       qty,
		Unit:           "pcs",
		ExpirationDate: "2027-01-31",
	}
	require.NoError(t, database.DB.Create(&item).Error)
	return item
}

func reduceCtx(t *testing.T, id string, amount int) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newTestContext(http.MethodPatch, "/", fmt.Sprintf(`{"quantity":%d}`, amount))
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestReduceQuantityExactToZero(t *testing.T) {
	setupTestDB(t)
	item := newStoredItem(t, 10)

	c, rec := reduceCtx(t, item.ID, 10)
	h := NewInventoryHandler()
	require.NoError(t, h.ReduceQuantity(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.InventoryItem
	require.NoError(t, database.DB.First(&got, "id = ?", item.ID).Error)
	assert.Equal(t, 0, got.Quantity)
}

func TestReduceQuantityInsufficientLeavesQuantity(t *testing.T) {
	setupTestDB(t)
	item := newStoredItem(t, 10)

	c, rec := reduceCtx(t, item.ID, 11)
	h := NewInventoryHandler()
	require.NoError(t, h.ReduceQuantity(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient quantity: only 10 available")

	var got models.InventoryItem
	require.NoError(t, database.DB.First(&got, "id = ?", item.ID).Error)
	assert.Equal(t, 10, got.Quantity)
}

func TestReduceQuantityUnknownID(t *testing.T) {
	setupTestDB(t)

	c, rec := reduceCtx(t, "3f0a2e6c-0000-0000-0000-000000000000", 1)
	h := NewInventoryHandler()
	require.NoError(t, h.ReduceQuantity(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUnknownItemLeavesOthersAlone(t *testing.T) {
	setupTestDB(t)
	item := newStoredItem(t, 7)

	c, rec := newTestContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("3f0a2e6c-0000-0000-0000-000000000000")
	h := NewInventoryHandler()
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var got models.InventoryItem
	require.NoError(t, database.DB.First(&got, "id = ?", item.ID).Error)
	assert.Equal(t, 7, got.Quantity)
}

func TestDeleteItem(t *testing.T) {
	setupTestDB(t)
	item := newStoredItem(t, 7)

	c, rec := newTestContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(item.ID)
	h := NewInventoryHandler()
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)

	err := database.DB.First(&models.InventoryItem{}, "id = ?", item.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// The amount check runs before the database write: zero, negative and
// non-numeric amounts are rejected without touching the stored quantity.
func TestReduceQuantityRejectsBadAmount(t *testing.T) {
	for _, body := range []string{
		`{"quantity":0}`,
		`{"quantity":-3}`,
		`{"quantity":"lots"}`,
		`{"quantity":1.5}`,
	} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("3f0a2e6c-0000-0000-0000-000000000000")

		h := NewInventoryHandler()
		require.NoError(t, h.ReduceQuantity(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Contains(t, rec.Body.String(), "positive whole number", "body %s", body)
	}
}
