package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/database"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/models"
)

type InventoryHandler struct{}

func NewInventoryHandler() *InventoryHandler { return &InventoryHandler{} }

type inventoryPayload struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	Quantity       any    `json:"quantity"` // number or numeric string from the form
	Unit           string `json:"unit"`
	ExpirationDate string `json:"expirationDate"`
}

// asQuantity coerces the JSON value into a non-negative whole number.
func asQuantity(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || i < 0 {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// POST /api/inventory (admin)
func (h *InventoryHandler) Create(c echo.Context) error {
	var p inventoryPayload
	if err := c.Bind(&p); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}
	trimAll(&p.Name, &p.Category, &p.Unit, &p.ExpirationDate)

	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "required"
	}
	if p.Category == "" {
		errs["category"] = "required"
	}
	if p.ExpirationDate == "" {
		errs["expirationDate"] = "required"
	} else if !validDate(p.ExpirationDate) {
		errs["expirationDate"] = "expiration date must be YYYY-MM-DD"
	}
	qty, okQty := asQuantity(p.Quantity)
	if p.Quantity == nil {
		errs["quantity"] = "required"
	} else if !okQty {
		errs["quantity"] = "quantity must be a non-negative whole number"
	}
	if len(errs) > 0 {
		return respondValidation(c, errs, []string{"name", "category", "quantity", "expirationDate"})
	}

	item := models.InventoryItem{
		Name:           p.Name,
		Category:       p.Category,
		Quantity:       qty,
		Unit:           p.Unit,
		ExpirationDate: p.ExpirationDate,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to save item")
	}
	return respondOK(c, http.StatusCreated, item)
}

// GET /api/inventory?category=&q= (admin), newest first
func (h *InventoryHandler) List(c echo.Context) error {
	category := strings.TrimSpace(c.QueryParam("category"))
	q := strings.TrimSpace(c.QueryParam("q"))

	tx := database.DB.Model(&models.InventoryItem{})
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	if q != "" {
		tx = tx.Where("name ILIKE ?", "%"+q+"%")
	}

	var rows []models.InventoryItem
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to load inventory")
	}
	return respondOK(c, http.StatusOK, rows)
}

type inventoryUpdatePayload struct {
	Name           *string `json:"name"`
	Category       *string `json:"category"`
	Quantity       any     `json:"quantity"`
	Unit           *string `json:"unit"`
	ExpirationDate *string `json:"expirationDate"`
}

// PUT /api/inventory/:id (admin) — partial update, only supplied fields
func (h *InventoryHandler) Update(c echo.Context) error {
	var existing models.InventoryItem
	if err := database.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return respondErr(c, http.StatusNotFound, "item not found")
		}
		return respondErr(c, http.StatusInternalServerError, "failed to load item")
	}

	var p inventoryUpdatePayload
	if err := c.Bind(&p); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}

	updates := map[string]any{}
	if p.Name != nil {
		v := strings.TrimSpace(*p.Name)
		if v == "" {
			return respondErr(c, http.StatusBadRequest, "invalid value for field: name")
		}
		updates["name"] = v
	}
	if p.Category != nil {
		v := strings.TrimSpace(*p.Category)
		if v == "" {
			return respondErr(c, http.StatusBadRequest, "invalid value for field: category")
		}
		updates["category"] = v
	}
	if p.Unit != nil {
		updates["unit"] = strings.TrimSpace(*p.Unit)
	}
	if p.ExpirationDate != nil {
		v := strings.TrimSpace(*p.ExpirationDate)
		if !validDate(v) {
			return respondErr(c, http.StatusBadRequest, "invalid value for field: expirationDate")
		}
		updates["expiration_date"] = v
	}
	if p.Quantity != nil {
		qty, ok := asQuantity(p.Quantity)
		if !ok {
			return respondErr(c, http.StatusBadRequest, "invalid value for field: quantity")
		}
		updates["quantity"] = qty
	}
	if len(updates) == 0 {
		return respondOK(c, http.StatusOK, existing)
	}
	updates["updated_at"] = time.Now()

	if err := database.DB.Model(&existing).Updates(updates).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to update item")
	}
	if err := database.DB.First(&existing, "id = ?", existing.ID).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to load item")
	}
	return respondOK(c, http.StatusOK, existing)
}

type reduceReq struct {
	Quantity any `json:"quantity"` // amount to subtract
}

// PATCH /api/inventory/:id/quantity (admin)
// Single conditional UPDATE so two concurrent reducers can never both pass
// the quantity check and lose one of the writes.
func (h *InventoryHandler) ReduceQuantity(c echo.Context) error {
	id := c.Param("id")

	var body reduceReq
	if err := c.Bind(&body); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}
	n, ok := asQuantity(body.Quantity)
	if !ok || n <= 0 {
		return respondErr(c, http.StatusBadRequest, "quantity must be a positive whole number")
	}

	res := database.DB.Model(&models.InventoryItem{}).
		Where("id = ? AND quantity >= ?", id, n).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity - ?", n),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to update quantity")
	}

	var item models.InventoryItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return respondErr(c, http.StatusNotFound, "item not found")
		}
		return respondErr(c, http.StatusInternalServerError, "failed to load item")
	}
	if res.RowsAffected == 0 {
		return respondErr(c, http.StatusBadRequest,
			fmt.Sprintf("insufficient quantity: only %d available", item.Quantity))
	}
	return respondOK(c, http.StatusOK, item)
}

// DELETE /api/inventory/:id (admin)
func (h *InventoryHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.InventoryItem{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to delete item")
	}
	if res.RowsAffected == 0 {
		return respondErr(c, http.StatusNotFound, "item not found")
	}
	return respondOK(c, http.StatusOK, map[string]any{"deleted": true})
}
