package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/database"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/models"
)

func multipartCtx(t *testing.T, method string, fields map[string]string, imageName string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageName != "" {
		fw, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	e := echo.New()
	req := httptest.NewRequest(method, "/", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateAnnouncementWithImage(t *testing.T) {
	setupTestDB(t)
	dir := t.TempDir()

	c, rec := multipartCtx(t, http.MethodPost,
		map[string]string{"title": "Flu vaccination drive", "description": "Free shots at the clinic."},
		"poster.png")
	h := NewAnnouncementHandler(dir)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var stored []models.Announcement
	require.NoError(t, database.DB.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Contains(t, stored[0].Image, "/uploads/")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateAnnouncementRejectsUnsupportedImage(t *testing.T) {
	setupTestDB(t)
	dir := t.TempDir()

	c, rec := multipartCtx(t, http.MethodPost,
		map[string]string{"title": "t", "description": "d"}, "payload.exe")
	h := NewAnnouncementHandler(dir)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported image type")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// A replacement image must not stay on disk when persisting the update
// fails; only the previous image may remain.
func TestUpdateAnnouncementFailureRemovesNewImage(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.png"), []byte("old"), 0o644))

	a := models.Announcement{Title: "t", Description: "d", Image: "/uploads/old.png"}
	require.NoError(t, db.Create(&a).Error)

	require.NoError(t, db.Callback().Update().Before("gorm:update").
		Register("announcements_fail_update", func(tx *gorm.DB) {
			if tx.Statement.Table == "announcements" {
				_ = tx.AddError(errors.New("update refused"))
			}
		}))

	c, rec := multipartCtx(t, http.MethodPut,
		map[string]string{"title": "new title"}, "new.png")
	c.SetParamNames("id")
	c.SetParamValues(a.ID)
	h := NewAnnouncementHandler(dir)
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "old.png", entries[0].Name())

	var got models.Announcement
	require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
	assert.Equal(t, "/uploads/old.png", got.Image)
}
