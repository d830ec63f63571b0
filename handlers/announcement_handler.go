package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/database"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/models"
)

type AnnouncementHandler struct {
	UploadDir string
}

func NewAnnouncementHandler(uploadDir string) *AnnouncementHandler {
	return &AnnouncementHandler{UploadDir: uploadDir}
}

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// saveImage stores the upload under a UUID filename and returns the public
// /uploads path.
func (h *AnnouncementHandler) saveImage(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExts[ext] {
		return "", echo.NewHTTPError(http.StatusBadRequest, "unsupported image type")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func (h *AnnouncementHandler) removeImage(publicPath string) {
	name := strings.TrimPrefix(publicPath, "/uploads/")
	if name == "" || name == publicPath {
		return
	}
	// best effort; a missing file is not an error
	_ = os.Remove(filepath.Join(h.UploadDir, name))
}

// GET /api/announcement (public), newest first
func (h *AnnouncementHandler) List(c echo.Context) error {
	var rows []models.Announcement
	if err := database.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to load announcements")
	}
	return respondOK(c, http.StatusOK, rows)
}

// POST /api/announcement (admin, multipart: title, description, image?)
func (h *AnnouncementHandler) Create(c echo.Context) error {
	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))

	errs := map[string]string{}
	if title == "" {
		errs["title"] = "required"
	}
	if description == "" {
		errs["description"] = "required"
	}
	if len(errs) > 0 {
		return respondValidation(c, errs, []string{"title", "description"})
	}

	a := models.Announcement{Title: title, Description: description}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		path, err := h.saveImage(file)
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				return respondErr(c, he.Code, "unsupported image type")
			}
			return respondErr(c, http.StatusInternalServerError, "failed to store image")
		}
		a.Image = path
	}

	if err := database.DB.Create(&a).Error; err != nil {
		h.removeImage(a.Image)
		return respondErr(c, http.StatusInternalServerError, "failed to save announcement")
	}
	return respondOK(c, http.StatusCreated, a)
}

// PUT /api/announcement/:id (admin, multipart; image replaces the old one)
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var a models.Announcement
	if err := database.DB.First(&a, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return respondErr(c, http.StatusNotFound, "announcement not found")
		}
		return respondErr(c, http.StatusInternalServerError, "failed to load announcement")
	}

	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		a.Title = title
	}
	if description := strings.TrimSpace(c.FormValue("description")); description != "" {
		a.Description = description
	}

	oldImage, newImage := "", ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		path, err := h.saveImage(file)
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				return respondErr(c, he.Code, "unsupported image type")
			}
			return respondErr(c, http.StatusInternalServerError, "failed to store image")
		}
		oldImage = a.Image
		newImage = path
		a.Image = path
	}

	if err := database.DB.Save(&a).Error; err != nil {
		// the replacement file must not outlive a failed update
		if newImage != "" {
			h.removeImage(newImage)
		}
		return respondErr(c, http.StatusInternalServerError, "failed to update announcement")
	}
	if oldImage != "" {
		h.removeImage(oldImage)
	}
	return respondOK(c, http.StatusOK, a)
}

// DELETE /api/announcement/:id (admin)
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	var a models.Announcement
	if err := database.DB.First(&a, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return respondErr(c, http.StatusNotFound, "announcement not found")
		}
		return respondErr(c, http.StatusInternalServerError, "failed to load announcement")
	}
	if err := database.DB.Delete(&a).Error; err != nil {
		return respondErr(c, http.StatusInternalServerError, "failed to delete announcement")
	}
	h.removeImage(a.Image)
	return respondOK(c, http.StatusOK, map[string]any{"deleted": true})
}
