package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"tourmate/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler serves image upload endpoints backed by the storage service.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// allowedFolders defines permitted destination folders for image uploads.
var allowedFolders = map[string]bool{
	"destinations": true,
	"hotels":       true,
}

// UploadImageHandler handles POST /api/uploads/image. The multipart form carries
// the file plus a "folder" field selecting the target collection.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	if h.StorageSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	folder := c.PostForm("folder")
	if !allowedFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder; allowed values are 'destinations' and 'hotels'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, "images/"+folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c.Request.Context(), publicID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"publicId":    publicID,
		"downloadURL": downloadURL,
	})
}

// DeleteImageHandler handles DELETE /api/uploads/image/:publicId.
func (h *StorageHandler) DeleteImageHandler(c *gin.Context) {
	if h.StorageSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	publicID := strings.TrimPrefix(c.Param("publicId"), "/")
	if err := h.StorageSvc.DeleteFile(c.Request.Context(), publicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}
