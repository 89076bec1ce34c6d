package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deviill007/ShakeHubInShop/services"
)

type UploadController struct {
	Service *services.UploadService
}

func NewUploadController(svc *services.UploadService) *UploadController {
	return &UploadController{Service: svc}
}

// POST /api/upload
func (ctl *UploadController) Upload(c *gin.Context) {
	// Older admin builds posted the file under "file".
	fh, err := c.FormFile("image")
	if err != nil {
		fh, err = c.FormFile("file")
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	url, err := ctl.Service.Upload(c.Request.Context(), f, fh.Filename)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
