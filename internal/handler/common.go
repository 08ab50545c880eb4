package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// Bind 依 Content-Type 綁定 JSON 或 multipart form
func Bind(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBind(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// SaveUploadedImage 將上傳的 image 檔存到 dir，回傳儲存路徑；
// 請求未附檔案時回傳 nil, nil
func SaveUploadedImage(c *gin.Context, dir string) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	path := filepath.Join(dir, filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return nil, err
	}
	return &path, nil
}
