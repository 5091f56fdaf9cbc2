package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// RandomImageName 为上传文件生成随机文件名，保留原扩展名，无扩展名时默认 .jpg
func RandomImageName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	return strings.ReplaceAll(uuid.New().String(), "-", "") + ext
}
