package services

import (
	"os"
	"path/filepath"

	"estate-listing-service/config"
	"estate-listing-service/models"

	"gorm.io/gorm"
)

// InterfaceCleanupService 定义上传目录清理服务接口
type InterfaceCleanupService interface {
	RemoveOrphanFiles() (int, error)
}

// CleanupService 清理上传目录中不再被任何图片记录引用的文件。
// 文件先落盘、记录后提交，两者之间没有事务保证，中断会留下孤儿文件，
// 由该服务定期兜底回收。
type CleanupService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCleanupService 创建一个新的清理服务
func NewCleanupService(db *gorm.DB, cfg *config.Config) InterfaceCleanupService {
	return &CleanupService{
		DB:     db,
		Config: cfg,
	}
}

// RemoveOrphanFiles 扫描上传目录，删除数据库中没有对应图片记录的文件，返回删除数量
func (s *CleanupService) RemoveOrphanFiles() (int, error) {
	entries, err := os.ReadDir(s.Config.UploadDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	var paths []string
	if err := s.DB.Model(&models.PropertyImage{}).Pluck("image_path", &paths).Error; err != nil {
		return 0, err
	}

	// 图片记录存的是公开路径，按文件名比对
	referenced := make(map[string]bool, len(paths))
	for _, p := range paths {
		referenced[filepath.Base(p)] = true
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}

		filePath := filepath.Join(s.Config.UploadDir, entry.Name())
		if err := os.Remove(filePath); err != nil {
			config.Warning("清理孤儿文件失败: %s: %v", filePath, err)
			continue
		}
		removed++
	}

	return removed, nil
}
