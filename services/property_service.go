package services

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"estate-listing-service/config"
	"estate-listing-service/models"

	"gorm.io/gorm"
)

// ErrPropertyNotFound 房源不存在
var ErrPropertyNotFound = errors.New("房源不存在")

// ErrImageNotFound 房源图片不存在
var ErrImageNotFound = errors.New("房源图片不存在")

// PropertyFilter 房源列表的过滤条件
type PropertyFilter struct {
	Category string // 类别精确匹配
	Status   string // 状态精确匹配
	Search   string // 标题/城市/地址 模糊匹配
}

// InterfacePropertyService 定义房源服务接口
type InterfacePropertyService interface {
	GetAllProperties(filter PropertyFilter) ([]models.Property, error)
	GetPropertyByID(id uint) (*models.Property, error)
	CreateProperty(property *models.Property) error
	UpdateProperty(id uint, updates map[string]interface{}) (*models.Property, error)
	DeleteProperty(id uint) error
	AddImage(propertyID uint, imagePath string) (*models.PropertyImage, error)
	DeleteImage(propertyID, imageID uint) error
}

// PropertyService 提供房源相关的服务
type PropertyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPropertyService 创建一个新的房源服务
func NewPropertyService(db *gorm.DB, cfg *config.Config) InterfacePropertyService {
	return &PropertyService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllProperties 获取房源列表，支持类别、状态过滤和关键字搜索，按创建时间倒序
func (s *PropertyService) GetAllProperties(filter PropertyFilter) ([]models.Property, error) {
	query := s.DB.Model(&models.Property{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		// 对标题、城市、地址做不区分大小写的子串匹配
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(city) LIKE LOWER(?) OR LOWER(address) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	var properties []models.Property
	if err := query.Preload("Images").Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, err
	}

	return properties, nil
}

// 2. GetPropertyByID 根据ID获取房源，包含图片列表
func (s *PropertyService) GetPropertyByID(id uint) (*models.Property, error) {
	var property models.Property
	if err := s.DB.Preload("Images").First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	return &property, nil
}

// 3. CreateProperty 创建新房源
func (s *PropertyService) CreateProperty(property *models.Property) error {
	// 未指定状态时默认在售
	if property.Status == "" {
		property.Status = models.PropertyStatusAvailable
	}

	return s.DB.Create(property).Error
}

// 4. UpdateProperty 部分更新房源，只修改显式给出的字段
func (s *PropertyService) UpdateProperty(id uint, updates map[string]interface{}) (*models.Property, error) {
	property, err := s.GetPropertyByID(id)
	if err != nil {
		return nil, err
	}

	// 空变更集也要推进 updated_at
	if len(updates) == 0 {
		updates = map[string]interface{}{"updated_at": time.Now()}
	}

	if err := s.DB.Model(property).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新获取更新后的房源信息
	return s.GetPropertyByID(id)
}

// 5. DeleteProperty 删除房源：先删数据库行（图片行、咨询随之删除），再尽力清理磁盘上的图片文件。
// 文件删除失败不回滚，残留文件由定时清理任务兜底。
func (s *PropertyService) DeleteProperty(id uint) error {
	property, err := s.GetPropertyByID(id)
	if err != nil {
		return err
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Enquiry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Property{}, id).Error
	}); err != nil {
		return err
	}

	for _, img := range property.Images {
		filePath := filepath.Join(s.Config.UploadDir, filepath.Base(img.ImagePath))
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			config.Warning("删除房源图片文件失败: %s: %v", filePath, err)
		}
	}

	return nil
}

// 6. AddImage 为房源新增一条图片记录；房源尚无主图时第一张上传的图片成为主图
func (s *PropertyService) AddImage(propertyID uint, imagePath string) (*models.PropertyImage, error) {
	if _, err := s.GetPropertyByID(propertyID); err != nil {
		return nil, err
	}

	var primaryCount int64
	if err := s.DB.Model(&models.PropertyImage{}).
		Where("property_id = ? AND is_primary = ?", propertyID, true).
		Count(&primaryCount).Error; err != nil {
		return nil, err
	}

	image := &models.PropertyImage{
		PropertyID: propertyID,
		ImagePath:  imagePath,
		IsPrimary:  primaryCount == 0,
	}

	if err := s.DB.Create(image).Error; err != nil {
		return nil, err
	}

	return image, nil
}

// 7. DeleteImage 按 (房源ID, 图片ID) 删除图片；文件不存在时容忍，不视为错误。
// 主图被删除后不重新选举主图，与既有行为保持一致。
func (s *PropertyService) DeleteImage(propertyID, imageID uint) error {
	var image models.PropertyImage
	if err := s.DB.Where("id = ? AND property_id = ?", imageID, propertyID).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}

	filePath := filepath.Join(s.Config.UploadDir, filepath.Base(image.ImagePath))
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return err
	}

	return s.DB.Delete(&image).Error
}
