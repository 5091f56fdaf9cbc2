package services

import (
	"errors"

	"estate-listing-service/config"
	"estate-listing-service/models"

	"gorm.io/gorm"
)

// ErrItemNotFound 条目不存在
var ErrItemNotFound = errors.New("条目不存在")

// InterfaceItemService 定义条目服务接口
type InterfaceItemService interface {
	GetAllItems() ([]models.Item, error)
	GetItemByID(id uint) (*models.Item, error)
	CreateItem(item *models.Item) error
	DeleteItem(id uint) error
}

// ItemService 提供条目相关的服务，仅作CRUD演示
type ItemService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewItemService 创建一个新的条目服务
func NewItemService(db *gorm.DB, cfg *config.Config) InterfaceItemService {
	return &ItemService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllItems 获取所有条目
func (s *ItemService) GetAllItems() ([]models.Item, error) {
	var items []models.Item
	if err := s.DB.Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// 2. GetItemByID 根据ID获取条目
func (s *ItemService) GetItemByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return &item, nil
}

// 3. CreateItem 创建新条目
func (s *ItemService) CreateItem(item *models.Item) error {
	return s.DB.Create(item).Error
}

// 4. DeleteItem 删除条目
func (s *ItemService) DeleteItem(id uint) error {
	item, err := s.GetItemByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(item).Error
}
