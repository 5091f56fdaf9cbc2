package services

import (
	"errors"
	"time"

	"estate-listing-service/config"
	"estate-listing-service/models"

	"gorm.io/gorm"
)

// ErrEnquiryNotFound 咨询不存在
var ErrEnquiryNotFound = errors.New("咨询不存在")

// EnquiryFilter 咨询列表的过滤条件
type EnquiryFilter struct {
	PropertyID uint   // 房源ID精确匹配，0表示不过滤
	Status     string // 状态精确匹配
	Search     string // 姓名/邮箱/电话 模糊匹配
}

// InterfaceEnquiryService 定义咨询服务接口
type InterfaceEnquiryService interface {
	GetAllEnquiries(filter EnquiryFilter) ([]models.Enquiry, error)
	GetEnquiryByID(id uint) (*models.Enquiry, error)
	CreateEnquiry(enquiry *models.Enquiry) error
	UpdateEnquiry(id uint, updates map[string]interface{}) (*models.Enquiry, error)
	DeleteEnquiry(id uint) error
}

// EnquiryService 提供咨询相关的服务
type EnquiryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEnquiryService 创建一个新的咨询服务
func NewEnquiryService(db *gorm.DB, cfg *config.Config) InterfaceEnquiryService {
	return &EnquiryService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllEnquiries 获取咨询列表，支持房源、状态过滤和关键字搜索，按创建时间倒序
func (s *EnquiryService) GetAllEnquiries(filter EnquiryFilter) ([]models.Enquiry, error) {
	query := s.DB.Model(&models.Enquiry{})

	if filter.PropertyID != 0 {
		query = query.Where("property_id = ?", filter.PropertyID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		// 对姓名、邮箱、电话做不区分大小写的子串匹配
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(phone) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	var enquiries []models.Enquiry
	if err := query.Preload("Property").Order("created_at DESC").Find(&enquiries).Error; err != nil {
		return nil, err
	}

	return enquiries, nil
}

// 2. GetEnquiryByID 根据ID获取咨询，附带所属房源
func (s *EnquiryService) GetEnquiryByID(id uint) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	if err := s.DB.Preload("Property").First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}

	return &enquiry, nil
}

// 3. CreateEnquiry 创建新咨询，所引用的房源必须存在
func (s *EnquiryService) CreateEnquiry(enquiry *models.Enquiry) error {
	var property models.Property
	if err := s.DB.First(&property, enquiry.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}

	if enquiry.Status == "" {
		enquiry.Status = models.EnquiryStatusNew
	}

	if err := s.DB.Create(enquiry).Error; err != nil {
		return err
	}

	enquiry.Property = &property
	return nil
}

// 4. UpdateEnquiry 部分更新咨询，只修改显式给出的字段
func (s *EnquiryService) UpdateEnquiry(id uint, updates map[string]interface{}) (*models.Enquiry, error) {
	enquiry, err := s.GetEnquiryByID(id)
	if err != nil {
		return nil, err
	}

	// 空变更集也要推进 updated_at
	if len(updates) == 0 {
		updates = map[string]interface{}{"updated_at": time.Now()}
	}

	if err := s.DB.Model(enquiry).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetEnquiryByID(id)
}

// 5. DeleteEnquiry 删除咨询，无级联副作用
func (s *EnquiryService) DeleteEnquiry(id uint) error {
	enquiry, err := s.GetEnquiryByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(&models.Enquiry{}, enquiry.ID).Error
}
