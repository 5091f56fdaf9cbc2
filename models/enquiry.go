package models

import "time"

// EnquiryStatus 咨询状态
type EnquiryStatus = string

const (
	EnquiryStatusNew       EnquiryStatus = "new"       // 新咨询
	EnquiryStatusContacted EnquiryStatus = "contacted" // 已联系
	EnquiryStatusQualified EnquiryStatus = "qualified" // 已确认意向
	EnquiryStatusClosed    EnquiryStatus = "closed"    // 已关闭
)

// Enquiry 表示针对某个房源提交的客户咨询
type Enquiry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone      string    `gorm:"type:varchar(20);not null" json:"phone"`
	Message    string    `gorm:"type:text" json:"message"`
	Status     string    `gorm:"type:varchar(50);default:'new';index" json:"status"` // new, contacted, qualified, closed
	CreatedAt  time.Time `gorm:"index:idx_enquiries_created_at,sort:desc" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 关联关系：咨询引用房源，不拥有房源
	Property *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"property,omitempty"`
}

// TableName 指定表名
func (Enquiry) TableName() string {
	return "enquiries"
}
