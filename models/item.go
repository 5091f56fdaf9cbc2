package models

// Item 演示用的通用条目，无业务含义
type Item struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName 指定表名
func (Item) TableName() string {
	return "items"
}
