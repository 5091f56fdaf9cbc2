package models

import "time"

// PropertyCategory 房源类别
type PropertyCategory = string

const (
	CategoryLand        PropertyCategory = "land"        // 土地
	CategoryResidential PropertyCategory = "residential" // 住宅
	CategoryCommercial  PropertyCategory = "commercial"  // 商业
)

// PropertyStatus 房源状态
type PropertyStatus = string

const (
	PropertyStatusAvailable PropertyStatus = "available" // 在售
	PropertyStatusSold      PropertyStatus = "sold"      // 已售
	PropertyStatusRented    PropertyStatus = "rented"    // 已租
)

// Property 表示一条房源信息
type Property struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"type:varchar(50);not null;index" json:"category"` // land, residential, commercial
	Address     string  `gorm:"type:varchar(500)" json:"address"`
	City        string  `gorm:"type:varchar(100)" json:"city"`
	State       string  `gorm:"type:varchar(100)" json:"state"`
	Pincode     string  `gorm:"type:varchar(10)" json:"pincode"`
	Price       float64 `gorm:"not null" json:"price"`
	AreaSqft    *float64 `json:"area_sqft"`
	Status      string  `gorm:"type:varchar(50);default:'available';index" json:"status"` // available, sold, rented

	// 土地类房源专用字段
	LandType   string `gorm:"type:varchar(100)" json:"land_type"`
	SoilType   string `gorm:"type:varchar(100)" json:"soil_type"`
	RoadAccess string `gorm:"type:varchar(255)" json:"road_access"`
	Zoning     string `gorm:"type:varchar(100)" json:"zoning"`

	// 住宅类房源专用字段
	Bedrooms   *int   `json:"bedrooms"`
	Bathrooms  *int   `json:"bathrooms"`
	Floors     *int   `json:"floors"`
	Furnishing string `gorm:"type:varchar(50)" json:"furnishing"` // furnished, semi, unfurnished
	Parking    string `gorm:"type:varchar(100)" json:"parking"`
	Amenities  string `gorm:"type:text" json:"amenities"`

	// 商业类房源专用字段
	CommercialType string   `gorm:"type:varchar(100)" json:"commercial_type"`
	FloorNumber    *int     `json:"floor_number"`
	CarpetArea     *float64 `json:"carpet_area"`
	Pantry         bool     `gorm:"default:false" json:"pantry"`
	PowerBackup    bool     `gorm:"default:false" json:"power_backup"`

	CreatedAt time.Time `gorm:"index:idx_properties_created_at,sort:desc" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	Images []PropertyImage `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"images"`
}

// TableName 指定表名
func (Property) TableName() string {
	return "properties"
}

// PropertyImage 表示房源图片，随房源级联删除
type PropertyImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	ImagePath  string    `gorm:"type:varchar(500);not null" json:"image_path"`
	IsPrimary  bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName 指定表名
func (PropertyImage) TableName() string {
	return "property_images"
}
