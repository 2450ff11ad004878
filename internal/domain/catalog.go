package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType classifies a menu item for dietary filtering on the public menu.
type ItemType string

const (
	ItemTypeVeg    ItemType = "VEG"
	ItemTypeNonVeg ItemType = "NONVEG"
	ItemTypeOther  ItemType = "OTHER"
)

var ValidItemTypes = []ItemType{ItemTypeVeg, ItemTypeNonVeg, ItemTypeOther}

func IsValidItemType(t string) bool {
	for _, v := range ValidItemTypes {
		if t == string(v) {
			return true
		}
	}
	return false
}

// Category names are unique per restaurant, not globally. Only active
// categories are visible on the public menu.
type Category struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	RestaurantID string    `gorm:"type:uuid;not null;uniqueIndex:idx_categories_restaurant_name" json:"restaurant_id"`
	Name         string    `gorm:"type:text;not null;uniqueIndex:idx_categories_restaurant_name" json:"name"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// MenuItem belongs to at most one category; deleting the category detaches
// items instead of deleting them. Only available items appear on the public
// menu. Prices are fixed-point with two decimals.
type MenuItem struct {
	ID           string          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	RestaurantID string          `gorm:"type:uuid;not null;uniqueIndex:idx_menu_items_restaurant_name" json:"restaurant_id"`
	CategoryID   *string         `gorm:"type:uuid" json:"category_id,omitempty"`
	Name         string          `gorm:"type:text;not null;uniqueIndex:idx_menu_items_restaurant_name" json:"name"`
	Type         string          `gorm:"type:text;not null;default:'VEG'" json:"type"`
	Price        decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"price"`
	IsAvailable  bool            `gorm:"not null;default:true" json:"is_available"`
	Description  string          `gorm:"type:text" json:"description"`
	CreatedAt    time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Category     *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
