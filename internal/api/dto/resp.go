package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItemResponse is a single public menu entry.
type MenuItemResponse struct {
	ID          string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string          `json:"name" example:"Paneer Tikka"`
	Price       decimal.Decimal `json:"price" example:"249.50"`
	Description string          `json:"description"`
	Type        string          `json:"type" example:"VEG"`
}

// MenuCategoryResponse groups available items under an active category.
type MenuCategoryResponse struct {
	Category string             `json:"category" example:"Starters"`
	Items    []MenuItemResponse `json:"items"`
}

// OrderItemResponse exposes both the unit price snapshotted at order time
// and the item's current menu price.
type OrderItemResponse struct {
	ID           string           `json:"id"`
	MenuItemID   string           `json:"menu_item_id"`
	Name         string           `json:"name" example:"Paneer Tikka"`
	Qty          int              `json:"qty" example:"2"`
	UnitPrice    decimal.Decimal  `json:"unit_price" example:"249.50"`
	CurrentPrice *decimal.Decimal `json:"current_price,omitempty" example:"259.00"`
	LineTotal    decimal.Decimal  `json:"line_total" example:"499.00"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	Table       string              `json:"table,omitempty" example:"T1"`
	Status      string              `json:"status" example:"PENDING"`
	CreatedAt   time.Time           `json:"created_at"`
	Items       []OrderItemResponse `json:"items"`
	Notes       string              `json:"notes"`
	TotalAmount decimal.Decimal     `json:"total_amount" example:"499.00"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" example:"Starters"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CatalogItemResponse struct {
	ID          string          `json:"id"`
	CategoryID  *string         `json:"category_id,omitempty"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type TableResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" example:"Window 1"`
	Code        string    `json:"code" example:"T1"`
	QRImageKey  string    `json:"qr_image_key,omitempty"`
	QRTargetURL string    `json:"qr_target_url,omitempty" example:"http://spicegarden.example/menu/?table=T1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RestaurantResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	OwnerID     string     `json:"owner_id"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	IsActive    bool       `json:"is_active"`
	IsActiveNow bool       `json:"is_active_now"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ConfigResponse struct {
	RestaurantID string `json:"restaurant_id"`
	ServerIP     string `json:"server_ip"`
	SiteName     string `json:"site_name"`
	Scheme       string `json:"scheme"`
}

type LicenseResponse struct {
	UserID     string     `json:"user_id"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Active     bool       `json:"active"`
}
