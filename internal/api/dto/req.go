package dto

import (
	"github.com/shopspring/decimal"
)

type CreateOrderItemRequest struct {
	ItemID string `json:"item_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Qty    int    `json:"qty" example:"2"`
}

type CreateOrderRequest struct {
	TableCode string                   `json:"table_code" binding:"required" example:"T1"`
	Items     []CreateOrderItemRequest `json:"items"`
	Notes     string                   `json:"notes" example:"no onions"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"IN_PROGRESS"`
}

type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required" example:"Starters"`
	IsActive *bool  `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

type CreateMenuItemRequest struct {
	Name        string          `json:"name" binding:"required" example:"Paneer Tikka"`
	CategoryID  *string         `json:"category_id"`
	Type        string          `json:"type" example:"VEG"`
	Price       decimal.Decimal `json:"price" binding:"required" example:"249.50"`
	IsAvailable *bool           `json:"is_available"`
	Description string          `json:"description"`
}

type UpdateMenuItemRequest struct {
	Name        *string          `json:"name"`
	CategoryID  *string          `json:"category_id"`
	Type        *string          `json:"type"`
	Price       *decimal.Decimal `json:"price"`
	IsAvailable *bool            `json:"is_available"`
	Description *string          `json:"description"`
}

type CreateTableRequest struct {
	Name string `json:"name" binding:"required" example:"Window 1"`
	Code string `json:"code" binding:"required" example:"T1"`
}

type UpdateTableRequest struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

type CreateRestaurantRequest struct {
	Name       string  `json:"name" binding:"required" example:"Spice Garden"`
	OwnerEmail string  `json:"owner_email" binding:"required" example:"owner@spicegarden.example"`
	OwnerName  string  `json:"owner_name" binding:"required" example:"A. Owner"`
	ExpiryDate *string `json:"expiry_date" example:"2026-12-31"`
}

type UpdateRestaurantRequest struct {
	Name       *string `json:"name"`
	IsActive   *bool   `json:"is_active"`
	ExpiryDate *string `json:"expiry_date" example:"2026-12-31"`
}

type UpsertConfigRequest struct {
	ServerIP string `json:"server_ip" binding:"required" example:"spicegarden.example"`
	SiteName string `json:"site_name" example:"Spice Garden"`
	Scheme   string `json:"scheme" example:"https"`
}

type UpsertLicenseRequest struct {
	ExpiryDate *string `json:"expiry_date" example:"2026-12-31"`
}
