package dto

import (
	"time"

	"github.com/qrorder/qr-order-api/internal/domain"
)

// FromOrder converts an Order domain model, with items and table preloaded,
// to an OrderResponse. The total is recomputed from the item snapshots on
// every call; it is never cached.
func FromOrder(order *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i := range order.Items {
		items[i] = fromOrderItem(&order.Items[i])
	}

	resp := &OrderResponse{
		ID:          order.ID,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
		Items:       items,
		Notes:       order.Notes,
		TotalAmount: order.TotalAmount(),
	}
	if order.Table != nil {
		resp.Table = order.Table.Code
	}
	return resp
}

func FromOrders(orders []domain.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *FromOrder(&orders[i])
	}
	return responses
}

func fromOrderItem(item *domain.OrderItem) OrderItemResponse {
	resp := OrderItemResponse{
		ID:         item.ID,
		MenuItemID: item.MenuItemID,
		Qty:        item.Qty,
		UnitPrice:  item.UnitPrice,
		LineTotal:  item.LineTotal(),
	}
	if item.MenuItem != nil {
		resp.Name = item.MenuItem.Name
		price := item.MenuItem.Price
		resp.CurrentPrice = &price
	}
	return resp
}

func FromMenuItem(item *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		Type:        item.Type,
	}
}

func FromCategory(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		IsActive:  category.IsActive,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func FromCategories(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = FromCategory(&categories[i])
	}
	return responses
}

func FromCatalogItem(item *domain.MenuItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:          item.ID,
		CategoryID:  item.CategoryID,
		Name:        item.Name,
		Type:        item.Type,
		Price:       item.Price,
		IsAvailable: item.IsAvailable,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func FromCatalogItems(items []domain.MenuItem) []CatalogItemResponse {
	responses := make([]CatalogItemResponse, len(items))
	for i := range items {
		responses[i] = FromCatalogItem(&items[i])
	}
	return responses
}

func FromTable(table *domain.Table, targetURL string) TableResponse {
	return TableResponse{
		ID:          table.ID,
		Name:        table.Name,
		Code:        table.Code,
		QRImageKey:  table.QRImageKey,
		QRTargetURL: targetURL,
		CreatedAt:   table.CreatedAt,
		UpdatedAt:   table.UpdatedAt,
	}
}

func FromRestaurant(restaurant *domain.Restaurant, now time.Time) RestaurantResponse {
	return RestaurantResponse{
		ID:          restaurant.ID,
		Name:        restaurant.Name,
		OwnerID:     restaurant.OwnerID,
		ExpiryDate:  restaurant.ExpiryDate,
		IsActive:    restaurant.IsActive,
		IsActiveNow: restaurant.IsActiveNow(now),
		CreatedAt:   restaurant.CreatedAt,
		UpdatedAt:   restaurant.UpdatedAt,
	}
}

func FromRestaurants(restaurants []domain.Restaurant, now time.Time) []RestaurantResponse {
	responses := make([]RestaurantResponse, len(restaurants))
	for i := range restaurants {
		responses[i] = FromRestaurant(&restaurants[i], now)
	}
	return responses
}

func FromConfig(config *domain.RestaurantConfig) ConfigResponse {
	return ConfigResponse{
		RestaurantID: config.RestaurantID,
		ServerIP:     config.ServerIP,
		SiteName:     config.SiteName,
		Scheme:       config.Scheme,
	}
}

func FromLicense(license *domain.License, now time.Time) LicenseResponse {
	return LicenseResponse{
		UserID:     license.UserID,
		ExpiryDate: license.ExpiryDate,
		Active:     license.IsActiveNow(now),
	}
}
