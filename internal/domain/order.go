package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusServed     OrderStatus = "SERVED"
	StatusPaid       OrderStatus = "PAID"
	StatusCancelled  OrderStatus = "CANCELLED"
)

var ValidStatuses = []OrderStatus{
	StatusPending,
	StatusInProgress,
	StatusServed,
	StatusPaid,
	StatusCancelled,
}

func IsValidStatus(s string) bool {
	return slices.Contains(ValidStatuses, OrderStatus(s))
}

// IsTerminalStatus reports whether no further transitions are expected.
func IsTerminalStatus(s OrderStatus) bool {
	return s == StatusPaid || s == StatusCancelled
}

// statusRank orders the forward path PENDING → IN_PROGRESS → SERVED → PAID.
var statusRank = map[OrderStatus]int{
	StatusPending:    0,
	StatusInProgress: 1,
	StatusServed:     2,
	StatusPaid:       3,
}

// CanTransition reports whether moving from one status to another is legal
// under strict rules: status only moves forward along the lifecycle, and
// CANCELLED is reachable from any non-terminal state.
func CanTransition(from, to OrderStatus) bool {
	if IsTerminalStatus(from) {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// Order is always bound to the restaurant its table belonged to at creation
// time. The table reference is nulled, not cascaded, when a table is
// deleted. The total is derived from items on every read, never stored.
type Order struct {
	ID           string      `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	RestaurantID string      `gorm:"type:uuid;not null" json:"restaurant_id"`
	TableID      *string     `gorm:"type:uuid" json:"table_id,omitempty"`
	Status       OrderStatus `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	Notes        string      `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time   `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Table        *Table      `gorm:"foreignKey:TableID;constraint:OnDelete:SET NULL" json:"-"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string {
	return "orders"
}

// TotalAmount is the sum of qty × unit price over all items, computed with
// fixed-point arithmetic. The unit price is the snapshot taken at order
// creation, so the total is stable under later menu re-pricing.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].LineTotal())
	}
	return total
}

// OrderItem references a menu item that cannot be deleted while referenced.
// UnitPrice is snapshotted from the menu item when the order is created.
type OrderItem struct {
	ID         string          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OrderID    string          `gorm:"type:uuid;not null" json:"order_id"`
	MenuItemID string          `gorm:"type:uuid;not null" json:"menu_item_id"`
	Qty        int             `gorm:"not null;default:1;check:qty > 0" json:"qty"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"unit_price"`
	CreatedAt  time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	MenuItem   *MenuItem       `gorm:"foreignKey:MenuItemID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// OrderFilter narrows staff order listings. RestaurantID is filled from the
// caller's tenant scope, never from request input.
type OrderFilter struct {
	RestaurantID string      `json:"restaurant_id"`
	TableID      string      `json:"table_id"`
	Status       OrderStatus `json:"status"`
	StartTime    time.Time   `json:"start_time"`
	EndTime      time.Time   `json:"end_time"`
	Page         int         `json:"page"`
	PageSize     int         `json:"page_size"`
	Limit        int         `json:"limit"`
	Offset       int         `json:"offset"`
}
