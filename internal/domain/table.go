package domain

import (
	"time"
)

// Table is a physical dining table. The code is the public routing key
// embedded in the QR target URL; it is unique per restaurant only, so two
// restaurants may legitimately use the same code string.
type Table struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	RestaurantID string    `gorm:"type:uuid;not null;uniqueIndex:idx_tables_restaurant_code" json:"restaurant_id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Code         string    `gorm:"type:text;not null;uniqueIndex:idx_tables_restaurant_code" json:"code"`
	QRImageKey   string    `gorm:"type:text" json:"qr_image_key"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Table) TableName() string {
	return "tables"
}
