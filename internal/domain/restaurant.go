package domain

import (
	"time"
)

type Restaurant struct {
	ID         string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name       string     `gorm:"type:text;not null" json:"name"`
	OwnerID    string     `gorm:"type:uuid;not null;uniqueIndex" json:"owner_id"`
	ExpiryDate *time.Time `gorm:"type:date" json:"expiry_date,omitempty"`
	IsActive   bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Owner      *User      `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// IsActiveNow reports whether the restaurant is currently usable: the manual
// flag must be set and the expiry date, when present, must not have passed.
// Expiry is inclusive of the expiry day itself.
func (r *Restaurant) IsActiveNow(now time.Time) bool {
	if !r.IsActive {
		return false
	}
	if r.ExpiryDate == nil {
		return true
	}
	return !dateOnly(*r.ExpiryDate).Before(dateOnly(now))
}

// RestaurantConfig holds per-restaurant settings used to build public QR
// target URLs. Exactly one row per restaurant; looked up by restaurant ID.
type RestaurantConfig struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	RestaurantID string    `gorm:"type:uuid;not null;uniqueIndex" json:"restaurant_id"`
	ServerIP     string    `gorm:"type:text;not null" json:"server_ip"`
	SiteName     string    `gorm:"type:text;not null;default:'QR Order'" json:"site_name"`
	Scheme       string    `gorm:"type:text;not null;default:'http'" json:"scheme"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (RestaurantConfig) TableName() string {
	return "restaurant_configs"
}

// dateOnly strips the time-of-day component so expiry checks compare
// calendar days regardless of zone.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
