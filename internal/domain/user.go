package domain

import (
	"time"
)

type User struct {
	ID           string      `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	RestaurantID *string     `gorm:"type:uuid" json:"restaurant_id,omitempty"`
	Email        string      `gorm:"type:text;not null;unique" json:"email"`
	Name         string      `gorm:"type:text;not null" json:"name"`
	Roles        []string    `gorm:"type:jsonb;serializer:json;not null" json:"roles"`
	Active       bool        `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time   `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
