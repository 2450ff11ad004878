package domain

import (
	"time"
)

// License is a per-user entitlement record, independent of the restaurant's
// own active/expiry flags. A nil expiry date means the license never expires.
type License struct {
	ID         string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID     string     `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	ExpiryDate *time.Time `gorm:"type:date" json:"expiry_date,omitempty"`
	CreatedAt  time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	User       *User      `gorm:"foreignKey:UserID" json:"-"`
}

func (License) TableName() string {
	return "licenses"
}

// IsActiveNow reports whether the license is valid, inclusive of the expiry
// day itself.
func (l *License) IsActiveNow(now time.Time) bool {
	if l.ExpiryDate == nil {
		return true
	}
	return !dateOnly(*l.ExpiryDate).Before(dateOnly(now))
}
