package models

import "time"

// MenuItem is one row of the local menu cache. The remote fetch replaces
// the whole table at once; rows are read-only for the rest of the session.
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       string    `gorm:"type:varchar(32);not null" json:"price"`
	Image       string    `gorm:"type:varchar(512)" json:"image"`
	Category    string    `gorm:"type:varchar(100);index" json:"category"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
