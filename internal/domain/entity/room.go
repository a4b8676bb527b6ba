package entity

import (
	"time"

	"github.com/google/uuid"
)

// Room represents a consultation room where appointments take place
type Room struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Location  string    `gorm:"type:varchar(100)" json:"location,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}
