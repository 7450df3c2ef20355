package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the shared active/inactive flag carried by most resources.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Base holds the identity and timestamps every persisted entity carries.
type Base struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// GetID returns the entity identifier.
func (b Base) GetID() uuid.UUID {
	return b.ID
}

// All lists every model migrated by the server and the seed command.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Course{},
		&Book{},
		&EBook{},
		&Topic{},
		&Section{},
		&SubTopic{},
		&Class{},
		&Address{},
		&Order{},
		&Subscription{},
		&Coupon{},
		&Notification{},
		&Banner{},
		&SeoURL{},
		&Series{},
		&Instruction{},
		&Question{},
	}
}
