package model

import (
	"time"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Pessoa{},
		&Recado{},
	)
}

// Model is the embedded base for all entities. Rows are hard-deleted: a
// soft-deleted pessoa would keep holding its unique email.
type Model struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement:true" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
