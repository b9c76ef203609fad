package model

import (
	"time"
)

// Recado is a directed note between two pessoas. De and Para are fixed at
// creation; only Texto and Lido change afterwards.
type Recado struct {
	Model
	Texto  string `gorm:"type:varchar(255);not null" json:"texto"`
	DeID   uint64 `gorm:"not null;index" json:"deId"`
	De     Pessoa `gorm:"foreignKey:DeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"de"`
	ParaID uint64 `gorm:"not null;index" json:"paraId"`
	Para   Pessoa `gorm:"foreignKey:ParaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"para"`
	Lido   bool   `gorm:"not null;default:false" json:"lido"`
	// Data is the send timestamp, set at creation.
	Data time.Time `gorm:"not null" json:"data"`
}
