package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/reservation-api/internal/models"
)

// GormSink stores each event as an AuditLog row.
type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		Action:    ev.Action,
		Entity:    ev.Entity,
		RequestID: ev.RequestID,
		Metadata:  metaJSON,
	}

	return s.db.Create(&row).Error
}
