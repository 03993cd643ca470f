// Package model holds the GORM table mappings.
package model

import "time"

// KeyValueModel is the GORM-specific struct for the 'loyalty_kv' table.
// Each row is one persisted loyalty key.
type KeyValueModel struct {
	Key       string    `gorm:"column:key;type:varchar(255);primaryKey"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName explicitly sets the table name for GORM.
func (KeyValueModel) TableName() string {
	return "loyalty_kv"
}
