package domain

import "time"

// SettingKey is the closed set of configuration keys the application knows
// about. The backing table stays generic key/value, but unknown keys are
// rejected before they reach the store.
type SettingKey string

const (
	SettingWhatsAppTemplate SettingKey = "whatsapp_template"
)

var knownSettingKeys = map[SettingKey]bool{
	SettingWhatsAppTemplate: true,
}

func (k SettingKey) Valid() bool {
	return knownSettingKeys[k]
}

func (k SettingKey) String() string {
	return string(k)
}

type Setting struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Key         string    `gorm:"uniqueIndex;not null" json:"key"`
	Value       string    `gorm:"type:text" json:"value"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
