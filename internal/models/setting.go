package models

// Setting is a keyed JSON document such as companyInfo or banner.
type Setting struct {
	Key   string         `json:"key" gorm:"primaryKey;type:varchar(100)"`
	Value map[string]any `json:"value" gorm:"type:text;serializer:json"`
}
