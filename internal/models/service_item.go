package models

// ServiceItem is a workshop service offered to customers.
type ServiceItem struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// TableName keeps the collection name used by the public API.
func (ServiceItem) TableName() string {
	return "services"
}
