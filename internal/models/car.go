package models

// Car represents a vehicle listed for sale.
type Car struct {
	ID           uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	Model        string   `json:"model" validate:"required,max=200"`
	Year         int      `json:"year" validate:"gte=1886,lte=2100"`
	Engine       string   `json:"engine" validate:"required,max=200"`
	Price        float64  `json:"price" validate:"gte=0"`
	Image        string   `json:"image" validate:"omitempty,max=2048"`
	Sold         bool     `json:"sold"`
	Mileage      int      `json:"mileage" validate:"gte=0"`
	Transmission string   `json:"transmission" validate:"required,max=50"`
	Description  string   `json:"description" validate:"max=5000"`
	Features     []string `json:"features" gorm:"type:text;serializer:json" validate:"dive,max=200"`
}
