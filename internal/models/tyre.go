package models

// Stock limits. Quantities are kept inside 32-bit range so the clamped
// update can never overflow the integer column.
const (
	MaxTyreQuantity = 2147483647
	MaxStockDelta   = 1000000
)

// TyreSpecs holds the EU tyre label ratings.
type TyreSpecs struct {
	Fuel  string `json:"fuel" validate:"required,max=2"`
	Wet   string `json:"wet" validate:"required,max=2"`
	Noise int    `json:"noise" validate:"gte=0"`
}

// TyreProduct represents a tyre line held in stock.
type TyreProduct struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Brand      string    `json:"brand" validate:"required,max=100"`
	Model      string    `json:"model" validate:"required,max=100"`
	Size       string    `json:"size" validate:"required,max=50"`
	Price      float64   `json:"price" validate:"gte=0"`
	OfferPrice *float64  `json:"offerPrice" validate:"omitempty,gte=0"` // not checked against Price
	Quantity   int       `json:"quantity" validate:"gte=0,lte=2147483647"`
	Category   string    `json:"category" validate:"required,max=50"`
	Image      string    `json:"image" validate:"omitempty,max=2048"`
	Specs      TyreSpecs `json:"specs" gorm:"type:text;serializer:json"`
}

// TableName keeps the collection name used by the public API.
func (TyreProduct) TableName() string {
	return "tyres"
}

// TyreBrand is a tyre manufacturer shown in the brand filter.
type TyreBrand struct {
	Name string `json:"name" gorm:"primaryKey;type:varchar(100)" validate:"required,max=100"`
}

// TableName keeps the collection name used by the public API.
func (TyreBrand) TableName() string {
	return "brands"
}
