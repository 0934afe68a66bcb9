package database

import (
	"fmt"

	"alexis/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedOptions controls the first-run admin account.
type SeedOptions struct {
	AdminUsername string
	AdminPassword string
}

// PasswordHasher turns a plaintext password into a storable hash.
type PasswordHasher func(plaintext string) (string, error)

// Seed fills each empty collection with the default catalog. A collection
// that already holds rows is never touched, so Seed can run on every start.
func Seed(db *gorm.DB, opts SeedOptions, hash PasswordHasher, log *zap.Logger) error {
	steps := []struct {
		name  string
		model any
		rows  func() (any, error)
	}{
		{"cars", &models.Car{}, func() (any, error) {
			rows := seedCars()
			return &rows, nil
		}},
		{"services", &models.ServiceItem{}, func() (any, error) {
			rows := seedServices()
			return &rows, nil
		}},
		{"brands", &models.TyreBrand{}, func() (any, error) {
			rows := seedBrands()
			return &rows, nil
		}},
		{"tyres", &models.TyreProduct{}, func() (any, error) {
			rows := seedTyres()
			return &rows, nil
		}},
		{"users", &models.User{}, func() (any, error) {
			hashed, err := hash(opts.AdminPassword)
			if err != nil {
				return nil, fmt.Errorf("failed to hash admin password: %w", err)
			}
			return &models.User{Username: opts.AdminUsername, Password: hashed}, nil
		}},
	}

	for _, step := range steps {
		var count int64
		if err := db.Model(step.model).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count %s: %w", step.name, err)
		}
		if count > 0 {
			continue
		}
		rows, err := step.rows()
		if err != nil {
			return err
		}
		if err := db.Create(rows).Error; err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.name, err)
		}
		log.Info("Seeded collection", zap.String("collection", step.name))
	}

	for _, setting := range seedSettings() {
		var count int64
		if err := db.Model(&models.Setting{}).Where("key = ?", setting.Key).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count setting %s: %w", setting.Key, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&setting).Error; err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", setting.Key, err)
		}
		log.Info("Seeded setting", zap.String("key", setting.Key))
	}

	return nil
}

func seedCars() []models.Car {
	return []models.Car{
		{
			Model: "Audi RS6", Year: 2024, Engine: "4.0L V8 Twin Turbo", Price: 108000,
			Image: "https://picsum.photos/seed/audi/800/600", Mileage: 1500, Transmission: "Automatic",
			Description: "The ultimate estate car.", Features: []string{"Ceramic Brakes", "Pan Roof"},
		},
		{
			Model: "BMW M4", Year: 2023, Engine: "3.0L Twin Turbo", Price: 75000,
			Image: "https://picsum.photos/seed/bmw/800/600", Mileage: 5000, Transmission: "Automatic",
			Description: "Track ready performance.", Features: []string{"Carbon Pack", "Head-up Display"},
		},
	}
}

func seedServices() []models.ServiceItem {
	return []models.ServiceItem{
		{Name: "Car Tyres", Description: "Premium fitting."},
		{Name: "Servicing", Description: "Full & Interim."},
	}
}

func seedBrands() []models.TyreBrand {
	return []models.TyreBrand{{Name: "Michelin"}, {Name: "Pirelli"}, {Name: "Continental"}, {Name: "Goodyear"}}
}

func seedTyres() []models.TyreProduct {
	offer := func(v float64) *float64 { return &v }
	return []models.TyreProduct{
		{
			Brand: "Michelin", Model: "Pilot Sport 5", Size: "225/40 R18", Price: 145, OfferPrice: offer(135),
			Quantity: 12, Category: "Premium", Image: "https://picsum.photos/seed/michelin/300/300",
			Specs: models.TyreSpecs{Fuel: "C", Wet: "A", Noise: 72},
		},
		{
			Brand: "Pirelli", Model: "P Zero", Size: "255/35 R19", Price: 180, OfferPrice: offer(165),
			Quantity: 8, Category: "Premium", Image: "https://picsum.photos/seed/pirelli/300/300",
			Specs: models.TyreSpecs{Fuel: "D", Wet: "A", Noise: 71},
		},
		{
			Brand: "Budget", Model: "RoadKing", Size: "205/55 R16", Price: 55,
			Quantity: 20, Category: "Budget", Image: "https://picsum.photos/seed/budget/300/300",
			Specs: models.TyreSpecs{Fuel: "E", Wet: "C", Noise: 74},
		},
	}
}

func seedSettings() []models.Setting {
	return []models.Setting{
		{
			Key: "companyInfo",
			Value: map[string]any{
				"contact": map[string]any{
					"email":    "alexisautosltd@gmail.com",
					"phone":    "+44 7918 479222",
					"whatsapp": "+44 7450 242180",
				},
				"address": map[string]any{
					"lines": []any{"Unit C5 Cumberland Trading Estate", "Loughborough", "LE11 5DF"},
				},
				"openingHours": []any{
					map[string]any{"day": "Mon - Fri", "hours": "09:00 - 18:00"},
					map[string]any{"day": "Sat", "hours": "09:00 - 16:00"},
				},
				"facilities": []any{"Wifi", "Waiting Area"},
			},
		},
		{
			Key:   "banner",
			Value: map[string]any{"active": false, "reason": ""},
		},
	}
}
