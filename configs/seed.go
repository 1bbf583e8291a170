package configs

import (
	"log"

	"github.com/shopspring/decimal"
	"github.com/yunus-I/Hotel-App/entity"
)

// SeedDemoHotel creates the demo property and its menu. Only runs when
// SEED_DEMO=true; nothing at runtime falls back to this data.
func SeedDemoHotel() error {
	db := DB()

	var count int64
	db.Model(&entity.Hotel{}).Where("slug = ?", "hotel_001").Count(&count)
	if count > 0 {
		log.Println("demo hotel already seeded")
		return nil
	}

	hotel := entity.Hotel{Slug: "hotel_001", Name: "Grand Hotel", Location: "Demo Hotel"}
	if err := db.Create(&hotel).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{HotelID: hotel.Slug, ItemID: "1", Name: "Club Sandwich", Description: "Turkey, bacon, lettuce, tomato", Price: decimal.RequireFromString("12.99"), Category: "food", Available: true},
		{HotelID: hotel.Slug, ItemID: "2", Name: "Caesar Salad", Description: "Fresh romaine, croutons, parmesan", Price: decimal.RequireFromString("9.99"), Category: "food", Available: true},
		{HotelID: hotel.Slug, ItemID: "3", Name: "French Fries", Description: "Crispy golden fries", Price: decimal.RequireFromString("5.99"), Category: "food", Available: true},
		{HotelID: hotel.Slug, ItemID: "4", Name: "Orange Juice", Description: "Freshly squeezed", Price: decimal.RequireFromString("3.99"), Category: "drink", Available: true},
		{HotelID: hotel.Slug, ItemID: "5", Name: "Chocolate Cake", Description: "Rich chocolate dessert", Price: decimal.RequireFromString("7.99"), Category: "dessert", Available: true},
	}
	return db.Create(&items).Error
}
