package infra

import (
	"fmt"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create the products / orders / order_items tables idempotently, and inserts
// the sample catalogue when the products table is empty.
//
// TranslateError is enabled so that unique-constraint violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func NewDatabase(dsn string, seedSampleData bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if seedSampleData {
		if err := seedProducts(db); err != nil {
			return nil, fmt.Errorf("seed products: %w", err)
		}
	}

	return db, nil
}

// seedProducts inserts the fixed sample catalogue, only when the products
// table is empty. Re-running on a populated DB is a no-op.
func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []model.Product{
		{Name: "Rice", Unit: "kg", Price: decimal.NewFromFloat(50.00), Stock: 100},
		{Name: "Wheat Flour", Unit: "kg", Price: decimal.NewFromFloat(40.00), Stock: 80},
		{Name: "Sugar", Unit: "kg", Price: decimal.NewFromFloat(45.00), Stock: 60},
		{Name: "Cooking Oil", Unit: "litre", Price: decimal.NewFromFloat(120.00), Stock: 30},
		{Name: "Milk", Unit: "litre", Price: decimal.NewFromFloat(55.00), Stock: 25},
		{Name: "Bread", Unit: "piece", Price: decimal.NewFromFloat(25.00), Stock: 50},
		{Name: "Eggs", Unit: "piece", Price: decimal.NewFromFloat(8.00), Stock: 200},
		{Name: "Tomatoes", Unit: "kg", Price: decimal.NewFromFloat(30.00), Stock: 40},
		{Name: "Onions", Unit: "kg", Price: decimal.NewFromFloat(25.00), Stock: 50},
		{Name: "Potatoes", Unit: "kg", Price: decimal.NewFromFloat(20.00), Stock: 70},
	}
	if err := db.Create(&samples).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(samples)).Msg("sample products seeded")
	return nil
}
