package repository

import (
	"context"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/model"

	"gorm.io/gorm"
)

// OrderStats aggregates the order-side dashboard counters in one query.
type OrderStats struct {
	TotalOrders  int64
	TotalRevenue float64
	TodayOrders  int64
	TodayRevenue float64
}

type OrderRepository interface {
	// CreateTx persists an order with its items inside the given transaction.
	CreateTx(ctx context.Context, tx *gorm.DB, o *model.Order) error

	// ExistsByNumberTx checks order-number uniqueness inside the transaction
	// that will insert the row.
	ExistsByNumberTx(tx *gorm.DB, number string) (bool, error)

	List(ctx context.Context, page, perPage int) ([]model.Order, int64, error)

	// CountItemsByProductName reports how many order lines reference the
	// product by name (the soft reference used by the delete guard).
	CountItemsByProductName(ctx context.Context, name string) (int64, error)

	Stats(ctx context.Context) (*OrderStats, error)

	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) DB() *gorm.DB { return r.db }

func (r *orderRepo) CreateTx(ctx context.Context, tx *gorm.DB, o *model.Order) error {
	return tx.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) ExistsByNumberTx(tx *gorm.DB, number string) (bool, error) {
	var count int64
	err := tx.Model(&model.Order{}).Where("order_number = ?", number).Count(&count).Error
	return count > 0, err
}

func (r *orderRepo) List(ctx context.Context, page, perPage int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Order{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	err := q.Preload("Items").
		Order("order_date DESC").
		Offset(offset).Limit(perPage).
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepo) CountItemsByProductName(ctx context.Context, name string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Where("product_name = ?", name).Count(&count).Error
	return count, err
}

func (r *orderRepo) Stats(ctx context.Context) (*OrderStats, error) {
	var stats OrderStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)                                                        AS total_orders,
		       COALESCE(SUM(total), 0)                                         AS total_revenue,
		       COUNT(*) FILTER (WHERE DATE(order_date) = CURRENT_DATE)         AS today_orders,
		       COALESCE(SUM(total) FILTER (WHERE DATE(order_date) = CURRENT_DATE), 0) AS today_revenue
		FROM orders`).Scan(&stats).Error
	return &stats, err
}
