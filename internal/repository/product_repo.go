package repository

import (
	"context"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)

	// Update replaces name/unit/price/stock of the row with the given id and
	// reports the number of rows affected (zero means the id does not exist).
	Update(ctx context.Context, id uint, name, unit string, price decimal.Decimal, stock int) (int64, error)
	Delete(ctx context.Context, id uint) error

	CountAll(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)

	// DecrementStockTx atomically decrements stock inside the given
	// transaction, guarded by stock >= qty. Returns false when the guard
	// rejects the update (insufficient stock at commit time).
	DecrementStockTx(tx *gorm.DB, id uint, qty int) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productRepo) FindByName(ctx context.Context, name string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, id uint, name, unit string, price decimal.Decimal, stock int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":  name,
			"unit":  unit,
			"price": price,
			"stock": stock,
		})
	return res.RowsAffected, res.Error
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepo) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("stock <= ?", threshold).Count(&count).Error
	return count, err
}

func (r *productRepo) DecrementStockTx(tx *gorm.DB, id uint, qty int) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	return res.RowsAffected > 0, res.Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
