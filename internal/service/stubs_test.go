package service

import (
	"context"
	"sort"
	"time"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/model"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductRepo is an in-memory ProductRepository for testing.
type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo(products ...model.Product) *stubProductRepo {
	r := &stubProductRepo{products: make(map[uint]*model.Product)}
	for i := range products {
		p := products[i]
		r.nextID++
		p.ID = r.nextID
		r.products[p.ID] = &p
	}
	return r
}

func (r *stubProductRepo) byName(name string) *model.Product {
	for _, p := range r.products {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if r.byName(p.Name) != nil {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindByName(_ context.Context, name string) (*model.Product, error) {
	p := r.byName(name)
	if p == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, id uint, name, unit string, price decimal.Decimal, stock int) (int64, error) {
	p, ok := r.products[id]
	if !ok {
		return 0, nil
	}
	if other := r.byName(name); other != nil && other.ID != id {
		return 0, gorm.ErrDuplicatedKey
	}
	p.Name, p.Unit, p.Price, p.Stock = name, unit, price, stock
	return 1, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) CountLowStock(_ context.Context, threshold int) (int64, error) {
	var count int64
	for _, p := range r.products {
		if p.Stock <= threshold {
			count++
		}
	}
	return count, nil
}

func (r *stubProductRepo) DecrementStockTx(_ *gorm.DB, id uint, qty int) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// stubOrderRepo is an in-memory OrderRepository for testing.
// forcedCollisions makes the first N uniqueness probes report a hit, to
// exercise the order-number retry loop.
type stubOrderRepo struct {
	orders           []model.Order
	nextID           uint
	forcedCollisions int
	existsProbes     int
}

func newStubOrderRepo() *stubOrderRepo { return &stubOrderRepo{} }

func (r *stubOrderRepo) CreateTx(_ context.Context, _ *gorm.DB, o *model.Order) error {
	r.nextID++
	o.ID = r.nextID
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}
	r.orders = append(r.orders, *o)
	return nil
}

func (r *stubOrderRepo) ExistsByNumberTx(_ *gorm.DB, number string) (bool, error) {
	r.existsProbes++
	if r.existsProbes <= r.forcedCollisions {
		return true, nil
	}
	for _, o := range r.orders {
		if o.OrderNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubOrderRepo) List(_ context.Context, page, perPage int) ([]model.Order, int64, error) {
	sorted := make([]model.Order, len(r.orders))
	copy(sorted, r.orders)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].OrderDate.After(sorted[j].OrderDate) })

	total := int64(len(sorted))
	offset := (page - 1) * perPage
	if offset >= len(sorted) {
		return nil, total, nil
	}
	end := offset + perPage
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], total, nil
}

func (r *stubOrderRepo) CountItemsByProductName(_ context.Context, name string) (int64, error) {
	var count int64
	for _, o := range r.orders {
		for _, it := range o.Items {
			if it.ProductName == name {
				count++
			}
		}
	}
	return count, nil
}

func (r *stubOrderRepo) Stats(_ context.Context) (*repository.OrderStats, error) {
	stats := &repository.OrderStats{}
	today := time.Now().Truncate(24 * time.Hour)
	for _, o := range r.orders {
		total, _ := o.Total.Float64()
		stats.TotalOrders++
		stats.TotalRevenue += total
		if !o.OrderDate.Before(today) {
			stats.TodayOrders++
			stats.TodayRevenue += total
		}
	}
	return stats, nil
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

var _ repository.OrderRepository = (*stubOrderRepo)(nil)
