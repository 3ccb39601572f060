package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/apierror"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/dto"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/model"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/repository"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxOrderNumberAttempts bounds the random collision-retry loop. The space is
// 90000 values, so ten rolls losing to collisions means the table is close to
// exhausted; after that the fallback identifier takes over.
const maxOrderNumberAttempts = 10

type OrderService interface {
	PlaceOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	ListOrders(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error)
}

type orderService struct {
	repo           repository.OrderRepository
	products       repository.ProductRepository
	defaultPerPage int
}

func NewOrderService(repo repository.OrderRepository, products repository.ProductRepository, defaultPerPage int) OrderService {
	if defaultPerPage < 1 {
		defaultPerPage = 10
	}
	return &orderService{repo: repo, products: products, defaultPerPage: defaultPerPage}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── PlaceOrder ────────────────────────────────────────────────────────────────
// The order transaction:
//  1. Validate payload shape.
//  2. Pre-flight (outside TX): resolve each item by product name, check stock
//     against the current snapshot, price the line, accumulate the total.
//  3. BEGIN TX: allocate a unique order number, insert the order with its
//     items, then decrement each product's stock with an atomic conditional
//     update (stock = stock - qty WHERE stock >= qty). A rejected decrement
//     aborts and rolls back the whole transaction, so concurrent orders — and
//     duplicate lines for the same product — can never oversell.
//  4. COMMIT and return order number + total.

func (s *orderService) PlaceOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if err := validation.Order(&req); err != nil {
		return nil, err
	}

	type resolvedItem struct {
		productID uint
		name      string
		quantity  int
		price     decimal.Decimal
	}

	var resolved []resolvedItem
	total := decimal.Zero

	for _, item := range req.Items {
		p, err := s.products.FindByName(ctx, item.ProductName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NewNotFound(fmt.Sprintf("Product '%s' not found", item.ProductName))
			}
			return nil, err
		}
		if p.Stock < item.Quantity {
			return nil, apierror.NewInsufficientStock(fmt.Sprintf(
				"Insufficient stock for '%s'. Available: %d, Requested: %d",
				item.ProductName, p.Stock, item.Quantity))
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		resolved = append(resolved, resolvedItem{
			productID: p.ID,
			name:      item.ProductName,
			quantity:  item.Quantity,
			price:     p.Price,
		})
	}

	var order model.Order
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		orderNumber, err := s.allocateOrderNumber(tx)
		if err != nil {
			return err
		}

		order = model.Order{
			OrderNumber:  orderNumber,
			CustomerName: req.CustomerName,
			Total:        total,
			Status:       "completed",
		}
		for _, r := range resolved {
			order.Items = append(order.Items, model.OrderItem{
				ProductName: r.name,
				Quantity:    r.quantity,
				Price:       r.price,
			})
		}
		if err := s.repo.CreateTx(ctx, tx, &order); err != nil {
			return err
		}

		for _, r := range resolved {
			ok, err := s.products.DecrementStockTx(tx, r.productID, r.quantity)
			if err != nil {
				return err
			}
			if !ok {
				// Stock moved between the pre-flight check and the decrement
				// (concurrent order, or a duplicate line for the same product).
				return apierror.NewInsufficientStock(fmt.Sprintf(
					"Insufficient stock for '%s'. Requested: %d", r.name, r.quantity))
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().Str("order_number", order.OrderNumber).Str("total", total.String()).Msg("order created")

	return &dto.CreateOrderResponse{
		Message:     "Order created successfully",
		OrderNumber: order.OrderNumber,
		Total:       total,
	}, nil
}

// allocateOrderNumber rolls "ORD" + 5 random decimal digits and checks the
// candidate against existing rows inside the insert transaction. The retry
// loop is bounded; if every roll collides the fallback is a UUID-derived
// identifier, which trades the human-friendly format for guaranteed progress.
// The random source is not cryptographic — uniqueness, not unpredictability,
// is the requirement here, and the unique index backstops both paths.
func (s *orderService) allocateOrderNumber(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		candidate := fmt.Sprintf("ORD%d", rand.Intn(90000)+10000)
		exists, err := s.repo.ExistsByNumberTx(tx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	u := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD" + u[:8], nil
}

// ── ListOrders ────────────────────────────────────────────────────────────────

// ListOrders returns a page of orders, newest first, each with its lines
// summarised as "productA x qty, productB x qty".
func (s *orderService) ListOrders(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = s.defaultPerPage
	}

	orders, total, err := s.repo.List(ctx, filter.Page, filter.PerPage)
	if err != nil {
		return nil, err
	}

	items := make([]dto.OrderListItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.OrderListItem{
			ID:           o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			Total:        o.Total,
			OrderDate:    o.OrderDate.Format("2006-01-02T15:04:05Z"),
			Status:       o.Status,
			Items:        summariseItems(o.Items),
		})
	}

	return &dto.OrderListResponse{
		Orders:  items,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

func summariseItems(items []model.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x %d", it.ProductName, it.Quantity))
	}
	return strings.Join(parts, ", ")
}
