package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/dto"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const statsCacheKey = "stats:dashboard"

type StatsService interface {
	Dashboard(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	rdb       *redis.Client // nil disables caching (unit test mode)
	threshold int
	cacheTTL  time.Duration
}

func NewStatsService(orders repository.OrderRepository, products repository.ProductRepository,
	rdb *redis.Client, lowStockThreshold int, cacheTTL time.Duration) StatsService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 10
	}
	return &statsService{
		orders:    orders,
		products:  products,
		rdb:       rdb,
		threshold: lowStockThreshold,
		cacheTTL:  cacheTTL,
	}
}

// Dashboard computes the aggregate counters, with a short-lived redis cache in
// front. Cache failures are logged and ignored — the DB is the source of
// truth and must answer even when redis is down.
func (s *statsService) Dashboard(ctx context.Context) (*dto.StatsResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var resp dto.StatsResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp, nil
			}
		}
	}

	orderStats, err := s.orders.Stats(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.products.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.products.CountLowStock(ctx, s.threshold)
	if err != nil {
		return nil, err
	}

	resp := &dto.StatsResponse{
		TotalOrders:      orderStats.TotalOrders,
		TotalRevenue:     orderStats.TotalRevenue,
		TodayOrders:      orderStats.TodayOrders,
		TodayRevenue:     orderStats.TodayRevenue,
		TotalProducts:    totalProducts,
		LowStockProducts: lowStock,
	}

	if s.rdb != nil && s.cacheTTL > 0 {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, statsCacheKey, payload, s.cacheTTL).Err(); err != nil {
				log.Debug().Err(err).Msg("stats cache write failed")
			}
		}
	}

	return resp, nil
}
