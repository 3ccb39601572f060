package service

import (
	"context"
	"errors"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/apierror"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/dto"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/model"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/repository"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/validation"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProductService defines the business logic contract for the product catalogue.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Add(ctx context.Context, req dto.SaveProductRequest) error
	Update(ctx context.Context, id uint, req dto.SaveProductRequest) error
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo   repository.ProductRepository
	orders repository.OrderRepository
}

func NewProductService(repo repository.ProductRepository, orders repository.OrderRepository) ProductService {
	return &productService{repo: repo, orders: orders}
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

func (s *productService) Add(ctx context.Context, req dto.SaveProductRequest) error {
	if err := validation.Product(&req); err != nil {
		return err
	}

	p := &model.Product{
		Name:  req.Name,
		Unit:  req.Unit,
		Price: req.Price,
		Stock: req.Stock,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apierror.NewDuplicate("Product with this name already exists")
		}
		return err
	}

	log.Info().Str("name", p.Name).Msg("product added")
	return nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.SaveProductRequest) error {
	if err := validation.Product(&req); err != nil {
		return err
	}

	rows, err := s.repo.Update(ctx, id, req.Name, req.Unit, req.Price, req.Stock)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apierror.NewDuplicate("Product with this name already exists")
		}
		return err
	}
	if rows == 0 {
		return apierror.NewNotFound("Product not found")
	}

	log.Info().Uint("id", id).Msg("product updated")
	return nil
}

// Delete removes a product unless any order line references it by name.
// Historical orders keep the denormalised name, so a product that has ever
// been ordered must stay.
func (s *productService) Delete(ctx context.Context, id uint) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("Product not found")
		}
		return err
	}

	ordered, err := s.orders.CountItemsByProductName(ctx, p.Name)
	if err != nil {
		return err
	}
	if ordered > 0 {
		return apierror.NewConflict("Cannot delete product that has been ordered")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Uint("id", id).Str("name", p.Name).Msg("product deleted")
	return nil
}
