package usecase

import (
	"context"
	"errors"
	"gemstore/internal/domain/entities"
	"gemstore/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidProduct   = errors.New("invalid product")
)

// ProductInput is the admin-editable part of a Product.
type ProductInput struct {
	Name        string
	Category    entities.Category
	Price       int64
	Image       string
	Description string
	Stock       int
	Featured    bool
}

func (in ProductInput) normalize() (ProductInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Image = strings.TrimSpace(in.Image)
	in.Description = strings.TrimSpace(in.Description)
	cat, ok := entities.ParseCategory(string(in.Category))
	if !ok || in.Name == "" || in.Price < 0 || in.Price > entities.MaxUnitPrice || in.Stock < 0 {
		return in, ErrInvalidProduct
	}
	in.Category = cat
	return in, nil
}

// IProductUseCase manages the admin catalog. An empty category lists everything.

type IProductUseCase interface {
	List(ctx context.Context, category entities.Category) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, in ProductInput) (entities.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	SetStock(ctx context.Context, id string, stock int) (entities.Product, error)
}

type ProductUseCase struct {
	repo   interfaces.IProductRepository
	clock  interfaces.IClock
	ids    interfaces.IIDGenerator
	logger *zap.Logger
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, clock interfaces.IClock, ids interfaces.IIDGenerator, logger *zap.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, clock: clock, ids: ids, logger: logger.Named("product")}
}

func (u *ProductUseCase) List(ctx context.Context, category entities.Category) ([]entities.Product, error) {
	products, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return products, nil
	}
	filtered := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	products, err := u.repo.List(ctx)
	if err != nil {
		return entities.Product{}, err
	}
	i := findProduct(products, id)
	if i < 0 {
		return entities.Product{}, ErrProductNotFound
	}
	return products[i], nil
}

func (u *ProductUseCase) Create(ctx context.Context, in ProductInput) (entities.Product, error) {
	in, err := in.normalize()
	if err != nil {
		return entities.Product{}, err
	}
	products, err := u.repo.List(ctx)
	if err != nil {
		return entities.Product{}, err
	}

	now := u.clock.Now()
	p := entities.Product{
		ID:          u.ids.NewID(),
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Image:       in.Image,
		Description: in.Description,
		Stock:       in.Stock,
		Featured:    in.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.repo.SaveAll(ctx, append(products, p)); err != nil {
		return entities.Product{}, err
	}
	u.logger.Info("product created", zap.String("product_id", p.ID), zap.String("category", string(p.Category)))
	return p, nil
}

func (u *ProductUseCase) Update(ctx context.Context, id string, in ProductInput) (entities.Product, error) {
	in, err := in.normalize()
	if err != nil {
		return entities.Product{}, err
	}
	return u.modify(ctx, id, func(p *entities.Product) {
		p.Name = in.Name
		p.Category = in.Category
		p.Price = in.Price
		p.Image = in.Image
		p.Description = in.Description
		p.Stock = in.Stock
		p.Featured = in.Featured
	})
}

func (u *ProductUseCase) SetStock(ctx context.Context, id string, stock int) (entities.Product, error) {
	if stock < 0 {
		return entities.Product{}, ErrInvalidProduct
	}
	return u.modify(ctx, id, func(p *entities.Product) { p.Stock = stock })
}

// Delete removes the product from the catalog. Carts and orders keep their own copies.
func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	products, err := u.repo.List(ctx)
	if err != nil {
		return err
	}
	i := findProduct(products, id)
	if i < 0 {
		return ErrProductNotFound
	}
	products = append(products[:i:i], products[i+1:]...)
	if err := u.repo.SaveAll(ctx, products); err != nil {
		return err
	}
	u.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}

func (u *ProductUseCase) modify(ctx context.Context, id string, apply func(*entities.Product)) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	products, err := u.repo.List(ctx)
	if err != nil {
		return entities.Product{}, err
	}
	i := findProduct(products, id)
	if i < 0 {
		return entities.Product{}, ErrProductNotFound
	}

	apply(&products[i])
	products[i].UpdatedAt = u.clock.Now()
	if err := u.repo.SaveAll(ctx, products); err != nil {
		return entities.Product{}, err
	}
	u.logger.Info("product updated", zap.String("product_id", id), zap.Int("stock", products[i].Stock))
	return products[i], nil
}

func findProduct(products []entities.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
