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
	ErrProductOutOfStock = errors.New("product out of stock")
	ErrInsufficientStock = errors.New("requested quantity exceeds stock")
	ErrCartItemNotFound  = errors.New("cart item not found")
)

// ICartUseCase edits the persisted cart. Every operation returns the cart as saved.
//
// Line details (name, price, category, image) come from the catalog, never from the caller.

type ICartUseCase interface {
	GetCart(ctx context.Context) (entities.Cart, error)
	AddItem(ctx context.Context, productID string, quantity int) (entities.Cart, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, productID string) (entities.Cart, error)
	Clear(ctx context.Context) error
}

type CartUseCase struct {
	carts    interfaces.ICartRepository
	products interfaces.IProductRepository
	logger   *zap.Logger
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(carts interfaces.ICartRepository, products interfaces.IProductRepository, logger *zap.Logger) *CartUseCase {
	return &CartUseCase{carts: carts, products: products, logger: logger.Named("cart")}
}

func (u *CartUseCase) GetCart(ctx context.Context) (entities.Cart, error) {
	return u.carts.Load(ctx)
}

func (u *CartUseCase) AddItem(ctx context.Context, productID string, quantity int) (entities.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Cart{}, ErrInvalidProductID
	}

	products, err := u.products.List(ctx)
	if err != nil {
		return entities.Cart{}, err
	}
	i := findProduct(products, productID)
	if i < 0 {
		return entities.Cart{}, ErrProductNotFound
	}
	if !products[i].InStock() {
		return entities.Cart{}, ErrProductOutOfStock
	}

	cart, err := u.carts.Load(ctx)
	if err != nil {
		return entities.Cart{}, err
	}
	cart.AddItem(products[i].CartLine(), quantity)
	if err := checkStock(cart, products[i]); err != nil {
		return entities.Cart{}, err
	}
	if err := u.carts.Save(ctx, cart); err != nil {
		return entities.Cart{}, err
	}
	u.logger.Debug("item added", zap.String("product_id", productID), zap.Int("total_quantity", cart.TotalQuantity()))
	return cart, nil
}

// UpdateQuantity clamps quantity to [1, entities.MaxLineQuantity]. Lines whose product left
// the catalog are still editable; checkout reports them.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, productID string, quantity int) (entities.Cart, error) {
	return u.edit(ctx, productID, func(c *entities.Cart, id string) error {
		if !c.SetQuantity(id, quantity) {
			return ErrCartItemNotFound
		}
		products, err := u.products.List(ctx)
		if err != nil {
			return err
		}
		if i := findProduct(products, id); i >= 0 {
			return checkStock(*c, products[i])
		}
		return nil
	})
}

func (u *CartUseCase) RemoveItem(ctx context.Context, productID string) (entities.Cart, error) {
	return u.edit(ctx, productID, func(c *entities.Cart, id string) error {
		if !c.RemoveItem(id) {
			return ErrCartItemNotFound
		}
		return nil
	})
}

func (u *CartUseCase) Clear(ctx context.Context) error {
	return u.carts.Save(ctx, entities.Cart{})
}

func (u *CartUseCase) edit(ctx context.Context, productID string, apply func(*entities.Cart, string) error) (entities.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Cart{}, ErrInvalidProductID
	}
	cart, err := u.carts.Load(ctx)
	if err != nil {
		return entities.Cart{}, err
	}
	if err := apply(&cart, productID); err != nil {
		return entities.Cart{}, err
	}
	if err := u.carts.Save(ctx, cart); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

// checkStock rejects a cart whose line for p asks for more units than p has.
func checkStock(cart entities.Cart, p entities.Product) error {
	line, ok := cart.Line(p.ID)
	if ok && line.Quantity > p.Stock {
		return ErrInsufficientStock
	}
	return nil
}
