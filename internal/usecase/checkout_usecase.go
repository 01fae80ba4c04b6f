package usecase

import (
	"context"
	"errors"
	"fmt"
	"gemstore/internal/domain/discount"
	"gemstore/internal/domain/entities"
	"gemstore/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ErrCheckoutRejected = errors.New("checkout rejected")

type ProblemCode string

const (
	ProblemEmptyCart            ProblemCode = "EMPTY_CART"
	ProblemMissingName          ProblemCode = "MISSING_NAME"
	ProblemMissingPhone         ProblemCode = "MISSING_PHONE"
	ProblemInvalidPayment       ProblemCode = "INVALID_PAYMENT_METHOD"
	ProblemMissingBankReference ProblemCode = "MISSING_BANK_REFERENCE"
)

// Problem is one reason an order cannot be placed yet.
type Problem struct {
	Code    ProblemCode `json:"code"`
	Message string      `json:"message"`
}

// CheckoutError carries the problems that blocked PlaceOrder.
type CheckoutError struct {
	Problems []Problem
}

func (e *CheckoutError) Error() string {
	codes := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		codes = append(codes, string(p.Code))
	}
	return fmt.Sprintf("%s: %s", ErrCheckoutRejected, strings.Join(codes, ", "))
}

func (e *CheckoutError) Unwrap() error {
	return ErrCheckoutRejected
}

// PlaceOrderInput is what the customer fills in at checkout.
type PlaceOrderInput struct {
	Customer entities.Customer
	Payment  entities.Payment
}

// withDefaults trims customer fields and fills missing ONLINE bank details
// from the store's account.
func (in PlaceOrderInput) withDefaults(bank entities.BankAccount) PlaceOrderInput {
	in.Customer = entities.Customer{
		Name:    strings.TrimSpace(in.Customer.Name),
		Phone:   strings.TrimSpace(in.Customer.Phone),
		Address: strings.TrimSpace(in.Customer.Address),
		City:    strings.TrimSpace(in.Customer.City),
	}
	if in.Payment.Method == entities.PaymentMethodOnline {
		t := entities.OnlineTransfer{}
		if in.Payment.Online != nil {
			t = *in.Payment.Online
		}
		if strings.TrimSpace(t.AccountNumber) == "" {
			t.BankName = bank.BankName
			t.AccountTitle = bank.AccountTitle
			t.AccountNumber = bank.AccountNumber
		}
		t.TransactionRef = strings.TrimSpace(t.TransactionRef)
		t.ProofRef = strings.TrimSpace(t.ProofRef)
		in.Payment = entities.OnlinePayment(t)
	}
	return in
}

// Problems lists everything preventing the order from being placed. An empty
// result means it can be placed.
func Problems(in PlaceOrderInput, cart entities.Cart) []Problem {
	var problems []Problem
	if cart.IsEmpty() {
		problems = append(problems, Problem{ProblemEmptyCart, "Your cart is empty"})
	}
	if strings.TrimSpace(in.Customer.Name) == "" {
		problems = append(problems, Problem{ProblemMissingName, "Name is required"})
	}
	if strings.TrimSpace(in.Customer.Phone) == "" {
		problems = append(problems, Problem{ProblemMissingPhone, "Phone number is required"})
	}
	switch in.Payment.Method {
	case entities.PaymentMethodCOD:
	case entities.PaymentMethodOnline:
		if in.Payment.Online == nil || strings.TrimSpace(in.Payment.Online.AccountNumber) == "" {
			problems = append(problems, Problem{ProblemMissingBankReference, "Bank account details are required for online payment"})
		}
	default:
		problems = append(problems, Problem{ProblemInvalidPayment, "Choose cash on delivery or online payment"})
	}
	return problems
}

// Quote is the priced cart as the checkout page shows it.
type Quote struct {
	Cart        entities.Cart
	Coupon      AppliedCoupon
	Subtotal    int64
	Discount    int64
	ShippingFee int64
	Total       int64
}

func priceCart(cart entities.Cart, applied AppliedCoupon, cfg entities.SiteConfig) Quote {
	q := Quote{Cart: cart, Coupon: applied, Subtotal: cart.TotalPrice(), Discount: applied.Discount()}
	if !cart.IsEmpty() {
		q.ShippingFee = cfg.ShippingFor(q.Subtotal - q.Discount)
	}
	q.Total = entities.OrderTotal(q.Subtotal, q.Discount, q.ShippingFee)
	return q
}

type ICheckoutUseCase interface {
	Quote(ctx context.Context) (Quote, error)
	Validate(ctx context.Context, in PlaceOrderInput) ([]Problem, error)
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (entities.Order, error)
}

type CheckoutUseCase struct {
	carts    interfaces.ICartRepository
	coupons  ICouponUseCase
	orders   interfaces.IOrderRepository
	products interfaces.IProductRepository
	config   interfaces.ISiteConfigRepository
	clock    interfaces.IClock
	ids      interfaces.IIDGenerator
	logger   *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	carts interfaces.ICartRepository,
	coupons ICouponUseCase,
	orders interfaces.IOrderRepository,
	products interfaces.IProductRepository,
	config interfaces.ISiteConfigRepository,
	clock interfaces.IClock,
	ids interfaces.IIDGenerator,
	logger *zap.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:    carts,
		coupons:  coupons,
		orders:   orders,
		products: products,
		config:   config,
		clock:    clock,
		ids:      ids,
		logger:   logger.Named("checkout"),
	}
}

func (u *CheckoutUseCase) Quote(ctx context.Context) (Quote, error) {
	cart, err := u.carts.Load(ctx)
	if err != nil {
		return Quote{}, err
	}
	return u.quote(ctx, cart)
}

func (u *CheckoutUseCase) quote(ctx context.Context, cart entities.Cart) (Quote, error) {
	applied, err := u.coupons.EvaluateFor(ctx, cart)
	if err != nil {
		return Quote{}, err
	}
	cfg, err := u.config.Get(ctx)
	if err != nil {
		return Quote{}, err
	}
	return priceCart(cart, applied, cfg), nil
}

func (u *CheckoutUseCase) Validate(ctx context.Context, in PlaceOrderInput) ([]Problem, error) {
	cart, err := u.carts.Load(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := u.config.Get(ctx)
	if err != nil {
		return nil, err
	}
	return Problems(in.withDefaults(cfg.Bank), cart), nil
}

// PlaceOrder turns the current cart into a PLACED order.
//
// Once the order is saved the operation has happened: failures in the
// follow-up steps (stock, cart and coupon reset) are logged, not returned.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (entities.Order, error) {
	cart, err := u.carts.Load(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	cfg, err := u.config.Get(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	in = in.withDefaults(cfg.Bank)
	if problems := Problems(in, cart); len(problems) > 0 {
		return entities.Order{}, &CheckoutError{Problems: problems}
	}

	q, err := u.quote(ctx, cart)
	if err != nil {
		return entities.Order{}, err
	}
	couponCode := ""
	switch r := q.Coupon.Result.(type) {
	case discount.Approved:
		couponCode = r.Coupon.Code
	case discount.Rejected:
		u.logger.Warn("applied coupon no longer valid, placing order without it",
			zap.String("code", q.Coupon.Code), zap.String("reason", string(r.Reason)))
	}

	now := u.clock.Now()
	order := entities.Order{
		ID:          u.ids.NewID(),
		Status:      entities.OrderStatusPlaced,
		CreatedAt:   now,
		Customer:    in.Customer,
		Items:       entities.OrderLinesFromCart(cart),
		CouponCode:  couponCode,
		Subtotal:    q.Subtotal,
		Discount:    q.Discount,
		ShippingFee: q.ShippingFee,
		Total:       q.Total,
		Payment:     in.Payment,
		Timeline:    entities.Timeline{entities.OrderStatusPlaced: now},
	}

	orders, err := u.orders.List(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	if err := u.orders.SaveAll(ctx, append(orders, order)); err != nil {
		return entities.Order{}, err
	}
	u.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int64("total", order.Total),
		zap.String("payment", string(order.Payment.Method)),
	)

	if err := u.decrementStock(ctx, order.Items, now); err != nil {
		u.logger.Error("failed to decrement stock", zap.String("order_id", order.ID), zap.Error(err))
	}
	if err := u.carts.Save(ctx, entities.Cart{}); err != nil {
		u.logger.Error("failed to clear cart", zap.String("order_id", order.ID), zap.Error(err))
	}
	if q.Coupon.Code != "" {
		if err := u.coupons.Clear(ctx); err != nil {
			u.logger.Error("failed to clear applied coupon", zap.String("order_id", order.ID), zap.Error(err))
		}
	}
	return order, nil
}

// decrementStock floors stock at zero; items missing from the catalog are skipped.
func (u *CheckoutUseCase) decrementStock(ctx context.Context, items []entities.OrderLine, now time.Time) error {
	products, err := u.products.List(ctx)
	if err != nil {
		return err
	}
	changed := false
	for _, item := range items {
		i := findProduct(products, item.ID)
		if i < 0 {
			continue
		}
		products[i].Stock -= item.Quantity
		if products[i].Stock < 0 {
			products[i].Stock = 0
		}
		products[i].UpdatedAt = now
		changed = true
	}
	if !changed {
		return nil
	}
	return u.products.SaveAll(ctx, products)
}
