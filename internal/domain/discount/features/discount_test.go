package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"gemstore/internal/domain/discount"
	"gemstore/internal/domain/entities"

	"github.com/cucumber/godog"
)

type discountTestContext struct {
	items  []entities.CartLine
	result discount.Result
}

func (c *discountTestContext) reset() {
	c.items = nil
	c.result = nil
}

func (c *discountTestContext) aCartLineInCategoryPricedWithQuantity(id, category string, price, qty int) error {
	cat, ok := entities.ParseCategory(category)
	if !ok {
		return fmt.Errorf("unknown category %q", category)
	}
	c.items = append(c.items, entities.CartLine{ID: id, Name: id, Category: cat, UnitPrice: int64(price), Quantity: qty})
	return nil
}

func (c *discountTestContext) iApplyCoupon(code string) error {
	c.result = discount.Evaluate(c.items, code, discount.DefaultCatalog(), time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))
	return nil
}

func (c *discountTestContext) iApplyCouponOn(code, at string) error {
	now, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return err
	}
	c.result = discount.Evaluate(c.items, code, discount.DefaultCatalog(), now)
	return nil
}

func (c *discountTestContext) theCouponIsApprovedWithADiscountOf(amount int) error {
	approved, ok := c.result.(discount.Approved)
	if !ok {
		return fmt.Errorf("expected approval, got %#v", c.result)
	}
	if approved.Discount != int64(amount) {
		return fmt.Errorf("expected discount %d, got %d", amount, approved.Discount)
	}
	return nil
}

func (c *discountTestContext) theCouponIsRejectedWithReason(reason string) error {
	rejected, ok := c.result.(discount.Rejected)
	if !ok {
		return fmt.Errorf("expected rejection, got %#v", c.result)
	}
	if string(rejected.Reason) != reason {
		return fmt.Errorf("expected reason %s, got %s", reason, rejected.Reason)
	}
	return nil
}

func (c *discountTestContext) theRejectionMessageContains(substring string) error {
	rejected, ok := c.result.(discount.Rejected)
	if !ok {
		return errors.New("expected rejection")
	}
	if !strings.Contains(rejected.Message, substring) {
		return fmt.Errorf("expected message to contain %q, got %q", substring, rejected.Message)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &discountTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^a cart line "([^"]*)" in category "([^"]*)" priced (\d+) with quantity (\d+)$`, tc.aCartLineInCategoryPricedWithQuantity)
	ctx.Step(`^I apply coupon "([^"]*)"$`, tc.iApplyCoupon)
	ctx.Step(`^I apply coupon "([^"]*)" on "([^"]*)"$`, tc.iApplyCouponOn)
	ctx.Step(`^the coupon is approved with a discount of (\d+)$`, tc.theCouponIsApprovedWithADiscountOf)
	ctx.Step(`^the coupon is rejected with reason "([^"]*)"$`, tc.theCouponIsRejectedWithReason)
	ctx.Step(`^the rejection message contains "([^"]*)"$`, tc.theRejectionMessageContains)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"discount.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
