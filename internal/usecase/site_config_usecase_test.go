package usecase

import (
	"context"
	"errors"
	"testing"

	"gemstore/internal/domain/entities"
	mock_interfaces "gemstore/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSiteConfigUseCase_Update(t *testing.T) {
	t.Run("negative fee", func(t *testing.T) {
		uc := NewSiteConfigUseCase(nil, zap.NewNop())
		_, err := uc.Update(context.Background(), entities.SiteConfig{ShippingFee: -1})
		if !errors.Is(err, ErrInvalidSiteConfig) {
			t.Fatalf("expected ErrInvalidSiteConfig, got %v", err)
		}
	})

	t.Run("negative threshold", func(t *testing.T) {
		uc := NewSiteConfigUseCase(nil, zap.NewNop())
		threshold := int64(-5)
		_, err := uc.Update(context.Background(), entities.SiteConfig{FreeShippingThreshold: &threshold})
		if !errors.Is(err, ErrInvalidSiteConfig) {
			t.Fatalf("expected ErrInvalidSiteConfig, got %v", err)
		}
	})

	t.Run("trims and defaults store name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISiteConfigRepository(ctrl)
		uc := NewSiteConfigUseCase(repo, zap.NewNop())

		want := entities.SiteConfig{
			StoreName:   "Gem Store",
			ShippingFee: 0,
			Bank:        entities.BankAccount{BankName: "HBL", AccountNumber: "42"},
		}
		repo.EXPECT().Save(gomock.Any(), want).Return(nil)

		got, err := uc.Update(context.Background(), entities.SiteConfig{
			StoreName: "   ",
			Bank:      entities.BankAccount{BankName: " HBL ", AccountNumber: " 42"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})
}
