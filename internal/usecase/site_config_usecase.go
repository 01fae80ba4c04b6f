package usecase

import (
	"context"
	"errors"
	"gemstore/internal/domain/entities"
	"gemstore/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

var ErrInvalidSiteConfig = errors.New("invalid site config")

type ISiteConfigUseCase interface {
	Get(ctx context.Context) (entities.SiteConfig, error)
	Update(ctx context.Context, cfg entities.SiteConfig) (entities.SiteConfig, error)
}

type SiteConfigUseCase struct {
	repo   interfaces.ISiteConfigRepository
	logger *zap.Logger
}

var _ ISiteConfigUseCase = (*SiteConfigUseCase)(nil)

func NewSiteConfigUseCase(repo interfaces.ISiteConfigRepository, logger *zap.Logger) *SiteConfigUseCase {
	return &SiteConfigUseCase{repo: repo, logger: logger.Named("site_config")}
}

func (u *SiteConfigUseCase) Get(ctx context.Context) (entities.SiteConfig, error) {
	return u.repo.Get(ctx)
}

// Update replaces the whole configuration. A blank store name keeps the default one.
func (u *SiteConfigUseCase) Update(ctx context.Context, cfg entities.SiteConfig) (entities.SiteConfig, error) {
	if cfg.ShippingFee < 0 || (cfg.FreeShippingThreshold != nil && *cfg.FreeShippingThreshold < 0) {
		return entities.SiteConfig{}, ErrInvalidSiteConfig
	}
	cfg.StoreName = strings.TrimSpace(cfg.StoreName)
	if cfg.StoreName == "" {
		cfg.StoreName = entities.DefaultSiteConfig().StoreName
	}
	cfg.Bank = entities.BankAccount{
		BankName:      strings.TrimSpace(cfg.Bank.BankName),
		AccountTitle:  strings.TrimSpace(cfg.Bank.AccountTitle),
		AccountNumber: strings.TrimSpace(cfg.Bank.AccountNumber),
	}

	if err := u.repo.Save(ctx, cfg); err != nil {
		return entities.SiteConfig{}, err
	}
	u.logger.Info("site config updated", zap.Int64("shipping_fee", cfg.ShippingFee))
	return cfg, nil
}
