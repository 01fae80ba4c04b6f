package interfaces

import (
	"context"
	"gemstore/internal/domain/entities"
)

// IProductRepository persists the admin-managed catalog as one snapshot.

type IProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	SaveAll(ctx context.Context, products []entities.Product) error
}

// ISiteConfigRepository returns entities.DefaultSiteConfig when nothing valid is stored.

type ISiteConfigRepository interface {
	Get(ctx context.Context) (entities.SiteConfig, error)
	Save(ctx context.Context, cfg entities.SiteConfig) error
}
