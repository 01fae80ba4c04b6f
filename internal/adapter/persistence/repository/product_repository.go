package repository

import (
	"context"
	"gemstore/internal/domain/entities"
	"gemstore/internal/usecase/interfaces"
)

type ProductRepository struct {
	store *SnapshotStore
}

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

func NewProductRepository(store *SnapshotStore) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) List(ctx context.Context) ([]entities.Product, error) {
	return loadList[entities.Product](ctx, r.store, KeyProducts)
}

func (r *ProductRepository) SaveAll(ctx context.Context, products []entities.Product) error {
	if products == nil {
		products = []entities.Product{}
	}
	return r.store.writeJSON(ctx, KeyProducts, products)
}

type SiteConfigRepository struct {
	store *SnapshotStore
}

var _ interfaces.ISiteConfigRepository = (*SiteConfigRepository)(nil)

func NewSiteConfigRepository(store *SnapshotStore) *SiteConfigRepository {
	return &SiteConfigRepository{store: store}
}

func (r *SiteConfigRepository) Get(ctx context.Context) (entities.SiteConfig, error) {
	return loadObject(ctx, r.store, KeySiteConfig, entities.DefaultSiteConfig())
}

func (r *SiteConfigRepository) Save(ctx context.Context, cfg entities.SiteConfig) error {
	return r.store.writeJSON(ctx, KeySiteConfig, cfg)
}
