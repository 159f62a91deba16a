package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)

	// Product items
	CreateItem(ctx context.Context, item *entity.ProductItem) error
	// FindItem resolves the product item binding a product to a class item.
	// Returns nil when the product does not cover the class item.
	FindItem(ctx context.Context, productId, classItemId uuid.UUID) (*entity.ProductItem, error)
	FindItemsByProduct(ctx context.Context, productId uuid.UUID) ([]*entity.ProductItem, error)

	// Quota pools
	CreatePool(ctx context.Context, pool *entity.QuotaPool) error
	FindOnePool(ctx context.Context, specs ...specification.Specification) (*entity.QuotaPool, error)
}
