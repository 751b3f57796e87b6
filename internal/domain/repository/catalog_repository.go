package repository

import (
	"context"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
)

// StockedProduct is a product listed for sale at a branch together with its
// current stock level
type StockedProduct struct {
	Product entity.Product
	Stock   int
}

// ProductRepository defines the interface for product catalog operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	// ListInStock returns the branch's products with stock > 0, promotions
	// preloaded, ordered by category then name
	ListInStock(ctx context.Context, branchID uint) ([]StockedProduct, error)
}

// ServiceRepository defines the interface for service catalog operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id uint) (*entity.Service, error)
	// ListActive returns active services with promotions preloaded,
	// ordered by category then name
	ListActive(ctx context.Context) ([]entity.Service, error)
}

// InventoryRepository defines the interface for branch stock operations
type InventoryRepository interface {
	// ListByBranch returns the branch inventory with products preloaded
	ListByBranch(ctx context.Context, branchID uint) ([]entity.BranchInventory, error)
	// AtomicDecrement decrements stock only while it stays non-negative.
	// Returns false when the row does not exist or stock is insufficient.
	AtomicDecrement(ctx context.Context, branchID, productID uint, quantity int) (bool, error)
	Upsert(ctx context.Context, inv *entity.BranchInventory) error
}
