package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
)

func newInventoryEnv(t *testing.T) (*gorm.DB, entity.Branch, entity.Product) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Branch{},
		&entity.ProductCategory{},
		&entity.Product{},
		&entity.BranchInventory{},
	))

	branch := entity.Branch{Name: "Sucursal Norte"}
	require.NoError(t, db.Create(&branch).Error)

	category := entity.ProductCategory{Name: "Cuidado capilar"}
	require.NoError(t, db.Create(&category).Error)
	product := entity.Product{CategoryID: category.ID, Name: "Shampoo", PurchasePrice: 1000}
	require.NoError(t, db.Create(&product).Error)

	return db, branch, product
}

func TestAtomicDecrement(t *testing.T) {
	db, branch, product := newInventoryEnv(t)
	repo := NewInventoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.BranchInventory{
		BranchID:     branch.ID,
		ProductID:    product.ID,
		CurrentStock: 5,
		MinimumStock: 2,
	}))

	ok, err := repo.AtomicDecrement(ctx, branch.ID, product.ID, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	// Insufficient stock leaves the row untouched
	ok, err = repo.AtomicDecrement(ctx, branch.ID, product.ID, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	var inv entity.BranchInventory
	require.NoError(t, db.First(&inv, "id_sucursal = ? AND id_producto = ?", branch.ID, product.ID).Error)
	assert.Equal(t, 2, inv.CurrentStock)

	// Unknown product decrements nothing
	ok, err = repo.AtomicDecrement(ctx, branch.ID, product.ID+100, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInventoryUpsert(t *testing.T) {
	db, branch, product := newInventoryEnv(t)
	repo := NewInventoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.BranchInventory{
		BranchID:     branch.ID,
		ProductID:    product.ID,
		CurrentStock: 5,
		MinimumStock: 2,
	}))

	// Second upsert for the same pair updates in place
	require.NoError(t, repo.Upsert(ctx, &entity.BranchInventory{
		BranchID:     branch.ID,
		ProductID:    product.ID,
		CurrentStock: 12,
		MinimumStock: 4,
	}))

	var rows []entity.BranchInventory
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 12, rows[0].CurrentStock)
	assert.Equal(t, 4, rows[0].MinimumStock)
}
