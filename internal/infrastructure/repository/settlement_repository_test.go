package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	domainRepo "github.com/esteticaluz/salon-pos-api/internal/domain/repository"
)

func newSettlementStoreEnv(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Customer{}))
	return db
}

// A rejected customer insert must not abort the settlement transaction:
// CreateCustomer runs inside a savepoint precisely so the caller can still
// re-resolve by lookup and keep writing through the same transaction.
func TestCreateCustomerFailureKeepsTransactionUsable(t *testing.T) {
	db := newSettlementStoreEnv(t)
	ctx := context.Background()

	winner := entity.Customer{Cedula: "1717171717", GivenNames: "Rosa", Surnames: "Castro"}
	require.NoError(t, db.Create(&winner).Error)

	uow := NewSettlementUnitOfWork(db)
	err := uow.Do(ctx, func(store domainRepo.SettlementStore) error {
		dup := entity.Customer{Cedula: "1717171717", GivenNames: "Cliente", Surnames: "General"}
		require.Error(t, store.CreateCustomer(ctx, &dup))

		// The transaction is still live: the lookup succeeds and later
		// writes go through.
		existing, err := store.FindCustomerByCedula(ctx, "1717171717")
		require.NoError(t, err)
		require.NotNil(t, existing)
		assert.Equal(t, winner.ID, existing.ID)

		other := entity.Customer{Cedula: "0909090909", GivenNames: "Elena", Surnames: "Paz"}
		require.NoError(t, store.CreateCustomer(ctx, &other))
		return nil
	})
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&entity.Customer{}).Count(&n).Error)
	assert.Equal(t, int64(2), n)
}
