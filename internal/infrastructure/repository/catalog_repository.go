package repository

import (
	"context"
	"errors"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	domainRepo "github.com/esteticaluz/salon-pos-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListInStock(ctx context.Context, branchID uint) ([]domainRepo.StockedProduct, error) {
	var rows []entity.BranchInventory
	err := r.db.WithContext(ctx).
		Preload("Product.Category").
		Preload("Product.Promotions").
		Where("id_sucursal = ? AND stock_actual > 0", branchID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	stocked := make([]domainRepo.StockedProduct, 0, len(rows))
	for _, row := range rows {
		stocked = append(stocked, domainRepo.StockedProduct{
			Product: row.Product,
			Stock:   row.CurrentStock,
		})
	}
	return stocked, nil
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) domainRepo.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) GetByID(ctx context.Context, id uint) (*entity.Service, error) {
	var service entity.Service
	err := r.db.WithContext(ctx).Preload("Category").First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) ListActive(ctx context.Context) ([]entity.Service, error) {
	var services []entity.Service
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Promotions").
		Where("estado = ?", "Activo").
		Order("nombre").
		Find(&services).Error
	return services, err
}

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) ListByBranch(ctx context.Context, branchID uint) ([]entity.BranchInventory, error) {
	var rows []entity.BranchInventory
	err := r.db.WithContext(ctx).
		Preload("Product.Category").
		Where("id_sucursal = ?", branchID).
		Find(&rows).Error
	return rows, err
}

// AtomicDecrement decrements stock only while the result stays non-negative:
// UPDATE inventario_sucursal SET stock_actual = stock_actual - n
// WHERE id_sucursal = ? AND id_producto = ? AND stock_actual >= n
func (r *inventoryRepository) AtomicDecrement(ctx context.Context, branchID, productID uint, quantity int) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.BranchInventory{}).
		Where("id_sucursal = ? AND id_producto = ? AND stock_actual >= ?", branchID, productID, quantity).
		Update("stock_actual", gorm.Expr("stock_actual - ?", quantity))

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *inventoryRepository) Upsert(ctx context.Context, inv *entity.BranchInventory) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id_sucursal"}, {Name: "id_producto"}},
		DoUpdates: clause.AssignmentColumns([]string{"stock_actual", "stock_minimo"}),
	}).Create(inv).Error
}
