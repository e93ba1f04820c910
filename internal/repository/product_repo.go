package repository

import (
	"WithTheLake/internal/model"
	"context"

	"gorm.io/gorm"
)

type ProductRepo interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	GetProductList(ctx context.Context, activeOnly bool, page, pageSize int) ([]*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id uint64) error
	CountProducts(ctx context.Context) (int64, error)
}

type ProductRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepo {
	return &ProductRepoImpl{
		db: db,
	}
}

func (s *ProductRepoImpl) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *ProductRepoImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductRepoImpl) GetProductList(ctx context.Context, activeOnly bool, page, pageSize int) ([]*model.Product, error) {
	var list []*model.Product
	query := s.db.WithContext(ctx).Model(&model.Product{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ProductRepoImpl) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Updates(product).Error
}

func (s *ProductRepoImpl) DeleteProduct(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (s *ProductRepoImpl) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}
