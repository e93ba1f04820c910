package service

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/model"
	"WithTheLake/internal/repository"
	"context"
	"errors"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *dto.SaveProductDTO) (*dto.ProductDTO, error)
	GetProduct(ctx context.Context, id uint64) (*dto.ProductDTO, error)
	GetProductList(ctx context.Context, activeOnly bool, page, pageSize int) ([]*dto.ProductDTO, error)
	UpdateProduct(ctx context.Context, id uint64, req *dto.SaveProductDTO) (*dto.ProductDTO, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type productServiceImpl struct {
	productRepo repository.ProductRepo
}

func NewProductService(productRepo repository.ProductRepo) ProductService {
	return &productServiceImpl{
		productRepo: productRepo,
	}
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req *dto.SaveProductDTO) (*dto.ProductDTO, error) {
	product := &model.Product{}
	_ = copier.Copy(product, req)

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return toProductDTO(product), nil
}

func (s *productServiceImpl) GetProduct(ctx context.Context, id uint64) (*dto.ProductDTO, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return toProductDTO(product), nil
}

func (s *productServiceImpl) GetProductList(ctx context.Context, activeOnly bool, page, pageSize int) ([]*dto.ProductDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}

	list, err := s.productRepo.GetProductList(ctx, activeOnly, page, pageSize)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProductDTO, 0, len(list))
	for _, product := range list {
		result = append(result, toProductDTO(product))
	}
	return result, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, id uint64, req *dto.SaveProductDTO) (*dto.ProductDTO, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	product.StockCount = req.StockCount
	product.IsActive = req.IsActive

	if err = s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return toProductDTO(product), nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, id uint64) error {
	if _, err := s.productRepo.GetProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.productRepo.DeleteProduct(ctx, id)
}

func toProductDTO(product *model.Product) *dto.ProductDTO {
	result := &dto.ProductDTO{}
	_ = copier.Copy(result, product)
	return result
}
