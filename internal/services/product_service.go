package services

import (
	"errors"
	"nars_shop/internal/models"
	"nars_shop/internal/repository"

	"gorm.io/gorm"
)

type ProductPage struct {
	Products    []models.Product `json:"products"`
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
	TotalItems  int64            `json:"totalItems"`
}

type ProductService interface {
	CreateProduct(product *models.Product) error
	GetProductByID(id uint) (*models.Product, error)
	ListProducts(page, limit int) (*ProductPage, error)
	UpdateProduct(id uint, updated *models.Product) (*models.Product, error)
	DeleteProduct(id uint) error
	RateProduct(productID, userID uint, rating int) error
}

type productService struct {
	productRepo repository.ProductRepository
	ratingRepo  repository.RatingRepository
}

func NewProductService(productRepo repository.ProductRepository, ratingRepo repository.RatingRepository) ProductService {
	return &productService{productRepo: productRepo, ratingRepo: ratingRepo}
}

func (s *productService) CreateProduct(product *models.Product) error {
	product.BatchID = generateOrderID()
	return s.productRepo.Create(product)
}

func (s *productService) GetProductByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(page, limit int) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.GetPage((page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ProductPage{
		Products:    products,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
	}, nil
}

func (s *productService) UpdateProduct(id uint, updated *models.Product) (*models.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = updated.Name
	product.Description = updated.Description
	product.Price = updated.Price
	product.ImageURL = updated.ImageURL
	product.StockQuantity = updated.StockQuantity
	product.Category = updated.Category
	product.SupplierID = updated.SupplierID
	product.Rating = updated.Rating

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	if _, err := s.GetProductByID(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

func (s *productService) RateProduct(productID, userID uint, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidInput
	}
	if _, err := s.GetProductByID(productID); err != nil {
		return err
	}
	return s.ratingRepo.Create(&models.ProductRating{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
	})
}
