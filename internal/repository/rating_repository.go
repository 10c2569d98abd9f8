package repository

import (
	"nars_shop/internal/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.ProductRating) error
	GetByProductID(productID uint) ([]models.ProductRating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(rating *models.ProductRating) error {
	return r.db.Create(rating).Error
}

func (r *ratingRepository) GetByProductID(productID uint) ([]models.ProductRating, error) {
	var ratings []models.ProductRating
	err := r.db.Where("product_id = ?", productID).Find(&ratings).Error
	return ratings, err
}
