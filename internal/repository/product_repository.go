package repository

import (
	"nars_shop/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetPage(offset, limit int) ([]models.Product, error)
	Count() (int64, error)
	Update(product *models.Product) error
	Delete(id uint) error
	TopProducts(limit int) ([]models.TopProduct, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetPage(offset, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Offset(offset).Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// TopProducts ranks every product by the total quantity sold, tie-broken by
// average rating. Unsold products rank with sold = 0, unrated with rating = 0.
func (r *productRepository) TopProducts(limit int) ([]models.TopProduct, error) {
	var rows []models.TopProduct
	err := r.db.Model(&models.Product{}).
		Select(`products.id, products.name, products.image_url,
			COALESCE((SELECT SUM(oi.quantity) FROM order_items oi WHERE oi.product_id = products.id), 0) AS sold,
			COALESCE((SELECT AVG(pr.rating) FROM product_ratings pr WHERE pr.product_id = products.id), 0) AS rating`).
		Order("sold DESC, rating DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
