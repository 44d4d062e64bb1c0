package persistent

import (
	"errors"

	"edumart/internal/entity"
	"edumart/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySellerID(sellerID string) ([]*entity.Product, error)
	List(filter ListingFilter) ([]*entity.Product, error)
	ListPaged(limit, offset int) ([]*entity.Product, int64, error)
	Update(product *entity.Product) error
	Delete(id string) error
	Count() (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *entity.Product) error {
	productModel := ToProductModel(product)
	if err := r.db.Create(productModel).Error; err != nil {
		return err
	}
	*product = *ToProductEntity(productModel)
	return nil
}

func (r *productRepository) GetByID(id string) (*entity.Product, error) {
	var productModel model.ProductModel
	if err := r.db.Where("id = ?", id).First(&productModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToProductEntity(&productModel), nil
}

func (r *productRepository) GetBySellerID(sellerID string) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	if err := r.db.Where("created_by = ?", sellerID).Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toProductEntities(productModels), nil
}

func (r *productRepository) List(filter ListingFilter) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	query := applyListingFilter(r.db.Order("created_at DESC"), filter)
	if err := query.Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toProductEntities(productModels), nil
}

func (r *productRepository) ListPaged(limit, offset int) ([]*entity.Product, int64, error) {
	var total int64
	if err := r.db.Model(&model.ProductModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var productModels []model.ProductModel
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&productModels).Error; err != nil {
		return nil, 0, err
	}
	return toProductEntities(productModels), total, nil
}

func (r *productRepository) Update(product *entity.Product) error {
	productModel := ToProductModel(product)
	return r.db.Save(productModel).Error
}

func (r *productRepository) Delete(id string) error {
	res := r.db.Delete(&model.ProductModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.ProductModel{}).Count(&count).Error
	return count, err
}

func toProductEntities(productModels []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, len(productModels))
	for i := range productModels {
		products[i] = ToProductEntity(&productModels[i])
	}
	return products
}
