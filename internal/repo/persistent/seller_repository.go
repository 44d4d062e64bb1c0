package persistent

import (
	"errors"
	"strings"

	"edumart/internal/entity"
	"edumart/internal/model"

	"gorm.io/gorm"
)

type SellerRepository interface {
	Create(seller *entity.Seller) error
	GetByEmail(email string) (*entity.Seller, error)
	GetByID(id string) (*entity.Seller, error)
	List() ([]*entity.Seller, error)
	Count() (int64, error)
}

type sellerRepository struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Create(seller *entity.Seller) error {
	sellerModel := ToSellerModel(seller)
	if err := r.db.Create(sellerModel).Error; err != nil {
		return err
	}
	*seller = *ToSellerEntity(sellerModel)
	return nil
}

func (r *sellerRepository) GetByEmail(email string) (*entity.Seller, error) {
	var sellerModel model.SellerModel
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&sellerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToSellerEntity(&sellerModel), nil
}

func (r *sellerRepository) GetByID(id string) (*entity.Seller, error) {
	var sellerModel model.SellerModel
	if err := r.db.Where("id = ?", id).First(&sellerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToSellerEntity(&sellerModel), nil
}

func (r *sellerRepository) List() ([]*entity.Seller, error) {
	var sellerModels []model.SellerModel
	if err := r.db.Order("created_at DESC").Find(&sellerModels).Error; err != nil {
		return nil, err
	}

	sellers := make([]*entity.Seller, len(sellerModels))
	for i := range sellerModels {
		sellers[i] = ToSellerEntity(&sellerModels[i])
	}
	return sellers, nil
}

func (r *sellerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.SellerModel{}).Count(&count).Error
	return count, err
}
