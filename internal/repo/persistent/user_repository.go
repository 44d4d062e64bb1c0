package persistent

import (
	"errors"
	"strings"

	"edumart/internal/entity"
	"edumart/internal/model"

	"gorm.io/gorm"
)

// ErrNotFound is returned by all repositories when a lookup resolves
// to no record, keeping the usecase layer free of store-specific errors.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	List() ([]*entity.User, error)
	Recent(limit int) ([]*entity.User, error)
	Count() (int64, error)
	Delete(id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) List() ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) Recent(limit int) ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Count(&count).Error
	return count, err
}

func (r *userRepository) Delete(id string) error {
	res := r.db.Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
