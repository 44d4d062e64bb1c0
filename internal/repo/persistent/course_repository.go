package persistent

import (
	"errors"

	"edumart/internal/entity"
	"edumart/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListingFilter narrows public listing queries. Zero values mean
// "no constraint"; Search matches title, name and description
// case-insensitively.
type ListingFilter struct {
	Category string
	Level    string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

type CourseRepository interface {
	Create(course *entity.Course) error
	GetByID(id string) (*entity.Course, error)
	GetBySellerID(sellerID string) ([]*entity.Course, error)
	List(filter ListingFilter) ([]*entity.Course, error)
	ListPaged(limit, offset int) ([]*entity.Course, int64, error)
	Update(course *entity.Course) error
	Delete(id string) error
	IncrementEnrolled(id string) error
	Count() (int64, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *entity.Course) error {
	courseModel := ToCourseModel(course)
	if err := r.db.Create(courseModel).Error; err != nil {
		return err
	}
	*course = *ToCourseEntity(courseModel)
	return nil
}

func (r *courseRepository) GetByID(id string) (*entity.Course, error) {
	var courseModel model.CourseModel
	if err := r.db.Where("id = ?", id).First(&courseModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToCourseEntity(&courseModel), nil
}

func (r *courseRepository) GetBySellerID(sellerID string) ([]*entity.Course, error) {
	var courseModels []model.CourseModel
	if err := r.db.Where("created_by = ?", sellerID).Order("created_at DESC").Find(&courseModels).Error; err != nil {
		return nil, err
	}
	return toCourseEntities(courseModels), nil
}

func (r *courseRepository) List(filter ListingFilter) ([]*entity.Course, error) {
	var courseModels []model.CourseModel
	query := applyListingFilter(r.db.Order("created_at DESC"), filter)

	if filter.Level != "" {
		query = query.Where("level = ?", filter.Level)
	}

	if err := query.Find(&courseModels).Error; err != nil {
		return nil, err
	}
	return toCourseEntities(courseModels), nil
}

func (r *courseRepository) ListPaged(limit, offset int) ([]*entity.Course, int64, error) {
	var total int64
	if err := r.db.Model(&model.CourseModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courseModels []model.CourseModel
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&courseModels).Error; err != nil {
		return nil, 0, err
	}
	return toCourseEntities(courseModels), total, nil
}

func (r *courseRepository) Update(course *entity.Course) error {
	courseModel := ToCourseModel(course)
	return r.db.Save(courseModel).Error
}

func (r *courseRepository) Delete(id string) error {
	res := r.db.Delete(&model.CourseModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementEnrolled bumps the enrollment counter atomically in a single
// statement. There is deliberately no re-enrollment guard.
func (r *courseRepository) IncrementEnrolled(id string) error {
	res := r.db.Model(&model.CourseModel{}).Where("id = ?", id).
		UpdateColumn("enrolled_students", clause.Expr{SQL: "enrolled_students + ?", Vars: []interface{}{1}})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *courseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.CourseModel{}).Count(&count).Error
	return count, err
}

func toCourseEntities(courseModels []model.CourseModel) []*entity.Course {
	courses := make([]*entity.Course, len(courseModels))
	for i := range courseModels {
		courses[i] = ToCourseEntity(&courseModels[i])
	}
	return courses
}

func applyListingFilter(query *gorm.DB, filter ListingFilter) *gorm.DB {
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR name ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}
	return query
}
