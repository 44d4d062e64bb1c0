package persistent

import (
	"edumart/internal/entity"
	"edumart/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToSellerEntity(m *model.SellerModel) *entity.Seller {
	if m == nil {
		return nil
	}

	return &entity.Seller{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Password:        m.Password,
		Phone:           m.Phone,
		InstitutionName: m.InstitutionName,
		Address:         m.Address,
		ProfileImage:    m.ProfileImage,
		IsVerified:      m.IsVerified,
		IsActive:        m.IsActive,
		TotalCourses:    m.TotalCourses,
		TotalProducts:   m.TotalProducts,
		TotalRevenue:    m.TotalRevenue,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToSellerModel(e *entity.Seller) *model.SellerModel {
	if e == nil {
		return nil
	}

	return &model.SellerModel{
		ID:              e.ID,
		Name:            e.Name,
		Email:           e.Email,
		Password:        e.Password,
		Phone:           e.Phone,
		InstitutionName: e.InstitutionName,
		Address:         e.Address,
		ProfileImage:    e.ProfileImage,
		IsVerified:      e.IsVerified,
		IsActive:        e.IsActive,
		TotalCourses:    e.TotalCourses,
		TotalProducts:   e.TotalProducts,
		TotalRevenue:    e.TotalRevenue,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToCourseEntity(m *model.CourseModel) *entity.Course {
	if m == nil {
		return nil
	}

	return &entity.Course{
		ID:               m.ID,
		Title:            m.Title,
		Name:             m.Name,
		AuthorName:       m.AuthorName,
		Description:      m.Description,
		Price:            m.Price,
		OriginalPrice:    m.OriginalPrice,
		Category:         m.Category,
		Image:            m.Image,
		Duration:         m.Duration,
		Level:            entity.CourseLevel(m.Level),
		EnrolledStudents: m.EnrolledStudents,
		CreatedBy:        m.CreatedBy,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToCourseModel(e *entity.Course) *model.CourseModel {
	if e == nil {
		return nil
	}

	return &model.CourseModel{
		ID:               e.ID,
		Title:            e.Title,
		Name:             e.Name,
		AuthorName:       e.AuthorName,
		Description:      e.Description,
		Price:            e.Price,
		OriginalPrice:    e.OriginalPrice,
		Category:         e.Category,
		Image:            e.Image,
		Duration:         e.Duration,
		Level:            string(e.Level),
		EnrolledStudents: e.EnrolledStudents,
		CreatedBy:        e.CreatedBy,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToProductEntity(m *model.ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	return &entity.Product{
		ID:            m.ID,
		Title:         m.Title,
		Name:          m.Name,
		AuthorName:    m.AuthorName,
		Description:   m.Description,
		Price:         m.Price,
		OriginalPrice: m.OriginalPrice,
		Category:      m.Category,
		Image:         m.Image,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToProductModel(e *entity.Product) *model.ProductModel {
	if e == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            e.ID,
		Title:         e.Title,
		Name:          e.Name,
		AuthorName:    e.AuthorName,
		Description:   e.Description,
		Price:         e.Price,
		OriginalPrice: e.OriginalPrice,
		Category:      e.Category,
		Image:         e.Image,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
