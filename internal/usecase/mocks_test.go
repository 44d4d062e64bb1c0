package usecase

import (
	"mime/multipart"

	"edumart/internal/entity"
	"edumart/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List() ([]*entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Recent(limit int) ([]*entity.User, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockSellerRepository is a mock implementation of persistent.SellerRepository
type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) Create(seller *entity.Seller) error {
	args := m.Called(seller)
	return args.Error(0)
}

func (m *MockSellerRepository) GetByEmail(email string) (*entity.Seller, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Seller), args.Error(1)
}

func (m *MockSellerRepository) GetByID(id string) (*entity.Seller, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Seller), args.Error(1)
}

func (m *MockSellerRepository) List() ([]*entity.Seller, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Seller), args.Error(1)
}

func (m *MockSellerRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.SellerRepository = (*MockSellerRepository)(nil)

// MockCourseRepository is a mock implementation of persistent.CourseRepository
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(course *entity.Course) error {
	args := m.Called(course)
	return args.Error(0)
}

func (m *MockCourseRepository) GetByID(id string) (*entity.Course, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseRepository) GetBySellerID(sellerID string) ([]*entity.Course, error) {
	args := m.Called(sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCourseRepository) List(filter persistent.ListingFilter) ([]*entity.Course, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCourseRepository) ListPaged(limit, offset int) ([]*entity.Course, int64, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Course), args.Get(1).(int64), args.Error(2)
}

func (m *MockCourseRepository) Update(course *entity.Course) error {
	args := m.Called(course)
	return args.Error(0)
}

func (m *MockCourseRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCourseRepository) IncrementEnrolled(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCourseRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.CourseRepository = (*MockCourseRepository)(nil)

// MockProductRepository is a mock implementation of persistent.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *entity.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(id string) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySellerID(sellerID string) ([]*entity.Product, error) {
	args := m.Called(sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) List(filter persistent.ListingFilter) ([]*entity.Product, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) ListPaged(limit, offset int) ([]*entity.Product, int64, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Update(product *entity.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.ProductRepository = (*MockProductRepository)(nil)

// MockImageStore is a mock implementation of ImageStore
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(file *multipart.FileHeader, kind string) (string, error) {
	args := m.Called(file, kind)
	return args.String(0), args.Error(1)
}

var _ ImageStore = (*MockImageStore)(nil)
