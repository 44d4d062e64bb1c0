package http

import (
	"mime/multipart"

	"edumart/internal/entity"
	"edumart/internal/repo/persistent"
	"edumart/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) RegisterUser(name, email, password string) (*entity.User, string, error) {
	args := m.Called(name, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) LoginUser(email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) AdminLogin(email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetProfile(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

// MockSellerAuthUseCase is a mock implementation of usecase.SellerAuthUseCase
type MockSellerAuthUseCase struct {
	mock.Mock
}

func (m *MockSellerAuthUseCase) RegisterSeller(in usecase.RegisterSellerInput) (*entity.Seller, string, error) {
	args := m.Called(in)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.Seller), args.String(1), args.Error(2)
}

func (m *MockSellerAuthUseCase) LoginSeller(email, password string) (*entity.Seller, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.Seller), args.String(1), args.Error(2)
}

var _ usecase.SellerAuthUseCase = (*MockSellerAuthUseCase)(nil)

// MockCourseUseCase is a mock implementation of usecase.CourseUseCase
type MockCourseUseCase struct {
	mock.Mock
}

func (m *MockCourseUseCase) Create(sellerID string, in usecase.CourseInput, image *multipart.FileHeader) (*entity.Course, error) {
	args := m.Called(sellerID, in, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) Get(id string) (*entity.Course, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) List(filter persistent.ListingFilter) ([]*entity.Course, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) GetBySeller(sellerID string) ([]*entity.Course, error) {
	args := m.Called(sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) Update(id, sellerID string, in usecase.CourseInput, image *multipart.FileHeader) (*entity.Course, error) {
	args := m.Called(id, sellerID, in, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) Delete(id, sellerID string) error {
	args := m.Called(id, sellerID)
	return args.Error(0)
}

func (m *MockCourseUseCase) Enroll(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ usecase.CourseUseCase = (*MockCourseUseCase)(nil)

// MockAdminUseCase is a mock implementation of usecase.AdminUseCase
type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) Stats() (*usecase.DashboardStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DashboardStats), args.Error(1)
}

func (m *MockAdminUseCase) ListAccounts(page, limit int) ([]usecase.Account, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]usecase.Account), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminUseCase) ListCourses(page, limit int) ([]*entity.Course, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Course), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminUseCase) ListProducts(page, limit int) ([]*entity.Product, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminUseCase) DeleteUser(id, requestingAdminID string) error {
	args := m.Called(id, requestingAdminID)
	return args.Error(0)
}

func (m *MockAdminUseCase) DeleteCourse(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdminUseCase) DeleteProduct(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ usecase.AdminUseCase = (*MockAdminUseCase)(nil)

// MockUserRepository backs the UserAuth middleware in tests
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

// MockSellerRepository backs the SellerAuth middleware in tests
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
