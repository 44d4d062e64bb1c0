package usecase

import (
	"errors"
	"sort"
	"time"

	"edumart/internal/entity"
	"edumart/internal/repo/persistent"
	"edumart/pkg/logger"
)

// Account is one row of the admin accounts feed: Users and Sellers
// merged into a single role-annotated listing.
type Account struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type DashboardStats struct {
	TotalUsers    int64          `json:"totalUsers"`
	TotalSellers  int64          `json:"totalSellers"`
	TotalCourses  int64          `json:"totalCourses"`
	TotalProducts int64          `json:"totalProducts"`
	RecentUsers   []*entity.User `json:"recentUsers"`
}

type AdminUseCase interface {
	Stats() (*DashboardStats, error)
	ListAccounts(page, limit int) ([]Account, int64, error)
	ListCourses(page, limit int) ([]*entity.Course, int64, error)
	ListProducts(page, limit int) ([]*entity.Product, int64, error)
	DeleteUser(id, requestingAdminID string) error
	DeleteCourse(id string) error
	DeleteProduct(id string) error
}

type adminUseCase struct {
	userRepo    persistent.UserRepository
	sellerRepo  persistent.SellerRepository
	courseRepo  persistent.CourseRepository
	productRepo persistent.ProductRepository
	logger      *logger.Logger
}

func NewAdminUseCase(
	userRepo persistent.UserRepository,
	sellerRepo persistent.SellerRepository,
	courseRepo persistent.CourseRepository,
	productRepo persistent.ProductRepository,
	logger *logger.Logger,
) AdminUseCase {
	return &adminUseCase{
		userRepo:    userRepo,
		sellerRepo:  sellerRepo,
		courseRepo:  courseRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *adminUseCase) Stats() (*DashboardStats, error) {
	totalUsers, err := uc.userRepo.Count()
	if err != nil {
		return nil, err
	}
	totalSellers, err := uc.sellerRepo.Count()
	if err != nil {
		return nil, err
	}
	totalCourses, err := uc.courseRepo.Count()
	if err != nil {
		return nil, err
	}
	totalProducts, err := uc.productRepo.Count()
	if err != nil {
		return nil, err
	}

	recentUsers, err := uc.userRepo.Recent(5)
	if err != nil {
		return nil, err
	}
	for _, u := range recentUsers {
		u.Password = ""
	}

	return &DashboardStats{
		TotalUsers:    totalUsers,
		TotalSellers:  totalSellers,
		TotalCourses:  totalCourses,
		TotalProducts: totalProducts,
		RecentUsers:   recentUsers,
	}, nil
}

// ListAccounts merges both principal collections, orders the merged
// feed by creation time and slices once, so every page window reflects
// the true global ranking.
func (uc *adminUseCase) ListAccounts(page, limit int) ([]Account, int64, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, 0, err
	}
	sellers, err := uc.sellerRepo.List()
	if err != nil {
		return nil, 0, err
	}

	accounts := make([]Account, 0, len(users)+len(sellers))
	for _, u := range users {
		role := string(u.Role)
		if role == "" {
			role = string(entity.RoleUser)
		}
		accounts = append(accounts, Account{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      role,
			CreatedAt: u.CreatedAt,
		})
	}
	for _, s := range sellers {
		accounts = append(accounts, Account{
			ID:        s.ID,
			Name:      s.Name,
			Email:     s.Email,
			Role:      "seller",
			CreatedAt: s.CreatedAt,
		})
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
	})

	total := int64(len(accounts))
	start, end := pageBounds(len(accounts), page, limit)
	return accounts[start:end], total, nil
}

func (uc *adminUseCase) ListCourses(page, limit int) ([]*entity.Course, int64, error) {
	return uc.courseRepo.ListPaged(limit, (page-1)*limit)
}

func (uc *adminUseCase) ListProducts(page, limit int) ([]*entity.Product, int64, error) {
	return uc.productRepo.ListPaged(limit, (page-1)*limit)
}

func (uc *adminUseCase) DeleteUser(id, requestingAdminID string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return notFound("User not found")
		}
		return err
	}

	if user.ID == requestingAdminID {
		return badRequest("Cannot delete your own account")
	}

	return uc.userRepo.Delete(id)
}

func (uc *adminUseCase) DeleteCourse(id string) error {
	err := uc.courseRepo.Delete(id)
	if errors.Is(err, persistent.ErrNotFound) {
		return notFound("Course not found")
	}
	return err
}

func (uc *adminUseCase) DeleteProduct(id string) error {
	err := uc.productRepo.Delete(id)
	if errors.Is(err, persistent.ErrNotFound) {
		return notFound("Product not found")
	}
	return err
}

func pageBounds(length, page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start > length {
		start = length
	}
	end := start + limit
	if end > length {
		end = length
	}
	return start, end
}
