package usecase

import (
	"errors"
	"strings"

	"edumart/internal/entity"
	"edumart/internal/repo/persistent"
	"edumart/pkg/jwt"
	"edumart/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	RegisterUser(name, email, password string) (*entity.User, string, error)
	LoginUser(email, password string) (*entity.User, string, error)
	AdminLogin(email, password string) (*entity.User, string, error)
	GetProfile(userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *authUseCase) RegisterUser(name, email, password string) (*entity.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", badRequest("All fields are required")
	}

	email = normalizeEmail(email)

	// The reserved domain never self-registers; admins are provisioned
	// out of band.
	if strings.HasSuffix(email, entity.AdminDomain) {
		return nil, "", forbidden("Cannot register with @admin.com email. Contact system administrator.")
	}

	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", badRequest("User already exists")
	}
	if !errors.Is(err, persistent.ErrNotFound) {
		uc.logger.Error("Failed to look up user %s: %v", email, err)
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", err
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     entity.RoleUser,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", err
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", err
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) LoginUser(email, password string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", badRequest("Email and password are required")
	}

	email = normalizeEmail(email)

	if strings.HasSuffix(email, entity.AdminDomain) {
		return nil, "", forbidden("Admin accounts must use the admin login portal at /admin/login")
	}

	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, "", unauthorized("Invalid email or password")
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", unauthorized("Invalid email or password")
	}

	if user.Role == "" {
		user.Role = entity.RoleUser
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", err
	}

	user.Password = ""
	return user, token, nil
}

// AdminLogin succeeds only when every conjunct holds: reserved domain,
// existing user, admin role, matching password. Each failure has its
// own status and message.
func (uc *authUseCase) AdminLogin(email, password string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", badRequest("Email and password are required")
	}

	email = normalizeEmail(email)

	if !strings.HasSuffix(email, entity.AdminDomain) {
		return nil, "", forbidden("Access denied. Admin accounts must use @admin.com email address.")
	}

	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, "", unauthorized("Invalid credentials")
		}
		return nil, "", err
	}

	if user.Role != entity.RoleAdmin {
		return nil, "", forbidden("Access denied. This account is not authorized as admin.")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", unauthorized("Invalid credentials")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", err
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetProfile(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, notFound("User not found")
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}
