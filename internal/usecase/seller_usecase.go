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

// RegisterSellerInput carries the seller registration form. Address is
// the only optional field.
type RegisterSellerInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	InstitutionName string
	Address         string
}

type SellerAuthUseCase interface {
	RegisterSeller(in RegisterSellerInput) (*entity.Seller, string, error)
	LoginSeller(email, password string) (*entity.Seller, string, error)
}

type sellerAuthUseCase struct {
	sellerRepo persistent.SellerRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewSellerAuthUseCase(sellerRepo persistent.SellerRepository, jwtService *jwt.Service, logger *logger.Logger) SellerAuthUseCase {
	return &sellerAuthUseCase{
		sellerRepo: sellerRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *sellerAuthUseCase) RegisterSeller(in RegisterSellerInput) (*entity.Seller, string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" || in.Phone == "" || in.InstitutionName == "" {
		return nil, "", badRequest("Please fill all required fields")
	}

	email := normalizeEmail(in.Email)

	if !strings.HasSuffix(email, entity.InstitutionalDomain) {
		return nil, "", badRequest("Email must be an institutional @edu.com email")
	}

	if in.Password != in.ConfirmPassword {
		return nil, "", badRequest("Passwords do not match")
	}

	_, err := uc.sellerRepo.GetByEmail(email)
	if err == nil {
		return nil, "", badRequest("Seller with this email already exists")
	}
	if !errors.Is(err, persistent.ErrNotFound) {
		uc.logger.Error("Failed to look up seller %s: %v", email, err)
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", err
	}

	// IsVerified and IsActive are creation defaults; no endpoint
	// documented here flips them.
	seller := &entity.Seller{
		Name:            in.Name,
		Email:           email,
		Password:        string(hashedPassword),
		Phone:           in.Phone,
		InstitutionName: in.InstitutionName,
		Address:         in.Address,
		IsVerified:      false,
		IsActive:        true,
	}

	if err := uc.sellerRepo.Create(seller); err != nil {
		uc.logger.Error("Failed to create seller: %v", err)
		return nil, "", err
	}

	token, err := uc.jwtService.GenerateToken(seller.ID, "seller")
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", err
	}

	seller.Password = ""
	return seller, token, nil
}

func (uc *sellerAuthUseCase) LoginSeller(email, password string) (*entity.Seller, string, error) {
	if email == "" || password == "" {
		return nil, "", badRequest("Please provide email and password")
	}

	email = normalizeEmail(email)

	if !strings.HasSuffix(email, entity.InstitutionalDomain) {
		return nil, "", badRequest("Only @edu.com institutional emails are allowed")
	}

	seller, err := uc.sellerRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, "", unauthorized("Invalid email or password")
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(seller.Password), []byte(password)) != nil {
		return nil, "", unauthorized("Invalid email or password")
	}

	token, err := uc.jwtService.GenerateToken(seller.ID, "seller")
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", err
	}

	seller.Password = ""
	return seller, token, nil
}
