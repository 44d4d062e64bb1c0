package usecase

import (
	"errors"
	"mime/multipart"

	"edumart/internal/entity"
	"edumart/internal/repo/persistent"
	"edumart/pkg/logger"
	"edumart/pkg/upload"
)

type ProductInput struct {
	Title         string
	Name          string
	AuthorName    string
	Description   string
	Price         string
	OriginalPrice string
	Category      string
}

type ProductUseCase interface {
	Create(sellerID string, in ProductInput, image *multipart.FileHeader) (*entity.Product, error)
	Get(id string) (*entity.Product, error)
	List(filter persistent.ListingFilter) ([]*entity.Product, error)
	GetBySeller(sellerID string) ([]*entity.Product, error)
	Update(id, sellerID string, in ProductInput, image *multipart.FileHeader) (*entity.Product, error)
	Delete(id, sellerID string) error
}

type productUseCase struct {
	productRepo persistent.ProductRepository
	images      ImageStore
	logger      *logger.Logger
}

func NewProductUseCase(productRepo persistent.ProductRepository, images ImageStore, logger *logger.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: productRepo,
		images:      images,
		logger:      logger,
	}
}

func (uc *productUseCase) Create(sellerID string, in ProductInput, image *multipart.FileHeader) (*entity.Product, error) {
	if image == nil {
		return nil, badRequest("Product image is required")
	}

	switch {
	case in.Title == "":
		return nil, badRequest("Product title is required")
	case in.Name == "":
		return nil, badRequest("Product name is required")
	case in.AuthorName == "":
		return nil, badRequest("Author name is required")
	case in.Description == "":
		return nil, badRequest("Description is required")
	case in.Category == "":
		return nil, badRequest("Category is required")
	}

	price, err := parsePrice(in.Price, "Price")
	if err != nil {
		return nil, err
	}

	originalPrice := price
	if in.OriginalPrice != "" {
		originalPrice, err = parsePrice(in.OriginalPrice, "Original price")
		if err != nil {
			return nil, err
		}
	}

	imagePath, err := uc.saveImage(image)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Title:         in.Title,
		Name:          in.Name,
		AuthorName:    in.AuthorName,
		Description:   in.Description,
		Price:         price,
		OriginalPrice: originalPrice,
		Category:      in.Category,
		Image:         imagePath,
		CreatedBy:     sellerID,
	}

	if err := uc.productRepo.Create(product); err != nil {
		uc.logger.Error("Failed to create product: %v", err)
		return nil, err
	}

	return product, nil
}

func (uc *productUseCase) Get(id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, notFound("Product not found")
		}
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) List(filter persistent.ListingFilter) ([]*entity.Product, error) {
	return uc.productRepo.List(filter)
}

func (uc *productUseCase) GetBySeller(sellerID string) ([]*entity.Product, error) {
	return uc.productRepo.GetBySellerID(sellerID)
}

func (uc *productUseCase) Update(id, sellerID string, in ProductInput, image *multipart.FileHeader) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, notFound("Product not found")
		}
		return nil, err
	}

	if product.CreatedBy != sellerID {
		return nil, forbidden("Not authorized")
	}

	if in.Title != "" {
		product.Title = in.Title
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.AuthorName != "" {
		product.AuthorName = in.AuthorName
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Category != "" {
		product.Category = in.Category
	}
	if in.Price != "" {
		price, err := parsePrice(in.Price, "Price")
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if in.OriginalPrice != "" {
		originalPrice, err := parsePrice(in.OriginalPrice, "Original price")
		if err != nil {
			return nil, err
		}
		product.OriginalPrice = originalPrice
	}
	if image != nil {
		imagePath, err := uc.saveImage(image)
		if err != nil {
			return nil, err
		}
		product.Image = imagePath
	}

	if err := uc.productRepo.Update(product); err != nil {
		uc.logger.Error("Failed to update product %s: %v", id, err)
		return nil, err
	}

	return product, nil
}

func (uc *productUseCase) Delete(id, sellerID string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return notFound("Product not found")
		}
		return err
	}

	if product.CreatedBy != sellerID {
		return forbidden("Not authorized")
	}

	return uc.productRepo.Delete(id)
}

func (uc *productUseCase) saveImage(image *multipart.FileHeader) (string, error) {
	path, err := uc.images.Save(image, "product")
	if err != nil {
		if errors.Is(err, upload.ErrFileTooLarge) || errors.Is(err, upload.ErrNotAnImage) {
			return "", badRequest(err.Error())
		}
		uc.logger.Error("Failed to store product image: %v", err)
		return "", err
	}
	return path, nil
}
