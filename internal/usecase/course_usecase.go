package usecase

import (
	"errors"
	"mime/multipart"
	"strconv"

	"edumart/internal/entity"
	"edumart/internal/repo/persistent"
	"edumart/pkg/logger"
	"edumart/pkg/upload"
)

// ImageStore abstracts the local-disk upload saver so usecases can be
// tested without touching the filesystem.
type ImageStore interface {
	Save(file *multipart.FileHeader, kind string) (string, error)
}

// CourseInput carries the multipart form fields of a course create or
// update. Numeric fields arrive as strings and are parsed here; on
// update, empty fields keep their prior values.
type CourseInput struct {
	Title         string
	Name          string
	AuthorName    string
	Description   string
	Price         string
	OriginalPrice string
	Category      string
	Duration      string
	Level         string
}

type CourseUseCase interface {
	Create(sellerID string, in CourseInput, image *multipart.FileHeader) (*entity.Course, error)
	Get(id string) (*entity.Course, error)
	List(filter persistent.ListingFilter) ([]*entity.Course, error)
	GetBySeller(sellerID string) ([]*entity.Course, error)
	Update(id, sellerID string, in CourseInput, image *multipart.FileHeader) (*entity.Course, error)
	Delete(id, sellerID string) error
	Enroll(id string) error
}

type courseUseCase struct {
	courseRepo persistent.CourseRepository
	images     ImageStore
	logger     *logger.Logger
}

func NewCourseUseCase(courseRepo persistent.CourseRepository, images ImageStore, logger *logger.Logger) CourseUseCase {
	return &courseUseCase{
		courseRepo: courseRepo,
		images:     images,
		logger:     logger,
	}
}

func (uc *courseUseCase) Create(sellerID string, in CourseInput, image *multipart.FileHeader) (*entity.Course, error) {
	if image == nil {
		return nil, badRequest("Course image is required")
	}

	switch {
	case in.Title == "":
		return nil, badRequest("Course title is required")
	case in.Name == "":
		return nil, badRequest("Course name is required")
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

	// originalPrice falls back to price when absent
	originalPrice := price
	if in.OriginalPrice != "" {
		originalPrice, err = parsePrice(in.OriginalPrice, "Original price")
		if err != nil {
			return nil, err
		}
	}

	level := entity.LevelBeginner
	if in.Level != "" {
		if !entity.ValidLevel(in.Level) {
			return nil, badRequest("Level must be one of Beginner, Intermediate, Advanced")
		}
		level = entity.CourseLevel(in.Level)
	}

	duration := in.Duration
	if duration == "" {
		duration = "Self-paced"
	}

	imagePath, err := uc.saveImage(image)
	if err != nil {
		return nil, err
	}

	course := &entity.Course{
		Title:         in.Title,
		Name:          in.Name,
		AuthorName:    in.AuthorName,
		Description:   in.Description,
		Price:         price,
		OriginalPrice: originalPrice,
		Category:      in.Category,
		Image:         imagePath,
		Duration:      duration,
		Level:         level,
		CreatedBy:     sellerID,
	}

	if err := uc.courseRepo.Create(course); err != nil {
		uc.logger.Error("Failed to create course: %v", err)
		return nil, err
	}

	return course, nil
}

func (uc *courseUseCase) Get(id string) (*entity.Course, error) {
	course, err := uc.courseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, notFound("Course not found")
		}
		return nil, err
	}
	return course, nil
}

func (uc *courseUseCase) List(filter persistent.ListingFilter) ([]*entity.Course, error) {
	return uc.courseRepo.List(filter)
}

func (uc *courseUseCase) GetBySeller(sellerID string) ([]*entity.Course, error) {
	return uc.courseRepo.GetBySellerID(sellerID)
}

func (uc *courseUseCase) Update(id, sellerID string, in CourseInput, image *multipart.FileHeader) (*entity.Course, error) {
	course, err := uc.courseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, notFound("Course not found")
		}
		return nil, err
	}

	// Ownership gate: only the creating seller may mutate a listing.
	if course.CreatedBy != sellerID {
		return nil, forbidden("Not authorized")
	}

	if in.Title != "" {
		course.Title = in.Title
	}
	if in.Name != "" {
		course.Name = in.Name
	}
	if in.AuthorName != "" {
		course.AuthorName = in.AuthorName
	}
	if in.Description != "" {
		course.Description = in.Description
	}
	if in.Category != "" {
		course.Category = in.Category
	}
	if in.Duration != "" {
		course.Duration = in.Duration
	}
	if in.Level != "" {
		if !entity.ValidLevel(in.Level) {
			return nil, badRequest("Level must be one of Beginner, Intermediate, Advanced")
		}
		course.Level = entity.CourseLevel(in.Level)
	}
	if in.Price != "" {
		price, err := parsePrice(in.Price, "Price")
		if err != nil {
			return nil, err
		}
		course.Price = price
	}
	if in.OriginalPrice != "" {
		originalPrice, err := parsePrice(in.OriginalPrice, "Original price")
		if err != nil {
			return nil, err
		}
		course.OriginalPrice = originalPrice
	}
	if image != nil {
		imagePath, err := uc.saveImage(image)
		if err != nil {
			return nil, err
		}
		course.Image = imagePath
	}

	if err := uc.courseRepo.Update(course); err != nil {
		uc.logger.Error("Failed to update course %s: %v", id, err)
		return nil, err
	}

	return course, nil
}

func (uc *courseUseCase) Delete(id, sellerID string) error {
	course, err := uc.courseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return notFound("Course not found")
		}
		return err
	}

	if course.CreatedBy != sellerID {
		return forbidden("Not authorized")
	}

	return uc.courseRepo.Delete(id)
}

// Enroll has no re-enrollment guard: every call increments the counter.
func (uc *courseUseCase) Enroll(id string) error {
	err := uc.courseRepo.IncrementEnrolled(id)
	if errors.Is(err, persistent.ErrNotFound) {
		return notFound("Course not found")
	}
	return err
}

func (uc *courseUseCase) saveImage(image *multipart.FileHeader) (string, error) {
	path, err := uc.images.Save(image, "course")
	if err != nil {
		if errors.Is(err, upload.ErrFileTooLarge) || errors.Is(err, upload.ErrNotAnImage) {
			return "", badRequest(err.Error())
		}
		uc.logger.Error("Failed to store course image: %v", err)
		return "", err
	}
	return path, nil
}

func parsePrice(value, field string) (float64, error) {
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, badRequest(field + " must be a valid number")
	}
	if price < 0 {
		return 0, badRequest(field + " cannot be negative")
	}
	return price, nil
}
