package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// ErrDuplicateCategory is returned when a category name already exists.
var ErrDuplicateCategory = errors.New("category already exists")

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

// TopByLikes returns up to limit categories ordered by likes, most liked first.
func (r *CategoriesRepository) TopByLikes(limit int) ([]Category, error) {
	var categories []Category
	if err := r.db.
		Order("likes DESC").
		Limit(limit).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepository) GetByName(name string) (*Category, error) {
	var category Category
	if err := r.db.
		Where("name = ?", name).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err // Other DB error
	}
	return &category, nil
}

func (r *CategoriesRepository) Create(category *Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCategory
		}
		return err
	}
	return nil
}
