package models

import "gorm.io/gorm"

type PagesRepository struct {
	db *gorm.DB
}

func NewPagesRepository(db *gorm.DB) *PagesRepository {
	return &PagesRepository{
		db: db,
	}
}

// TopByViews returns up to limit pages in a category, most viewed first.
func (r *PagesRepository) TopByViews(categoryID uint, limit int) ([]Page, error) {
	var pages []Page
	if err := r.db.
		Where("category_id = ?", categoryID).
		Order("views DESC").
		Limit(limit).
		Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *PagesRepository) Create(page *Page) error {
	return r.db.Create(page).Error
}
