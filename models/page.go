package models

// Page is a single external link belonging to one category.
type Page struct {
	ID         uint     `gorm:"primaryKey"`
	CategoryID uint     `gorm:"not null"`
	Category   Category `gorm:"foreignKey:CategoryID"`
	Title      string   `gorm:"size:128;not null"`
	URL        string   `gorm:"not null"`
	Views      int      `gorm:"not null;default:0"`
}

func (p *Page) TableName() string {
	return "pages"
}
