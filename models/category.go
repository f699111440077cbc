package models

// Category represents a named grouping of pages.
// It carries aggregate like and view counters used for ranking.
type Category struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:128;uniqueIndex;not null"`
	Likes int    `gorm:"not null;default:0"`
	Views int    `gorm:"not null;default:0"`
	Pages []Page `gorm:"foreignKey:CategoryID"`
}

func (c *Category) TableName() string {
	return "categories"
}
