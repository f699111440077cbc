package catalog

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/mrh0867/tango-with-django-project/models"
)

// topN caps both the index category listing and the per-category page listing.
const topN = 5

// CategoryLink pairs a category with its URL slug for link generation,
// instead of writing the slug onto the fetched entity.
type CategoryLink struct {
	Category models.Category
	Slug     string
}

type CategoryProvider interface {
	TopByLikes(limit int) ([]models.Category, error)
	GetByName(name string) (*models.Category, error)
	Create(category *models.Category) error
}

type PageProvider interface {
	TopByViews(categoryID uint, limit int) ([]models.Page, error)
	Create(page *models.Page) error
}

type CatalogHandler struct {
	categories CategoryProvider
	pages      PageProvider
	tmpl       *template.Template
}

func NewCatalogHandler(categories CategoryProvider, pages PageProvider, tmpl *template.Template) *CatalogHandler {
	return &CatalogHandler{
		categories: categories,
		pages:      pages,
		tmpl:       tmpl,
	}
}

// HandleIndex shows the five most liked categories.
func (h *CatalogHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.TopByLikes(topN)
	if err != nil {
		http.Error(w, "failed to fetch categories", http.StatusInternalServerError)
		return
	}

	links := make([]CategoryLink, len(categories))
	for i, c := range categories {
		links[i] = CategoryLink{
			Category: c,
			Slug:     EncodeCategoryName(c.Name),
		}
	}

	h.render(w, "index.html", map[string]any{
		"Categories": links,
	})
}

func (h *CatalogHandler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	h.render(w, "about.html", map[string]any{
		"AboutMessage": "Here is more information",
	})
}

// HandleDetail shows one category and its five most viewed pages. An
// unknown slug still renders the template; it shows a "no such
// category" message when Category is absent from the data.
func (h *CatalogHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	name := DecodeCategorySlug(slug)

	data := map[string]any{
		"CategoryName": name,
		"CategorySlug": slug,
	}

	category, err := h.categories.GetByName(name)
	if err != nil {
		if !errors.Is(err, models.ErrCategoryNotFound) {
			http.Error(w, "failed to fetch category", http.StatusInternalServerError)
			return
		}
	} else {
		pages, err := h.pages.TopByViews(category.ID, topN)
		if err != nil {
			http.Error(w, "failed to fetch pages", http.StatusInternalServerError)
			return
		}
		data["Category"] = category
		data["Pages"] = pages
	}

	h.render(w, "category.html", data)
}

func (h *CatalogHandler) render(w http.ResponseWriter, name string, data any) {
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}
