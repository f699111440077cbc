package catalog

import (
	"errors"
	"log"
	"net/http"

	"github.com/mrh0867/tango-with-django-project/models"
)

func (h *CatalogHandler) HandleAddCategoryForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "add_category.html", map[string]any{
		"Form": &CategoryForm{},
	})
}

func (h *CatalogHandler) HandleAddCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	form := &CategoryForm{Name: r.FormValue("name")}
	if form.Validate() {
		err := h.categories.Create(&models.Category{Name: form.Name})
		switch {
		case err == nil:
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		case errors.Is(err, models.ErrDuplicateCategory):
			form.Errors["Name"] = "A category with this name already exists."
		default:
			http.Error(w, "failed to create category", http.StatusInternalServerError)
			return
		}
	}

	log.Printf("add category rejected: %v", form.Errors)
	h.render(w, "add_category.html", map[string]any{
		"Form": form,
	})
}

func (h *CatalogHandler) HandleAddPageForm(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	h.render(w, "add_page.html", map[string]any{
		"CategoryName": DecodeCategorySlug(slug),
		"CategorySlug": slug,
		"Form":         &PageForm{},
	})
}

func (h *CatalogHandler) HandleAddPage(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	name := DecodeCategorySlug(slug)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	form := &PageForm{
		Title: r.FormValue("title"),
		URL:   r.FormValue("url"),
	}
	if form.Validate() {
		category, err := h.categories.GetByName(name)
		switch {
		case err == nil:
			page := &models.Page{
				CategoryID: category.ID,
				Title:      form.Title,
				URL:        form.URL,
				Views:      0,
			}
			if err := h.pages.Create(page); err != nil {
				http.Error(w, "failed to create page", http.StatusInternalServerError)
				return
			}
			http.Redirect(w, r, "/category/"+slug+"/", http.StatusSeeOther)
			return
		case errors.Is(err, models.ErrCategoryNotFound):
			form.Errors["Category"] = "This category does not exist."
		default:
			http.Error(w, "failed to fetch category", http.StatusInternalServerError)
			return
		}
	}

	log.Printf("add page to %q rejected: %v", name, form.Errors)
	h.render(w, "add_page.html", map[string]any{
		"CategoryName": name,
		"CategorySlug": slug,
		"Form":         form,
	})
}
