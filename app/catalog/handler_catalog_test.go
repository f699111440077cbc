package catalog

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrh0867/tango-with-django-project/models"
)

// --- Mock Repositories ---

type MockCategoryRepo struct {
	Categories   []models.Category
	ByName       map[string]*models.Category
	ListErr      error
	GetErr       error
	CreateErr    error
	LastLimit    int
	LastName     string
	LastSaved    *models.Category
	GetWasCalled bool
}

func (m *MockCategoryRepo) TopByLikes(limit int) ([]models.Category, error) {
	m.LastLimit = limit
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if len(m.Categories) > limit {
		return m.Categories[:limit], nil
	}
	return m.Categories, nil
}

func (m *MockCategoryRepo) GetByName(name string) (*models.Category, error) {
	m.GetWasCalled = true
	m.LastName = name
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if c, ok := m.ByName[name]; ok {
		return c, nil
	}
	return nil, models.ErrCategoryNotFound
}

func (m *MockCategoryRepo) Create(category *models.Category) error {
	m.LastSaved = category
	return m.CreateErr
}

type MockPageRepo struct {
	Pages        []models.Page
	ListErr      error
	CreateErr    error
	LastCategory uint
	LastLimit    int
	LastSaved    *models.Page
}

func (m *MockPageRepo) TopByViews(categoryID uint, limit int) ([]models.Page, error) {
	m.LastCategory = categoryID
	m.LastLimit = limit
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Pages, nil
}

func (m *MockPageRepo) Create(page *models.Page) error {
	m.LastSaved = page
	return m.CreateErr
}

func testTemplates(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := template.ParseGlob("../../templates/*.html")
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	return tmpl
}

// --- Tests: GET / ---

func TestHandleIndex(t *testing.T) {
	testCases := []struct {
		name          string
		repo          *MockCategoryRepo
		checkResponse func(t *testing.T, rec *httptest.ResponseRecorder, repo *MockCategoryRepo)
	}{
		{
			name: "Categories listed with slug links",
			repo: &MockCategoryRepo{
				Categories: []models.Category{
					{ID: 1, Name: "Python", Likes: 64},
					{ID: 2, Name: "Other Frameworks", Likes: 32},
				},
			},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, repo *MockCategoryRepo) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "Python")
				assert.Contains(t, rec.Body.String(), `/category/Other_Frameworks/`)
			},
		},
		{
			name: "At most five categories requested",
			repo: &MockCategoryRepo{
				Categories: []models.Category{
					{Name: "A", Likes: 9}, {Name: "B", Likes: 8}, {Name: "C", Likes: 7},
					{Name: "D", Likes: 6}, {Name: "E", Likes: 5}, {Name: "F", Likes: 4},
				},
			},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, repo *MockCategoryRepo) {
				assert.Equal(t, 5, repo.LastLimit)
				assert.NotContains(t, rec.Body.String(), ">F<")
			},
		},
		{
			name: "Empty list renders the empty message",
			repo: &MockCategoryRepo{},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, repo *MockCategoryRepo) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "There are no categories present.")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCatalogHandler(tc.repo, &MockPageRepo{}, testTemplates(t))
			req := httptest.NewRequest("GET", "/", nil)
			rec := httptest.NewRecorder()

			handler.HandleIndex(rec, req)

			tc.checkResponse(t, rec, tc.repo)
		})
	}
}

// --- Tests: GET /category/{slug}/ ---

func TestHandleDetail(t *testing.T) {
	python := &models.Category{ID: 7, Name: "Python", Likes: 64, Views: 128}

	testCases := []struct {
		name          string
		slug          string
		categories    *MockCategoryRepo
		pages         *MockPageRepo
		checkResponse func(t *testing.T, rec *httptest.ResponseRecorder, pages *MockPageRepo)
	}{
		{
			name:       "Existing category lists its pages",
			slug:       "Python",
			categories: &MockCategoryRepo{ByName: map[string]*models.Category{"Python": python}},
			pages: &MockPageRepo{
				Pages: []models.Page{
					{Title: "Official Tutorial", URL: "http://docs.python.org/tutorial/", Views: 30},
					{Title: "Learn Python", URL: "http://www.learnpython.org/", Views: 5},
				},
			},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, pages *MockPageRepo) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "Official Tutorial")
				assert.Contains(t, rec.Body.String(), "Learn Python")
				assert.Equal(t, uint(7), pages.LastCategory)
				assert.Equal(t, 5, pages.LastLimit)
			},
		},
		{
			name:       "Slug is decoded before lookup",
			slug:       "Other_Frameworks",
			categories: &MockCategoryRepo{},
			pages:      &MockPageRepo{},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, pages *MockPageRepo) {
				assert.Contains(t, rec.Body.String(), "Other Frameworks")
			},
		},
		{
			name:       "Unknown category renders the not-found message",
			slug:       "NoSuchThing",
			categories: &MockCategoryRepo{},
			pages:      &MockPageRepo{},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, pages *MockPageRepo) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "NoSuchThing")
				assert.Contains(t, rec.Body.String(), "does not exist")
				assert.Zero(t, pages.LastLimit, "pages should not be fetched for a missing category")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCatalogHandler(tc.categories, tc.pages, testTemplates(t))
			req := httptest.NewRequest("GET", "/category/"+tc.slug+"/", nil)
			req.SetPathValue("slug", tc.slug)
			rec := httptest.NewRecorder()

			handler.HandleDetail(rec, req)

			tc.checkResponse(t, rec, tc.pages)
		})
	}
}

func TestHandleAbout(t *testing.T) {
	handler := NewCatalogHandler(&MockCategoryRepo{}, &MockPageRepo{}, testTemplates(t))
	req := httptest.NewRequest("GET", "/about/", nil)
	rec := httptest.NewRecorder()

	handler.HandleAbout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Here is more information")
}
