package main

import (
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mrh0867/tango-with-django-project/app/accounts"
	"github.com/mrh0867/tango-with-django-project/app/catalog"
	"github.com/mrh0867/tango-with-django-project/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost user=rango password=rango dbname=rango sslmode=disable"
	}
	mediaDir := os.Getenv("MEDIA_DIR")
	if mediaDir == "" {
		mediaDir = "./media"
	}
	templatesDir := os.Getenv("TEMPLATES_DIR")
	if templatesDir == "" {
		templatesDir = "./templates"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Page{},
		&models.User{},
		&models.UserProfile{},
		&models.Session{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	tmpl, err := template.ParseGlob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	catalogHandler := catalog.NewCatalogHandler(
		models.NewCategoriesRepository(db),
		models.NewPagesRepository(db),
		tmpl,
	)
	accountsHandler := accounts.NewAccountsHandler(
		models.NewUsersRepository(db),
		models.NewSessionsRepository(db),
		tmpl,
		mediaDir,
	)

	mux := http.NewServeMux()

	// Uploaded profile pictures
	mux.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))

	mux.HandleFunc("GET /{$}", catalogHandler.HandleIndex)
	mux.HandleFunc("GET /about/{$}", catalogHandler.HandleAbout)

	mux.HandleFunc("GET /category/{slug}/{$}", catalogHandler.HandleDetail)
	mux.HandleFunc("GET /category/add/{$}", catalogHandler.HandleAddCategoryForm)
	mux.HandleFunc("POST /category/add/{$}", catalogHandler.HandleAddCategory)
	mux.HandleFunc("GET /category/{slug}/add_page/{$}", catalogHandler.HandleAddPageForm)
	mux.HandleFunc("POST /category/{slug}/add_page/{$}", catalogHandler.HandleAddPage)

	mux.HandleFunc("GET /register/{$}", accountsHandler.HandleRegisterForm)
	mux.HandleFunc("POST /register/{$}", accountsHandler.HandleRegister)
	mux.HandleFunc("GET /login/{$}", accountsHandler.HandleLoginForm)
	mux.HandleFunc("POST /login/{$}", accountsHandler.HandleLogin)
	mux.HandleFunc("GET /logout/{$}", accountsHandler.RequireLogin(accountsHandler.HandleLogout))
	mux.HandleFunc("GET /restricted/{$}", accountsHandler.RequireLogin(accountsHandler.HandleRestricted))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on :%s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
