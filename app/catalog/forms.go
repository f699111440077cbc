package catalog

import (
	"fmt"
	"net/url"
)

const maxNameLength = 128

// CategoryForm carries a submitted category name plus any field errors,
// so an invalid submission can be re-rendered with the user's input.
type CategoryForm struct {
	Name   string
	Errors map[string]string
}

func (f *CategoryForm) Validate() bool {
	f.Errors = map[string]string{}
	if f.Name == "" {
		f.Errors["Name"] = "Name is required."
	} else if len(f.Name) > maxNameLength {
		f.Errors["Name"] = fmt.Sprintf("Name must be at most %d characters.", maxNameLength)
	}
	return len(f.Errors) == 0
}

// PageForm carries submitted page fields plus any field errors.
type PageForm struct {
	Title  string
	URL    string
	Errors map[string]string
}

func (f *PageForm) Validate() bool {
	f.Errors = map[string]string{}
	if f.Title == "" {
		f.Errors["Title"] = "Title is required."
	} else if len(f.Title) > maxNameLength {
		f.Errors["Title"] = fmt.Sprintf("Title must be at most %d characters.", maxNameLength)
	}
	if f.URL == "" {
		f.Errors["URL"] = "URL is required."
	} else if !isWellFormedURL(f.URL) {
		f.Errors["URL"] = "Enter a valid URL."
	}
	return len(f.Errors) == 0
}

func isWellFormedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
