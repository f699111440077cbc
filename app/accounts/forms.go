package accounts

import (
	"fmt"
	"net/url"
)

const maxUsernameLength = 150

// UserForm carries submitted account credentials plus any field errors.
type UserForm struct {
	Username string
	Password string
	Errors   map[string]string
}

func (f *UserForm) Validate() bool {
	f.Errors = map[string]string{}
	if f.Username == "" {
		f.Errors["Username"] = "Username is required."
	} else if len(f.Username) > maxUsernameLength {
		f.Errors["Username"] = fmt.Sprintf("Username must be at most %d characters.", maxUsernameLength)
	}
	if f.Password == "" {
		f.Errors["Password"] = "Password is required."
	}
	return len(f.Errors) == 0
}

// ProfileForm carries the optional profile attributes. Both fields may
// be left empty; a submitted website must be a well-formed URL.
type ProfileForm struct {
	Website string
	Errors  map[string]string
}

func (f *ProfileForm) Validate() bool {
	f.Errors = map[string]string{}
	if f.Website != "" && !isWellFormedURL(f.Website) {
		f.Errors["Website"] = "Enter a valid URL."
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
