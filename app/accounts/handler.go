package accounts

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrh0867/tango-with-django-project/models"
)

// sessionCookie names the cookie carrying the session ID.
const sessionCookie = "sessionid"

type UserProvider interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	CreateProfile(profile *models.UserProfile) error
}

type SessionProvider interface {
	Create(userID uint) (*models.Session, error)
	Get(id string) (*models.Session, error)
	Delete(id string) error
}

type AccountsHandler struct {
	users    UserProvider
	sessions SessionProvider
	tmpl     *template.Template
	mediaDir string
}

func NewAccountsHandler(users UserProvider, sessions SessionProvider, tmpl *template.Template, mediaDir string) *AccountsHandler {
	return &AccountsHandler{
		users:    users,
		sessions: sessions,
		tmpl:     tmpl,
		mediaDir: mediaDir,
	}
}

func (h *AccountsHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", map[string]any{
		"UserForm":    &UserForm{},
		"ProfileForm": &ProfileForm{},
		"Registered":  false,
	})
}

// HandleRegister creates an account and its linked profile. The account
// and profile forms are validated independently and both must pass.
func (h *AccountsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	// The form may arrive multipart (picture upload) or urlencoded.
	if err := r.ParseMultipartForm(10 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	userForm := &UserForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	profileForm := &ProfileForm{
		Website: r.FormValue("website"),
	}

	userOK := userForm.Validate()
	profileOK := profileForm.Validate()

	registered := false
	if userOK && profileOK {
		hash, err := bcrypt.GenerateFromPassword([]byte(userForm.Password), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "failed to create account", http.StatusInternalServerError)
			return
		}

		user := &models.User{
			Username: userForm.Username,
			Password: string(hash),
			Active:   true,
		}
		err = h.users.Create(user)
		switch {
		case err == nil:
			profile := &models.UserProfile{
				UserID:  user.ID,
				Website: profileForm.Website,
			}
			if _, header, err := r.FormFile("picture"); err == nil {
				picture, err := h.savePicture(header)
				if err != nil {
					http.Error(w, "failed to store picture", http.StatusInternalServerError)
					return
				}
				profile.Picture = picture
			}
			if err := h.users.CreateProfile(profile); err != nil {
				http.Error(w, "failed to create profile", http.StatusInternalServerError)
				return
			}
			registered = true
		case errors.Is(err, models.ErrDuplicateUser):
			userForm.Errors["Username"] = "This username is already taken."
		default:
			http.Error(w, "failed to create account", http.StatusInternalServerError)
			return
		}
	}

	if !registered {
		log.Printf("registration rejected: user=%v profile=%v", userForm.Errors, profileForm.Errors)
	}

	h.render(w, "register.html", map[string]any{
		"UserForm":    userForm,
		"ProfileForm": profileForm,
		"Registered":  registered,
	})
}

func (h *AccountsHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", nil)
}

func (h *AccountsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.users.GetByUsername(username)
	if err != nil {
		if !errors.Is(err, models.ErrUserNotFound) {
			http.Error(w, "failed to look up account", http.StatusInternalServerError)
			return
		}
		h.rejectLogin(w, username)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		h.rejectLogin(w, username)
		return
	}

	if !user.Active {
		fmt.Fprint(w, "Your Rango account is disabled.")
		return
	}

	session, err := h.sessions.Create(user.ID)
	if err != nil {
		http.Error(w, "failed to establish session", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// rejectLogin answers a failed attempt. Only the username is logged.
func (h *AccountsHandler) rejectLogin(w http.ResponseWriter, username string) {
	log.Printf("invalid login attempt for %q", username)
	fmt.Fprint(w, "Invalid login details supplied.")
}

func (h *AccountsHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := h.sessions.Delete(cookie.Value); err != nil {
			log.Printf("delete session: %v", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AccountsHandler) HandleRestricted(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "Since you're logged in, you can see this response.")
}

func (h *AccountsHandler) render(w http.ResponseWriter, name string, data any) {
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}
