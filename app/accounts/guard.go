package accounts

import "net/http"

// RequireLogin wraps a handler with a session check. Requests without a
// valid session are redirected to the login page instead of reaching
// the handler body.
func (h *AccountsHandler) RequireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			http.Redirect(w, r, "/login/", http.StatusSeeOther)
			return
		}
		if _, err := h.sessions.Get(cookie.Value); err != nil {
			http.Redirect(w, r, "/login/", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
