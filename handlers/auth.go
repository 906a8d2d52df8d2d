package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"shopfront/forms"
)

func (h *Handler) ShowSignIn(c *gin.Context) {
	c.HTML(http.StatusOK, "sign_in.html", gin.H{
		"Title":  "Sign In",
		"Form":   forms.SignInForm{},
		"Errors": map[string]string(nil),
	})
}

func (h *Handler) SignIn(c *gin.Context) {
	var form forms.SignInForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(); len(errs) > 0 {
		c.HTML(http.StatusOK, "sign_in.html", gin.H{
			"Title":  "Sign In",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	user, err := h.Users.GetByEmail(form.Email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)) != nil {
		// Same message for unknown email and wrong password.
		c.HTML(http.StatusOK, "sign_in.html", gin.H{
			"Title":  "Sign In",
			"Form":   form,
			"Errors": map[string]string{"form": "Invalid email or password."},
		})
		return
	}

	token, err := generateToken(user.ID, user.Email)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "sign_in.html", gin.H{
			"Title":  "Sign In",
			"Form":   form,
			"Errors": map[string]string{"form": "Could not sign you in. Please try again."},
		})
		return
	}

	setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

// SignOut clears the session and redirects. Safe to call with no
// session at all.
func (h *Handler) SignOut(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
