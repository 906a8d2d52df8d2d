package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shopfront/forms"
	"shopfront/payments"
	"shopfront/store"
)

// soon suggests a default card expiry about a month out.
func soon() time.Time {
	return time.Now().AddDate(0, 1, 0)
}

func (h *Handler) registerContext(form forms.RegisterForm, errs map[string]string) gin.H {
	months := make([]int, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, m)
	}

	years := make([]int, 0, 20)
	start := time.Now().Year()
	for y := start; y < start+20; y++ {
		years = append(years, y)
	}

	expiry := soon()
	return gin.H{
		"Title":       "Register",
		"Form":        form,
		"Errors":      errs,
		"Months":      months,
		"Years":       years,
		"SoonMonth":   int(expiry.Month()),
		"SoonYear":    expiry.Year(),
		"Publishable": h.Config.StripePublishableKey,
	}
}

func (h *Handler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", h.registerContext(forms.RegisterForm{}, nil))
}

// Register handles the registration POST: validate, create the
// payment customer, persist the user, establish the session. Every
// failure re-renders the form; only full success redirects.
func (h *Handler) Register(c *gin.Context) {
	var form forms.RegisterForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(); len(errs) > 0 {
		c.HTML(http.StatusOK, "register.html", h.registerContext(form, errs))
		return
	}

	user, err := h.Signup.Register(form)
	if err != nil {
		c.HTML(http.StatusOK, "register.html", h.registerContext(form, registrationErrors(err)))
		return
	}

	token, err := generateToken(user.ID, user.Email)
	if err != nil {
		// The account exists either way; send them to sign in.
		c.Redirect(http.StatusFound, "/sign_in")
		return
	}

	setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

func registrationErrors(err error) map[string]string {
	var procErr *payments.ProcessorError
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		return map[string]string{"email": "A user with that email already exists."}
	case errors.As(err, &procErr):
		msg := procErr.Message
		if msg == "" {
			msg = "Your card could not be processed."
		}
		return map[string]string{"form": msg}
	default:
		return map[string]string{"form": "Registration failed. Please try again."}
	}
}
