package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront/middleware"
)

// Index renders the landing page: personalized when the session
// resolves to a user, anonymous otherwise.
func (h *Handler) Index(c *gin.Context) {
	if id, ok := middleware.CurrentUserID(c); ok {
		user, err := h.Users.GetByID(id)
		if err == nil {
			c.HTML(http.StatusOK, "user.html", gin.H{
				"Title": "Welcome",
				"User":  user,
			})
			return
		}
		// Session points at a user that no longer resolves; fall
		// through to the anonymous page.
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Home",
	})
}
