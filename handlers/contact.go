package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront/forms"
	"shopfront/services"
)

func (h *Handler) ShowContact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Title":  "Contact",
		"Form":   forms.ContactForm{},
		"Errors": map[string]string(nil),
	})
}

func (h *Handler) SubmitContact(c *gin.Context) {
	var form forms.ContactForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(); len(errs) > 0 {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"Title":  "Contact",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	contact, err := h.Contacts.Create(form.Name, form.Email, form.Topic, form.Message)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "contact.html", gin.H{
			"Title":  "Contact",
			"Form":   form,
			"Errors": map[string]string{"form": "Could not save your message. Please try again."},
		})
		return
	}

	// Owner notification is best effort and must not delay the response.
	go services.SendContactAlert(*contact)

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Title":   "Contact",
		"Form":    forms.ContactForm{},
		"Errors":  map[string]string(nil),
		"Success": true,
	})
}

// ListContacts returns every submission as JSON, newest first.
func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.Contacts.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}
