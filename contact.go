package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// acknowledgment builds the thank-you line shown after the contact form is submitted.
func acknowledgment(name, email string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("Thanks %s! Please email me directly at %s.", name, email)
}

// Handle contact form submission. Nothing is sent anywhere: the visitor gets
// the acknowledgment and an empty form back.
func (s *Server) contact(c *gin.Context) {
	status := acknowledgment(c.PostForm("name"), s.cfg.ContactEmail)

	// HTMX swaps the returned form in place of the submitted one
	if c.GetHeader("HX-Request") == "true" {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"status": status,
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", s.pageData(status))
}
