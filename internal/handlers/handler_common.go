package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// resourceIDPattern mirrors how the route table matches path identifiers:
// lowercase hex and hyphens only.
var resourceIDPattern = regexp.MustCompile(`^[a-f0-9-]+$`)

// resourceID extracts and validates a path identifier. Identifiers that the
// route table would never have matched get the same 404 body the router
// gives unknown endpoints.
func resourceID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if !resourceIDPattern.MatchString(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
		return "", false
	}
	return id, true
}

// bindingErrorDetail summarizes a binding failure for logs. Validation
// failures list the offending fields instead of the full validator message.
func bindingErrorDetail(err error) slog.Attr {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fe.Field()
		}
		return slog.String("invalid_fields", strings.Join(fields, ","))
	}
	return slog.String("error", err.Error())
}
