package render

import (
	"github.com/crucial707/postboard/internal/forms"
	"github.com/crucial707/postboard/internal/models"
)

// Page is the data every template receives. Fields a page does not use stay zero.
type Page struct {
	Users []models.User
	Posts []models.Post

	// ID is the record being edited.
	ID int
	// Values pre-fills form inputs, keyed by field name.
	Values map[string]string
	Errors forms.Errors

	Status  int
	Message string
}
