package mailer

import (
	"testing"

	"event-management-api/internal/mailer"

	"github.com/stretchr/testify/assert"
)

func TestConfirmationBodies(t *testing.T) {
	text, html := mailer.ConfirmationBodies("John Doe", "Tech Conference 2024")

	assert.Contains(t, text, "John Doe")
	assert.Contains(t, text, "Tech Conference 2024")
	assert.NotContains(t, text, "<")

	assert.Contains(t, html, "John Doe")
	assert.Contains(t, html, "<strong>Tech Conference 2024</strong>")
}
