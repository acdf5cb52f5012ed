// Package flash implements one-shot user notices on top of the session
// store: a notice added during one request is rendered by the next page
// load and then discarded.
package flash

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Notice severities.
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// Notice is a single pending user-visible message.
type Notice struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Add queues a notice for the next rendered page.
func Add(c *gin.Context, severity, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, severity)
	// A lost notice degrades the page, not the operation.
	_ = session.Save()
}

// Success queues a success notice.
func Success(c *gin.Context, message string) {
	Add(c, SeveritySuccess, message)
}

// Error queues an error notice.
func Error(c *gin.Context, message string) {
	Add(c, SeverityError, message)
}

// Consume returns all pending notices and clears them from the session.
func Consume(c *gin.Context) []Notice {
	session := sessions.Default(c)

	var notices []Notice
	for _, severity := range []string{SeveritySuccess, SeverityError} {
		for _, v := range session.Flashes(severity) {
			if message, ok := v.(string); ok {
				notices = append(notices, Notice{Severity: severity, Message: message})
			}
		}
	}

	if len(notices) > 0 {
		_ = session.Save()
	}
	return notices
}
