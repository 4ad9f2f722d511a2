package audit

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// The audit trail is a structured logrus stream, separate from gin's access
// log. Every mutation handler writes exactly one line here.
var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// SetOutput redirects the audit stream. Tests capture it with a buffer.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Event records one audit line for a handled request, tagged with the
// request id set by the middleware.
func Event(c *gin.Context, format string, args ...interface{}) {
	entry := logrus.NewEntry(log)
	if c != nil {
		if rid := c.GetString("request_id"); rid != "" {
			entry = entry.WithField("request_id", rid)
		}
		if actor := c.GetString("username"); actor != "" {
			entry = entry.WithField("actor", actor)
		}
	}
	entry.Infof(format, args...)
}
