package httpx

import (
	"fmt"
	"net/http"

	"github.com/mbolis/survey-editor/log"
)

func entry(code string) *log.Entry {
	return log.WithFields(log.Fields{"code": code})
}

// LogInternalError logs err under code and answers 500 with the default text.
func LogInternalError(w http.ResponseWriter, code string, err error) {
	entry(code).WithError(err).Error("internal error")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// LogNotFound logs at debug which resource was missing, and answers 404.
// Callers that render their own 404 page log with NotFound instead.
func LogNotFound(w http.ResponseWriter, code string, id any) {
	NotFound(code, id)
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func NotFound(code string, id any) {
	entry(code).WithField("id", id).Debug("not found")
}

// LogStatus logs code at level and answers status with its default text.
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	entry(code).WithField("status", status).Log(level.Logrus(), http.StatusText(status))
	http.Error(w, http.StatusText(status), status)
}

// LogStatusMsg is LogStatus with a formatted message, sent to the client too.
func LogStatusMsg(w http.ResponseWriter, status int, level log.Level, code string, msg string, args ...any) {
	errMsg := fmt.Sprintf(msg, args...)
	entry(code).WithField("status", status).Log(level.Logrus(), errMsg)
	http.Error(w, errMsg, status)
}
