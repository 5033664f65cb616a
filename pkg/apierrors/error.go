package apierrors

import (
	"fmt"
	"net/http"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/pkg/translator"
)

// ErrorBody is the failure half of the response envelope:
// {"success": false, "error": "..."}.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"error"`
}

// Error implements the error interface for ErrorBody.
func (e ErrorBody) Error() string {
	return fmt.Sprintf("success=%t, message=%s", e.Success, e.Message)
}

// StatusFor is the single exhaustive mapping from error kind to HTTP status.
// Nothing else in the codebase translates kinds to status codes. Conflict
// rides on 400 to keep the original duplicate-name contract.
func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidReference, domain.KindValidationFailed, domain.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// CreateError generates an ErrorBody with a translated message.
func CreateError(msgKey string, lang string) ErrorBody {
	return ErrorBody{Success: false, Message: GetTransErrorMsg(msgKey, lang)}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
