package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/middleware"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/pkg/apierrors"
)

// errKeys lets each handler pick entity-specific translation keys for the
// kinds where a generic message would read poorly.
type errKeys struct {
	notFound string
	conflict string
}

// respondError renders a core error through the single kind→status table.
// Internal failures are logged with their cause; the client only ever sees
// the generic server-error message.
func respondError(c *gin.Context, err error, keys errKeys) {
	lang := middleware.GetLang(c)
	kind := domain.KindOf(err)
	status := apierrors.StatusFor(kind)

	var key string
	switch kind {
	case domain.KindUnauthenticated:
		key = apierrors.MsgUnauthenticated
	case domain.KindForbidden:
		key = apierrors.MsgNotAuthorized
	case domain.KindNotFound:
		key = keys.notFound
	case domain.KindInvalidReference:
		// The only dangling reference reachable through the API is a task's
		// category.
		key = apierrors.MsgCategoryNotFound
	case domain.KindValidationFailed:
		key = apierrors.MsgValidationFailed
	case domain.KindConflict:
		key = keys.conflict
	default:
		zap.L().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		key = apierrors.MsgServerError
	}
	if key == "" {
		key = apierrors.MsgServerError
	}

	c.JSON(status, apierrors.CreateError(key, lang))
}

func respondBadPayload(c *gin.Context) {
	c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidPayload, middleware.GetLang(c)))
}
