package middleware

import (
	"fmt"
	"net/http"

	"recurring_dashboard/internal/infrastructure/logger"
	"recurring_dashboard/pkg"

	"github.com/gin-gonic/gin"
)

func Recoverer(logg *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		if logg != nil {
			ctx := logg.WithField(c.Request.Context(), "panic", fmt.Sprint(recovered))
			logg.Error(ctx, "panic.recovered", err)
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
