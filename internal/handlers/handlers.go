package handlers

import (
	"log"
	"net/http"

	"github.com/gigtrack-dev/gigtrack/db"
	"github.com/gigtrack-dev/gigtrack/internal/auth"
	"github.com/gigtrack-dev/gigtrack/internal/core"
	"github.com/gin-gonic/gin"
)

// store builds the core facade over the shared connection.
func store() *core.Core {
	return core.New(db.DB, auth.BcryptHasher{})
}

// respondError maps a core error kind to a transport status. This is the
// only place that mapping lives; the core never sees HTTP.
func respondError(ctx *gin.Context, err error) {
	coreErr, ok := core.AsError(err)

	if !ok {
		log.Printf("Unexpected error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	switch coreErr.Kind {
	case core.KindValidation:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": coreErr.Fields})
	case core.KindNotFound:
		ctx.JSON(http.StatusNotFound, gin.H{"error": coreErr.Message})
	case core.KindUnauthorized:
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": coreErr.Message})
	case core.KindForbidden:
		ctx.JSON(http.StatusForbidden, gin.H{"error": coreErr.Message})
	case core.KindConflict:
		ctx.JSON(http.StatusConflict, gin.H{"error": coreErr.Message})
	case core.KindMissingReference:
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": coreErr.Message})
	default:
		log.Printf("Storage error: %v", coreErr)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
