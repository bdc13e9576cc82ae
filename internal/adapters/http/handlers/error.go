package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/novashop/inventory/internal/core/serviceerrors"
)

func HandleError(c *gin.Context, err error) {
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		status := mapKindToHTTP(svcErr.Kind)
		c.JSON(status, NewErrorDocument(strconv.Itoa(status), titleFor(status), svcErr.Message))
		return
	}

	c.JSON(http.StatusInternalServerError, NewErrorDocument(
		strconv.Itoa(http.StatusInternalServerError),
		"Internal server error",
		err.Error(),
	))
}

func mapKindToHTTP(kind serviceerrors.ErrorKind) int {
	switch kind {
	case serviceerrors.KindNotFound:
		return http.StatusNotFound
	case serviceerrors.KindConflict:
		return http.StatusConflict
	case serviceerrors.KindUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case serviceerrors.KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func titleFor(status int) string {
	switch status {
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusBadRequest:
		return "Invalid request"
	case http.StatusConflict:
		return "Conflict"
	case http.StatusUnprocessableEntity:
		return "Unprocessable entity"
	default:
		return "Internal server error"
	}
}
