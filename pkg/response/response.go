package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/liyu-tw/coursepick/pkg/apperrors"
)

// Envelope is the shape of every body the HTTP surface writes: either data
// (with optional meta) or an error, never both.
type Envelope struct {
	Data  any              `json:"data,omitempty"`
	Error *apperrors.Error `json:"error,omitempty"`
	Meta  map[string]any   `json:"meta,omitempty"`
}

// JSON writes data under the envelope, attaching meta when given.
func JSON(c *gin.Context, status int, data any, meta ...map[string]any) {
	envelope := Envelope{Data: data}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// Created writes data with HTTP 201.
func Created(c *gin.Context, data any) {
	JSON(c, http.StatusCreated, data)
}

// Error writes err under the envelope, using the status carried by the error.
func Error(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// NoContent answers 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
