package handler

import (
	"errors"
	"io"
	"net/http"

	"ppocha-economy/internal/adapter/http/middleware"
	"ppocha-economy/internal/core/domain"
	"ppocha-economy/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// bindBody decodes a JSON body into obj. An empty body counts as {} so that
// every field takes its default; validation still runs.
func bindBody(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(obj)
	}
	return bindError(err, "invalid JSON body")
}

// bindQuery decodes and validates the query string into obj.
func bindQuery(c *gin.Context, obj any) error {
	return bindError(c.ShouldBindQuery(obj), "invalid query")
}

// bindError turns a binding failure into a client-facing message naming the
// first offending field. Decoder internals never reach the client.
func bindError(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperror.Validation("invalid " + verrs[0].Field())
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.Validation("request body too large")
	}
	return apperror.Validation(fallback)
}

// resolveUID applies the guest default and records the uid for the request
// logger and audit middleware.
func resolveUID(c *gin.Context, uid string) string {
	if uid == "" {
		uid = domain.GuestUserID
	}
	c.Set(middleware.CtxUserID, uid)
	return uid
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
