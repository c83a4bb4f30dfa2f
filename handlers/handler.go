package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"HospitalManagement/middlewares"
	"HospitalManagement/repositories"
	"HospitalManagement/services"
	"HospitalManagement/utils"

	"github.com/gin-gonic/gin"
)

type validatable interface {
	Validate() error
}

// parseID reads the :id path parameter. It writes a 400 and returns false when
// the parameter is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		middlewares.RespondValidation(c, map[string][]string{"id": {"must be a positive integer"}})
		return 0, false
	}
	return uint(id), true
}

// bindRequest decodes the JSON body into req and validates it.
func bindRequest(c *gin.Context, req validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middlewares.RespondValidation(c, decodeErrors(err))
		return false
	}
	if err := req.Validate(); err != nil {
		if errs := utils.ValidationErrors(err); errs != nil {
			middlewares.RespondValidation(c, errs)
			return false
		}
		respondError(c, err)
		return false
	}
	return true
}

// decodeErrors keys a JSON decoding failure by the offending field when the
// decoder can name it and by "body" otherwise.
func decodeErrors(err error) map[string][]string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return map[string][]string{"body": {"malformed JSON body"}}
	}
	var msg string
	switch typeErr.Type.Kind() {
	case reflect.String:
		msg = "must be a string"
	case reflect.Bool:
		msg = "must be a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		msg = "must be an integer"
	case reflect.Float32, reflect.Float64:
		msg = "must be a number"
	case reflect.Struct:
		msg = "must be a date (YYYY-MM-DD) or an RFC 3339 timestamp"
	default:
		msg = "has the wrong type"
	}
	return map[string][]string{typeErr.Field: {msg}}
}

// respondError translates a store or service error into its HTTP status.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		middlewares.HttpError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, repositories.ErrDuplicate):
		middlewares.HttpError(c, http.StatusConflict, "Resource already exists")
	case errors.Is(err, repositories.ErrReferenced):
		middlewares.HttpError(c, http.StatusConflict, "Resource is referenced by other records")
	case errors.Is(err, repositories.ErrInvalidReference):
		middlewares.HttpError(c, http.StatusBadRequest, "Referenced record does not exist")
	case errors.Is(err, services.ErrEmailTaken):
		middlewares.HttpError(c, http.StatusConflict, "A user with this email already exists.")
	case errors.Is(err, services.ErrInvalidCredentials):
		middlewares.HttpError(c, http.StatusUnauthorized, "Invalid email or password.")
	case errors.Is(err, services.ErrInvalidResetCode):
		middlewares.HttpError(c, http.StatusBadRequest, "Invalid or expired reset code.")
	case errors.Is(err, services.ErrResetUnavailable):
		middlewares.HttpError(c, http.StatusServiceUnavailable, "Password reset is not available.")
	default:
		middlewares.Logger(c).WithError(err).Error("request failed")
		middlewares.HttpError(c, http.StatusInternalServerError, "Internal server error")
	}
}
