package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zealand/roombooking/internal/pkg/apperror"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "requestID"

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// Error sends a JSON error response.
// The status code comes from the error's kind; anything that is not an
// AppError is reported as 500 without leaking its message.
func Error(c *gin.Context, err error) {
	kind := apperror.KindOf(err)

	if kind == apperror.KindInternal || kind == apperror.KindConnectivity {
		log.Error().
			Err(err).
			Str("kind", kind.String()).
			Str("path", c.FullPath()).
			Str("request_id", c.GetString(RequestIDKey)).
			Msg("request failed")
	}

	if kind == apperror.KindInternal {
		c.JSON(kind.HTTPStatus(), ErrorResponse{Error: "internal server error", Kind: kind.String()})
		return
	}

	msg := err.Error()
	if appErr := asAppError(err); appErr != nil {
		msg = appErr.Message
	}
	c.JSON(kind.HTTPStatus(), ErrorResponse{Error: msg, Kind: kind.String()})
}

// BadRequest sends a 400 for malformed input caught by binding.
func BadRequest(c *gin.Context, message string, err error) {
	body := gin.H{"error": message, "kind": apperror.KindValidation.String()}
	if err != nil {
		body["details"] = err.Error()
	}
	c.JSON(apperror.KindValidation.HTTPStatus(), body)
}

func asAppError(err error) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
