package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// NewHTTPErrorHandler returns the echo.HTTPErrorHandler that turns every error into a JSON envelope.
// Stack traces are only included when production is false.
func NewHTTPErrorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var resp ErrorResponse
		status := http.StatusInternalServerError

		if isRouteNotFound(err) {
			status = http.StatusNotFound
			resp = RouteNotFound(c.Request())
		} else {
			httpErr := MapErrorToHTTP(err)
			status = httpErr.StatusCode
			resp = httpErr.ToErrorResponse()
			if status >= http.StatusInternalServerError {
				log.Error().Err(err).
					Str("method", c.Request().Method).
					Str("uri", c.Request().RequestURI).
					Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
					Msg("request failed")
				if !production {
					resp.Stack = Stack(err)
				}
			}
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, resp)
		}
		if werr != nil {
			log.Error().Err(werr).Msg("write error response")
		}
	}
}

// isRouteNotFound reports whether echo could not match the request to any route.
func isRouteNotFound(err error) bool {
	var he *echo.HTTPError
	return errors.As(err, &he) && he == echo.ErrNotFound
}

// RouteNotFound builds the body returned for a request that matches no declared route.
func RouteNotFound(r *http.Request) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Code:    "ROUTE_NOT_FOUND",
		Message: fmt.Sprintf("route not found: %s %s", r.Method, r.URL.Path),
	}
}
