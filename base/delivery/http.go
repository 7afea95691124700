package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/resolution/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// StatusOf maps a resolution failure to its http status. Anything that is
// not a known resolution error keeps fallback.
func StatusOf(err error, fallback int) int {
	var rerr *domain.ResolutionError
	if errors.As(err, &rerr) {
		switch rerr.Code {
		case domain.UnsupportedDomain, domain.UnsupportedService, domain.UnsupportedCurrency:
			return http.StatusBadRequest
		case domain.UnregisteredDomain, domain.UnspecifiedResolver, domain.RecordNotFound:
			return http.StatusNotFound
		case domain.UnsupportedMethod:
			return http.StatusNotImplemented
		case domain.InvalidTwitterVerification:
			return http.StatusUnprocessableEntity
		}
	}
	if errors.Is(err, domain.ErrBadParamInput) {
		return http.StatusBadRequest
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
