package delivery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/resolution/domain"
)

type deliverySuite struct {
	suite.Suite
}

func TestDeliverySuite(t *testing.T) {
	suite.Run(t, new(deliverySuite))
}

func (s *deliverySuite) TestStatusOf() {
	cases := []struct {
		err error
		exp int
	}{
		{&domain.ResolutionError{Code: domain.UnsupportedDomain}, http.StatusBadRequest},
		{&domain.ResolutionError{Code: domain.UnsupportedService}, http.StatusBadRequest},
		{&domain.ResolutionError{Code: domain.UnsupportedCurrency}, http.StatusBadRequest},
		{&domain.ResolutionError{Code: domain.UnregisteredDomain}, http.StatusNotFound},
		{&domain.ResolutionError{Code: domain.UnspecifiedResolver}, http.StatusNotFound},
		{&domain.ResolutionError{Code: domain.RecordNotFound}, http.StatusNotFound},
		{&domain.ResolutionError{Code: domain.UnsupportedMethod}, http.StatusNotImplemented},
		{&domain.ResolutionError{Code: domain.InvalidTwitterVerification}, http.StatusUnprocessableEntity},
		{xerrors.Errorf("dns type: %w", domain.ErrBadParamInput), http.StatusBadRequest},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		s.Equal(c.exp, StatusOf(c.err, http.StatusInternalServerError), c.err.Error())
	}
}

func (s *deliverySuite) TestMakeJsonResp() {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.NoError(MakeJsonResp(c, http.StatusInternalServerError, &domain.ResolutionError{Code: domain.UnregisteredDomain, Domain: "nobody.crypto"}))
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"data":"domain nobody.crypto is not registered","status":"fail"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.NoError(MakeJsonResp(c, http.StatusOK, "0x00"))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":"0x00","status":"success"}`, rec.Body.String())
}
