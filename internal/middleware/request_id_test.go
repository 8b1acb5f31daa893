package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// run executes RequestID with the given inbound header and returns the IDs the handler saw
func (s *RequestIDTestSuite) run(header string) (fromEcho, fromRequest string, rec *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(TraceIDHeader, header)
	}
	rec = httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := RequestID()(func(c echo.Context) error {
		fromEcho = GetTraceID(c)
		fromRequest = TraceIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})(c)
	s.Require().NoError(err)
	return fromEcho, fromRequest, rec
}

func (s *RequestIDTestSuite) TestGeneratesUUIDWhenAbsent() {
	fromEcho, fromRequest, rec := s.run("")

	_, err := uuid.Parse(fromEcho)
	s.NoError(err)
	s.Equal(fromEcho, fromRequest)
	s.Equal(fromEcho, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReusesWellFormedInboundID() {
	fromEcho, fromRequest, rec := s.run("upstream-trace_42.a")

	s.Equal("upstream-trace_42.a", fromEcho)
	s.Equal("upstream-trace_42.a", fromRequest)
	s.Equal("upstream-trace_42.a", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReplacesMalformedInboundID() {
	testCases := []struct {
		name   string
		header string
	}{
		{"spaces", "trace id with spaces"},
		{"too long", strings.Repeat("a", 65)},
		{"control characters", "abc\tdef"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			fromEcho, _, _ := s.run(tc.header)
			s.NotEqual(tc.header, fromEcho)
			_, err := uuid.Parse(fromEcho)
			s.NoError(err)
		})
	}
}

func (s *RequestIDTestSuite) TestGetTraceIDEmptyWhenNotSet() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
	s.Empty(TraceIDFromContext(c.Request().Context()))
}

func (s *RequestIDTestSuite) TestUniquePerRequest() {
	first, _, _ := s.run("")
	second, _, _ := s.run("")
	s.NotEqual(first, second)
}
