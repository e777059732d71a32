package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/middleware"
	"github.com/SscSPs/jewel_ledger_app/internal/utils/authn"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// handlerSuite wires a gin engine with the real auth middleware in front of
// an /api/v1 group.
type handlerSuite struct {
	suite.Suite
	router *gin.Engine
	v1     *gin.RouterGroup
	userID string
}

func (s *handlerSuite) setupRouter() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(middleware.RegisterValidators())
	s.router = gin.New()
	s.v1 = s.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
	s.userID = "6f1f0d9e-4d4b-4a55-9a55-0c1e2f3a4b5c"
}

// token signs an access token for userID.
func (s *handlerSuite) token(userID string) string {
	issuer := authn.AccessTokenIssuer{Secret: testJWTSecret, Issuer: "jewel-ledger-test", TTL: time.Hour}
	signed, _, err := issuer.Sign(userID, time.Now().Add(-time.Minute))
	s.Require().NoError(err)
	return signed
}

// do performs an authenticated request; body is JSON encoded when not nil.
func (s *handlerSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token(s.userID))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *handlerSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (s *handlerSuite) assertStatus(w *httptest.ResponseRecorder, want int) {
	s.Require().Equal(want, w.Code, w.Body.String())
}

