package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/currency_admin/internal/middleware"
	"github.com/SscSPs/currency_admin/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MockEventTracker struct {
	mock.Mock
}

func (m *MockEventTracker) IsInitialized() bool {
	return m.Called().Bool(0)
}

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

type PosthogMiddlewareTestSuite struct {
	suite.Suite
	tracker *MockEventTracker
	router  *gin.Engine
	token   string
}

func (suite *PosthogMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.tracker = new(MockEventTracker)
	suite.tracker.On("IsInitialized").Return(true).Maybe()

	token, err := utils.GenerateJWT("admin", testSecret, time.Hour, testIssuer)
	require.NoError(suite.T(), err)
	suite.token = token

	suite.router = gin.New()
	suite.router.Use(middleware.PosthogMiddleware(suite.tracker))
	suite.router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	suite.router.GET("/swagger/*any", func(c *gin.Context) { c.Status(http.StatusOK) })

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testSecret, testIssuer))
	v1.POST("/currencies", func(c *gin.Context) {
		middleware.TrackProperty(c, "code", "EUR")
		c.Status(http.StatusCreated)
	})
	v1.DELETE("/currencies/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	v1.PUT("/currencies/:id", func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{"error": "duplicate"})
	})
	v1.GET("/untracked", func(c *gin.Context) { c.Status(http.StatusOK) })
}

func (suite *PosthogMiddlewareTestSuite) do(method, path string, withToken bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if withToken {
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PosthogMiddlewareTestSuite) TestCreateReportsCurrencyCode() {
	suite.tracker.On("Enqueue", "admin", "currency_created", mock.MatchedBy(func(props map[string]any) bool {
		return props["code"] == "EUR" &&
			props["method"] == http.MethodPost &&
			props["status_code"] == http.StatusCreated
	})).Once()

	w := suite.do(http.MethodPost, "/api/v1/currencies", true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PosthogMiddlewareTestSuite) TestDeleteReportsCurrencyID() {
	suite.tracker.On("Enqueue", "admin", "currency_deleted", mock.MatchedBy(func(props map[string]any) bool {
		return props["currency_id"] == "42"
	})).Once()

	w := suite.do(http.MethodDelete, "/api/v1/currencies/42", true)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PosthogMiddlewareTestSuite) TestFailedRequestIsNotReported() {
	w := suite.do(http.MethodPut, "/api/v1/currencies/42", true)

	suite.Equal(http.StatusConflict, w.Code)
	suite.tracker.AssertNumberOfCalls(suite.T(), "Enqueue", 0)
}

func (suite *PosthogMiddlewareTestSuite) TestUnauthenticatedRequestIsNotReported() {
	w := suite.do(http.MethodPost, "/api/v1/currencies", false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.tracker.AssertNumberOfCalls(suite.T(), "Enqueue", 0)
}

func (suite *PosthogMiddlewareTestSuite) TestSkippedPaths() {
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/health", true).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/swagger/index.html", true).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/untracked", true).Code)

	suite.tracker.AssertNumberOfCalls(suite.T(), "Enqueue", 0)
}

func (suite *PosthogMiddlewareTestSuite) TestUninitializedTrackerDropsEvents() {
	idle := new(MockEventTracker)
	idle.On("IsInitialized").Return(false)
	r := gin.New()
	r.Use(middleware.PosthogMiddleware(idle))
	r.POST("/api/v1/currencies", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/currencies", nil))

	suite.Equal(http.StatusCreated, w.Code)
	idle.AssertNumberOfCalls(suite.T(), "Enqueue", 0)
}

func (suite *PosthogMiddlewareTestSuite) TestCurrencyEventName() {
	suite.Equal("exchange_rates_refreshed", middleware.CurrencyEventName(http.MethodPost, "/api/v1/currencies/update-rates"))
	suite.Equal("currency_patched", middleware.CurrencyEventName(http.MethodPatch, "/api/v1/currencies/:id"))
	suite.Empty(middleware.CurrencyEventName(http.MethodGet, "/health"))
}

func TestPosthogMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(PosthogMiddlewareTestSuite))
}
