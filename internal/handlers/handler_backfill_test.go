package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/dto"
	"github.com/maintkit/ledgerpost/internal/handlers"
	"github.com/maintkit/ledgerpost/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const testOpsToken = "test-ops-token"

// MockBackfillService is a mock implementation of portssvc.BackfillSvcFacade.
type MockBackfillService struct {
	mock.Mock
}

func (m *MockBackfillService) Run(ctx context.Context, params dto.BackfillParams) (*dto.BackfillReport, error) {
	args := m.Called(ctx, params)
	if report, ok := args.Get(0).(*dto.BackfillReport); ok {
		return report, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ portssvc.BackfillSvcFacade = (*MockBackfillService)(nil)

type BackfillHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockBackfillService *MockBackfillService
}

func (suite *BackfillHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockBackfillService = new(MockBackfillService)

	hash, err := bcrypt.GenerateFromPassword([]byte(testOpsToken), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.router = gin.New()
	admin := suite.router.Group("/admin", middleware.OpsTokenMiddleware(string(hash)))
	handlers.RegisterBackfillRoutes(admin, suite.mockBackfillService)
}

func (suite *BackfillHandlerTestSuite) postBackfill(body string, token string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodPost, "/admin/backfill", bytes.NewBufferString(body))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Ops-Token", token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BackfillHandlerTestSuite) TestRunBackfill_Success() {
	expected := &dto.BackfillReport{TenantsProcessed: 1, Scanned: 3, Created: 2, AlreadyPresent: 1}
	suite.mockBackfillService.On("Run", mock.Anything, mock.MatchedBy(func(params dto.BackfillParams) bool {
		return params.TenantID == "ten-1" && params.DryRun && params.Kind == dto.BackfillKindMovement
	})).Return(expected, nil).Once()

	w := suite.postBackfill(`{"tenantID":"ten-1","dryRun":true,"kind":"movement"}`, testOpsToken)

	suite.Equal(http.StatusOK, w.Code)
	var report dto.BackfillReport
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &report))
	suite.Equal(*expected, report)
	suite.mockBackfillService.AssertExpectations(suite.T())
}

func (suite *BackfillHandlerTestSuite) TestRunBackfill_MissingToken() {
	w := suite.postBackfill(`{"dryRun":true}`, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBackfillService.AssertNotCalled(suite.T(), "Run", mock.Anything, mock.Anything)
}

func (suite *BackfillHandlerTestSuite) TestRunBackfill_WrongToken() {
	w := suite.postBackfill(`{"dryRun":true}`, "not-the-token")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBackfillService.AssertNotCalled(suite.T(), "Run", mock.Anything, mock.Anything)
}

func (suite *BackfillHandlerTestSuite) TestRunBackfill_InvalidKind() {
	w := suite.postBackfill(`{"kind":"bogus"}`, testOpsToken)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBackfillService.AssertNotCalled(suite.T(), "Run", mock.Anything, mock.Anything)
}

func (suite *BackfillHandlerTestSuite) TestRunBackfill_RunnerFailure() {
	suite.mockBackfillService.On("Run", mock.Anything, mock.Anything).
		Return(nil, errors.New("db connection refused")).Once()

	w := suite.postBackfill(`{}`, testOpsToken)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockBackfillService.AssertExpectations(suite.T())
}

func TestBackfillHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BackfillHandlerTestSuite))
}
