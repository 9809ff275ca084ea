package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/foodandhunger/backend/internal/feedback/model"
	"github.com/foodandhunger/backend/internal/system/error/apierror"
	"github.com/foodandhunger/backend/internal/system/error/serviceerror"
)

// mockFeedbackService is a testify mock of FeedbackServiceInterface
type mockFeedbackService struct {
	mock.Mock
}

func (m *mockFeedbackService) GetFeedback(ctx context.Context, id int64) (*model.Feedback, *serviceerror.ServiceError) {
	args := m.Called(ctx, id)
	return optionalFeedback(args.Get(0)), optionalError(args.Get(1))
}

func (m *mockFeedbackService) GetAllFeedback(ctx context.Context) ([]model.Feedback, *serviceerror.ServiceError) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]model.Feedback)
	return entries, optionalError(args.Get(1))
}

func (m *mockFeedbackService) CreateFeedback(ctx context.Context, feedback *model.Feedback) (*model.Feedback, *serviceerror.ServiceError) {
	args := m.Called(ctx, feedback)
	return optionalFeedback(args.Get(0)), optionalError(args.Get(1))
}

func (m *mockFeedbackService) UpdateFeedback(ctx context.Context, id int64, feedback *model.Feedback) (*model.Feedback, *serviceerror.ServiceError) {
	args := m.Called(ctx, id, feedback)
	return optionalFeedback(args.Get(0)), optionalError(args.Get(1))
}

func (m *mockFeedbackService) DeleteFeedback(ctx context.Context, id int64) *serviceerror.ServiceError {
	return optionalError(m.Called(ctx, id).Get(0))
}

func (m *mockFeedbackService) SearchFeedback(ctx context.Context, query string) ([]model.Feedback, *serviceerror.ServiceError) {
	args := m.Called(ctx, query)
	entries, _ := args.Get(0).([]model.Feedback)
	return entries, optionalError(args.Get(1))
}

func (m *mockFeedbackService) CountFeedback(ctx context.Context) (int64, *serviceerror.ServiceError) {
	args := m.Called(ctx)
	return args.Get(0).(int64), optionalError(args.Get(1))
}

func (m *mockFeedbackService) FeedbackExists(ctx context.Context, id int64) (bool, *serviceerror.ServiceError) {
	args := m.Called(ctx, id)
	return args.Bool(0), optionalError(args.Get(1))
}

func optionalFeedback(v interface{}) *model.Feedback {
	feedback, _ := v.(*model.Feedback)
	return feedback
}

func optionalError(v interface{}) *serviceerror.ServiceError {
	err, _ := v.(*serviceerror.ServiceError)
	return err
}

type FeedbackHandlerTestSuite struct {
	suite.Suite
	service *mockFeedbackService
	router  *gin.Engine
}

func TestFeedbackHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FeedbackHandlerTestSuite))
}

func (s *FeedbackHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.service = &mockFeedbackService{}
	s.router = gin.New()
	registerRoutes(s.router, newFeedbackHandler(s.service))
}

func (s *FeedbackHandlerTestSuite) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *FeedbackHandlerTestSuite) errorCode(w *httptest.ResponseRecorder) string {
	var body apierror.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func (s *FeedbackHandlerTestSuite) TestCreate() {
	s.service.On("CreateFeedback", mock.Anything, &model.Feedback{UserID: 2, Message: "Great service", Star: 5}).
		Return(&model.Feedback{ID: 1}, nil)

	w := s.do(http.MethodPost, "/api/feedback/add", map[string]interface{}{"userId": 2, "message": "Great service", "star": 5})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Feedback added successfully", w.Body.String())
}

func (s *FeedbackHandlerTestSuite) TestCreate_Invalid() {
	for name, body := range map[string]map[string]interface{}{
		"missing message": {"star": 3},
		"star too high":   {"message": "hi", "star": 6},
		"star negative":   {"message": "hi", "star": -1},
	} {
		s.Run(name, func() {
			w := s.do(http.MethodPost, "/api/feedback/add", body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}

	w := s.do(http.MethodPost, "/api/feedback/add", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("invalid_request", s.errorCode(w))
}

func (s *FeedbackHandlerTestSuite) TestGet() {
	s.service.On("GetFeedback", mock.Anything, int64(1)).Return(&model.Feedback{ID: 1, UserID: 2, Message: "ok", Star: 3}, nil)

	w := s.do(http.MethodGet, "/api/feedback/1", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"id":1,"userId":2,"message":"ok","star":3}`, w.Body.String())
}

func (s *FeedbackHandlerTestSuite) TestUpdate() {
	s.service.On("UpdateFeedback", mock.Anything, int64(1), mock.Anything).
		Return(&model.Feedback{ID: 1, Message: "edited", Star: 4}, nil)

	w := s.do(http.MethodPut, "/api/feedback/update/1", map[string]interface{}{"message": "edited", "star": 4})

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"id":1,"userId":0,"message":"edited","star":4}`, w.Body.String())
}

func (s *FeedbackHandlerTestSuite) TestDelete_NotFound() {
	s.service.On("DeleteFeedback", mock.Anything, int64(5)).
		Return(serviceerror.CustomServiceError(serviceerror.ResourceNotFoundError, "feedback not found: 5"))

	w := s.do(http.MethodDelete, "/api/feedback/delete/5", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *FeedbackHandlerTestSuite) TestListSearchCountExists() {
	s.service.On("GetAllFeedback", mock.Anything).Return([]model.Feedback{{ID: 1, Message: "Great service", Star: 5}}, nil)
	s.service.On("SearchFeedback", mock.Anything, "great").Return([]model.Feedback{}, nil)
	s.service.On("CountFeedback", mock.Anything).Return(int64(1), nil)
	s.service.On("FeedbackExists", mock.Anything, int64(1)).
		Return(false, serviceerror.CustomServiceError(serviceerror.DatabaseError, "failed to check feedback"))

	w := s.do(http.MethodGet, "/api/feedback/all", nil)
	s.JSONEq(`[{"id":1,"userId":0,"message":"Great service","star":5}]`, w.Body.String())

	w = s.do(http.MethodGet, "/api/feedback/search?query=great", nil)
	s.JSONEq(`[]`, w.Body.String())

	w = s.do(http.MethodGet, "/api/feedback/count", nil)
	s.Equal("1", w.Body.String())

	w = s.do(http.MethodGet, "/api/feedback/exists/1", nil)
	s.Equal(http.StatusInternalServerError, w.Code)
}

func TestFeedbackApplyUpdate(t *testing.T) {
	f := &model.Feedback{ID: 1, UserID: 1, Message: "a", Star: 1}
	f.ApplyUpdate(&model.Feedback{ID: 7, UserID: 2, Message: "b", Star: 5})
	assert.Equal(t, model.Feedback{ID: 1, UserID: 2, Message: "b", Star: 5}, *f)
}
