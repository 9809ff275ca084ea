package feedback

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/foodandhunger/backend/internal/feedback/model"
	"github.com/foodandhunger/backend/internal/system/database"
	"github.com/foodandhunger/backend/internal/system/error/serviceerror"
	"github.com/foodandhunger/backend/internal/system/log"
)

// FeedbackServiceInterface defines the contract for feedback business operations
type FeedbackServiceInterface interface {
	GetFeedback(ctx context.Context, id int64) (*model.Feedback, *serviceerror.ServiceError)
	GetAllFeedback(ctx context.Context) ([]model.Feedback, *serviceerror.ServiceError)
	CreateFeedback(ctx context.Context, feedback *model.Feedback) (*model.Feedback, *serviceerror.ServiceError)
	UpdateFeedback(ctx context.Context, id int64, feedback *model.Feedback) (*model.Feedback, *serviceerror.ServiceError)
	DeleteFeedback(ctx context.Context, id int64) *serviceerror.ServiceError
	SearchFeedback(ctx context.Context, query string) ([]model.Feedback, *serviceerror.ServiceError)
	CountFeedback(ctx context.Context) (int64, *serviceerror.ServiceError)
	FeedbackExists(ctx context.Context, id int64) (bool, *serviceerror.ServiceError)
}

// feedbackService implements the FeedbackServiceInterface
type feedbackService struct {
	store  feedbackStore
	logger *logrus.Entry
}

// newFeedbackService creates a new feedback service
func newFeedbackService(store feedbackStore) FeedbackServiceInterface {
	return &feedbackService{
		store:  store,
		logger: log.WithComponent("FeedbackService"),
	}
}

func (s *feedbackService) loggerFor(ctx context.Context) *logrus.Entry {
	return log.FromContext(ctx, s.logger)
}

// GetFeedback retrieves a feedback by ID
func (s *feedbackService) GetFeedback(ctx context.Context, id int64) (*model.Feedback, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("feedback_id", id)
	logger.Info("Fetching feedback")

	feedback, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errFeedbackNotFound) {
			logger.Warn("Feedback not found")
			return nil, serviceerror.NotFound("feedback", id)
		}
		logger.WithError(err).Error("Failed to fetch feedback")
		return nil, database.ToServiceError(err, "failed to retrieve feedback")
	}
	return feedback, nil
}

// GetAllFeedback retrieves every feedback
func (s *feedbackService) GetAllFeedback(ctx context.Context) ([]model.Feedback, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx)
	logger.Info("Fetching all feedback")

	entries, err := s.store.GetAll(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to fetch feedback")
		return nil, database.ToServiceError(err, "failed to retrieve feedback")
	}
	return entries, nil
}

// CreateFeedback stores a new feedback and returns it with its generated ID
func (s *feedbackService) CreateFeedback(
	ctx context.Context,
	feedback *model.Feedback,
) (*model.Feedback, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx)
	logger.WithField("user_id", feedback.UserID).Info("Creating feedback")

	id, err := s.store.Create(ctx, feedback)
	if err != nil {
		logger.WithError(err).Error("Failed to create feedback")
		return nil, database.ToServiceError(err, "failed to create feedback")
	}

	feedback.ID = id
	logger.WithField("feedback_id", id).Info("Feedback created")
	return feedback, nil
}

// UpdateFeedback overwrites the mutable fields of an existing feedback
func (s *feedbackService) UpdateFeedback(
	ctx context.Context,
	id int64,
	feedback *model.Feedback,
) (*model.Feedback, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("feedback_id", id)
	logger.Info("Updating feedback")

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errFeedbackNotFound) {
			logger.Warn("Feedback not found for update")
			return nil, serviceerror.NotFound("feedback", id)
		}
		logger.WithError(err).Error("Failed to load feedback for update")
		return nil, database.ToServiceError(err, "failed to update feedback")
	}

	existing.ApplyUpdate(feedback)
	if err := s.store.Update(ctx, existing); err != nil {
		logger.WithError(err).Error("Failed to update feedback")
		return nil, database.ToServiceError(err, "failed to update feedback")
	}

	logger.Info("Feedback updated")
	return existing, nil
}

// DeleteFeedback removes an existing feedback
func (s *feedbackService) DeleteFeedback(ctx context.Context, id int64) *serviceerror.ServiceError {
	logger := s.loggerFor(ctx).WithField("feedback_id", id)
	logger.Info("Deleting feedback")

	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		logger.WithError(err).Error("Failed to check feedback before delete")
		return database.ToServiceError(err, "failed to delete feedback")
	}
	if !exists {
		logger.Warn("Feedback not found for delete")
		return serviceerror.NotFound("feedback", id)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		logger.WithError(err).Error("Failed to delete feedback")
		return database.ToServiceError(err, "failed to delete feedback")
	}

	logger.Info("Feedback deleted")
	return nil
}

// SearchFeedback finds feedback whose message contains query
func (s *feedbackService) SearchFeedback(
	ctx context.Context,
	query string,
) ([]model.Feedback, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("query", query)
	logger.Info("Searching feedback")

	entries, err := s.store.Search(ctx, query)
	if err != nil {
		logger.WithError(err).Error("Failed to search feedback")
		return nil, database.ToServiceError(err, "failed to search feedback")
	}
	return entries, nil
}

// CountFeedback returns the number of feedback
func (s *feedbackService) CountFeedback(ctx context.Context) (int64, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx)
	logger.Info("Counting feedback")

	count, err := s.store.Count(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to count feedback")
		return 0, database.ToServiceError(err, "failed to count feedback")
	}
	return count, nil
}

// FeedbackExists reports whether a feedback with the given ID exists
func (s *feedbackService) FeedbackExists(ctx context.Context, id int64) (bool, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("feedback_id", id)
	logger.Info("Checking feedback existence")

	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		logger.WithError(err).Error("Failed to check feedback existence")
		return false, database.ToServiceError(err, "failed to check feedback")
	}
	return exists, nil
}
