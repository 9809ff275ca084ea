package recipient

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/foodandhunger/backend/internal/recipient/model"
	"github.com/foodandhunger/backend/internal/system/database"
	"github.com/foodandhunger/backend/internal/system/error/serviceerror"
	"github.com/foodandhunger/backend/internal/system/log"
)

// RecipientServiceInterface defines the contract for recipient business operations
type RecipientServiceInterface interface {
	GetRecipient(ctx context.Context, id int64) (*model.Recipient, *serviceerror.ServiceError)
	GetAllRecipients(ctx context.Context) ([]model.Recipient, *serviceerror.ServiceError)
	CreateRecipient(ctx context.Context, recipient *model.Recipient) (*model.Recipient, *serviceerror.ServiceError)
	UpdateRecipient(ctx context.Context, id int64, recipient *model.Recipient) (*model.Recipient, *serviceerror.ServiceError)
	DeleteRecipient(ctx context.Context, id int64) *serviceerror.ServiceError
	SearchRecipients(ctx context.Context, query string) ([]model.Recipient, *serviceerror.ServiceError)
	CountRecipients(ctx context.Context) (int64, *serviceerror.ServiceError)
	RecipientExists(ctx context.Context, id int64) (bool, *serviceerror.ServiceError)
}

// recipientService implements the RecipientServiceInterface
type recipientService struct {
	store  recipientStore
	logger *logrus.Entry
}

// newRecipientService creates a new recipient service
func newRecipientService(store recipientStore) RecipientServiceInterface {
	return &recipientService{
		store:  store,
		logger: log.WithComponent("RecipientService"),
	}
}

func (s *recipientService) loggerFor(ctx context.Context) *logrus.Entry {
	return log.FromContext(ctx, s.logger)
}

// GetRecipient retrieves a recipient by ID
func (s *recipientService) GetRecipient(ctx context.Context, id int64) (*model.Recipient, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("recipient_id", id)
	logger.Info("Fetching recipient")

	recipient, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errRecipientNotFound) {
			logger.Warn("Recipient not found")
			return nil, serviceerror.NotFound("recipient", id)
		}
		logger.WithError(err).Error("Failed to fetch recipient")
		return nil, database.ToServiceError(err, "failed to retrieve recipient")
	}
	return recipient, nil
}

// GetAllRecipients retrieves every recipient
func (s *recipientService) GetAllRecipients(ctx context.Context) ([]model.Recipient, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx)
	logger.Info("Fetching all recipients")

	recipients, err := s.store.GetAll(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to fetch recipients")
		return nil, database.ToServiceError(err, "failed to retrieve recipients")
	}
	return recipients, nil
}

// CreateRecipient stores a new recipient and returns it with its generated ID
func (s *recipientService) CreateRecipient(
	ctx context.Context,
	recipient *model.Recipient,
) (*model.Recipient, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx)
	logger.WithField("name", recipient.Name).Info("Creating recipient")

	id, err := s.store.Create(ctx, recipient)
	if err != nil {
		logger.WithError(err).Error("Failed to create recipient")
		return nil, database.ToServiceError(err, "failed to create recipient")
	}

	recipient.ID = id
	logger.WithField("recipient_id", id).Info("Recipient created")
	return recipient, nil
}

// UpdateRecipient overwrites the mutable fields of an existing recipient
func (s *recipientService) UpdateRecipient(
	ctx context.Context,
	id int64,
	recipient *model.Recipient,
) (*model.Recipient, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("recipient_id", id)
	logger.Info("Updating recipient")

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errRecipientNotFound) {
			logger.Warn("Recipient not found for update")
			return nil, serviceerror.NotFound("recipient", id)
		}
		logger.WithError(err).Error("Failed to load recipient for update")
		return nil, database.ToServiceError(err, "failed to update recipient")
	}

	existing.ApplyUpdate(recipient)
	if err := s.store.Update(ctx, existing); err != nil {
		logger.WithError(err).Error("Failed to update recipient")
		return nil, database.ToServiceError(err, "failed to update recipient")
	}

	logger.Info("Recipient updated")
	return existing, nil
}

// DeleteRecipient removes an existing recipient
func (s *recipientService) DeleteRecipient(ctx context.Context, id int64) *serviceerror.ServiceError {
	logger := s.loggerFor(ctx).WithField("recipient_id", id)
	logger.Info("Deleting recipient")

	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		logger.WithError(err).Error("Failed to check recipient before delete")
		return database.ToServiceError(err, "failed to delete recipient")
	}
	if !exists {
		logger.Warn("Recipient not found for delete")
		return serviceerror.NotFound("recipient", id)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		logger.WithError(err).Error("Failed to delete recipient")
		return database.ToServiceError(err, "failed to delete recipient")
	}

	logger.Info("Recipient deleted")
	return nil
}

// SearchRecipients finds recipients whose name contains query
func (s *recipientService) SearchRecipients(
	ctx context.Context,
	query string,
) ([]model.Recipient, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("query", query)
	logger.Info("Searching recipients")

	recipients, err := s.store.Search(ctx, query)
	if err != nil {
		logger.WithError(err).Error("Failed to search recipients")
		return nil, database.ToServiceError(err, "failed to search recipients")
	}
	return recipients, nil
}

// CountRecipients returns the number of recipients
func (s *recipientService) CountRecipients(ctx context.Context) (int64, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx)
	logger.Info("Counting recipients")

	count, err := s.store.Count(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to count recipients")
		return 0, database.ToServiceError(err, "failed to count recipients")
	}
	return count, nil
}

// RecipientExists reports whether a recipient with the given ID exists
func (s *recipientService) RecipientExists(ctx context.Context, id int64) (bool, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("recipient_id", id)
	logger.Info("Checking recipient existence")

	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		logger.WithError(err).Error("Failed to check recipient existence")
		return false, database.ToServiceError(err, "failed to check recipient")
	}
	return exists, nil
}
