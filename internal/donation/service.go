package donation

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/foodandhunger/backend/internal/donation/model"
	"github.com/foodandhunger/backend/internal/system/database"
	"github.com/foodandhunger/backend/internal/system/error/serviceerror"
	"github.com/foodandhunger/backend/internal/system/log"
)

// DonationServiceInterface defines the contract for donation business operations
type DonationServiceInterface interface {
	GetDonation(ctx context.Context, id int64) (*model.Donation, *serviceerror.ServiceError)
	GetAllDonations(ctx context.Context) ([]model.Donation, *serviceerror.ServiceError)
	CreateDonation(ctx context.Context, donation *model.Donation) (*model.Donation, *serviceerror.ServiceError)
	UpdateDonation(ctx context.Context, id int64, donation *model.Donation) (*model.Donation, *serviceerror.ServiceError)
	DeleteDonation(ctx context.Context, id int64) *serviceerror.ServiceError
	SearchDonations(ctx context.Context, query string) ([]model.Donation, *serviceerror.ServiceError)
	CountDonations(ctx context.Context) (int64, *serviceerror.ServiceError)
	DonationExists(ctx context.Context, id int64) (bool, *serviceerror.ServiceError)
}

// donationService implements the DonationServiceInterface
type donationService struct {
	store  donationStore
	logger *logrus.Entry
}

// newDonationService creates a new donation service
func newDonationService(store donationStore) DonationServiceInterface {
	return &donationService{
		store:  store,
		logger: log.WithComponent("DonationService"),
	}
}

func (s *donationService) loggerFor(ctx context.Context) *logrus.Entry {
	return log.FromContext(ctx, s.logger)
}

// GetDonation retrieves a donation by ID
func (s *donationService) GetDonation(ctx context.Context, id int64) (*model.Donation, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("donation_id", id)
	logger.Info("Fetching donation")

	donation, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errDonationNotFound) {
			logger.Warn("Donation not found")
			return nil, serviceerror.NotFound("donation", id)
		}
		logger.WithError(err).Error("Failed to fetch donation")
		return nil, database.ToServiceError(err, "failed to retrieve donation")
	}
	return donation, nil
}

// GetAllDonations retrieves every donation
func (s *donationService) GetAllDonations(ctx context.Context) ([]model.Donation, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx)
	logger.Info("Fetching all donations")

	donations, err := s.store.GetAll(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to fetch donations")
		return nil, database.ToServiceError(err, "failed to retrieve donations")
	}
	return donations, nil
}

// CreateDonation stores a new donation and returns it with its generated ID
func (s *donationService) CreateDonation(
	ctx context.Context,
	donation *model.Donation,
) (*model.Donation, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx)
	logger.WithField("title", donation.Title).Info("Creating donation")

	id, err := s.store.Create(ctx, donation)
	if err != nil {
		logger.WithError(err).Error("Failed to create donation")
		return nil, database.ToServiceError(err, "failed to create donation")
	}

	donation.ID = id
	logger.WithField("donation_id", id).Info("Donation created")
	return donation, nil
}

// UpdateDonation overwrites the mutable fields of an existing donation
func (s *donationService) UpdateDonation(
	ctx context.Context,
	id int64,
	donation *model.Donation,
) (*model.Donation, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("donation_id", id)
	logger.Info("Updating donation")

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errDonationNotFound) {
			logger.Warn("Donation not found for update")
			return nil, serviceerror.NotFound("donation", id)
		}
		logger.WithError(err).Error("Failed to load donation for update")
		return nil, database.ToServiceError(err, "failed to update donation")
	}

	existing.ApplyUpdate(donation)
	if err := s.store.Update(ctx, existing); err != nil {
		logger.WithError(err).Error("Failed to update donation")
		return nil, database.ToServiceError(err, "failed to update donation")
	}

	logger.Info("Donation updated")
	return existing, nil
}

// DeleteDonation removes an existing donation
func (s *donationService) DeleteDonation(ctx context.Context, id int64) *serviceerror.ServiceError {
	logger := s.loggerFor(ctx).WithField("donation_id", id)
	logger.Info("Deleting donation")

	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		logger.WithError(err).Error("Failed to check donation before delete")
		return database.ToServiceError(err, "failed to delete donation")
	}
	if !exists {
		logger.Warn("Donation not found for delete")
		return serviceerror.NotFound("donation", id)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		logger.WithError(err).Error("Failed to delete donation")
		return database.ToServiceError(err, "failed to delete donation")
	}

	logger.Info("Donation deleted")
	return nil
}

// SearchDonations finds donations whose title or description contains query
func (s *donationService) SearchDonations(
	ctx context.Context,
	query string,
) ([]model.Donation, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("query", query)
	logger.Info("Searching donations")

	donations, err := s.store.Search(ctx, query)
	if err != nil {
		logger.WithError(err).Error("Failed to search donations")
		return nil, database.ToServiceError(err, "failed to search donations")
	}
	return donations, nil
}

// CountDonations returns the number of donations
func (s *donationService) CountDonations(ctx context.Context) (int64, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx)
	logger.Info("Counting donations")

	count, err := s.store.Count(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to count donations")
		return 0, database.ToServiceError(err, "failed to count donations")
	}
	return count, nil
}

// DonationExists reports whether a donation with the given ID exists
func (s *donationService) DonationExists(ctx context.Context, id int64) (bool, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("donation_id", id)
	logger.Info("Checking donation existence")

	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		logger.WithError(err).Error("Failed to check donation existence")
		return false, database.ToServiceError(err, "failed to check donation")
	}
	return exists, nil
}
