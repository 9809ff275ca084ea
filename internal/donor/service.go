package donor

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/foodandhunger/backend/internal/donor/model"
	"github.com/foodandhunger/backend/internal/system/database"
	"github.com/foodandhunger/backend/internal/system/error/serviceerror"
	"github.com/foodandhunger/backend/internal/system/log"
)

// DonorServiceInterface defines the contract for donor business operations
type DonorServiceInterface interface {
	GetDonor(ctx context.Context, id int64) (*model.Donor, *serviceerror.ServiceError)
	GetAllDonors(ctx context.Context) ([]model.Donor, *serviceerror.ServiceError)
	CreateDonor(ctx context.Context, donor *model.Donor) (*model.Donor, *serviceerror.ServiceError)
	UpdateDonor(ctx context.Context, id int64, donor *model.Donor) (*model.Donor, *serviceerror.ServiceError)
	DeleteDonor(ctx context.Context, id int64) *serviceerror.ServiceError
	SearchDonors(ctx context.Context, query string) ([]model.Donor, *serviceerror.ServiceError)
	CountDonors(ctx context.Context) (int64, *serviceerror.ServiceError)
	DonorExists(ctx context.Context, id int64) (bool, *serviceerror.ServiceError)
}

// donorService implements the DonorServiceInterface
type donorService struct {
	store  donorStore
	logger *logrus.Entry
}

// newDonorService creates a new donor service
func newDonorService(store donorStore) DonorServiceInterface {
	return &donorService{
		store:  store,
		logger: log.WithComponent("DonorService"),
	}
}

func (s *donorService) loggerFor(ctx context.Context) *logrus.Entry {
	return log.FromContext(ctx, s.logger)
}

// GetDonor retrieves a donor by ID
func (s *donorService) GetDonor(ctx context.Context, id int64) (*model.Donor, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("donor_id", id)
	logger.Info("Fetching donor")

	donor, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errDonorNotFound) {
			logger.Warn("Donor not found")
			return nil, serviceerror.NotFound("donor", id)
		}
		logger.WithError(err).Error("Failed to fetch donor")
		return nil, database.ToServiceError(err, "failed to retrieve donor")
	}
	return donor, nil
}

// GetAllDonors retrieves every donor
func (s *donorService) GetAllDonors(ctx context.Context) ([]model.Donor, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx)
	logger.Info("Fetching all donors")

	donors, err := s.store.GetAll(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to fetch donors")
		return nil, database.ToServiceError(err, "failed to retrieve donors")
	}
	return donors, nil
}

// CreateDonor stores a new donor and returns it with its generated ID
func (s *donorService) CreateDonor(
	ctx context.Context,
	donor *model.Donor,
) (*model.Donor, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx)
	logger.WithField("name", donor.Name).Info("Creating donor")

	id, err := s.store.Create(ctx, donor)
	if err != nil {
		logger.WithError(err).Error("Failed to create donor")
		return nil, database.ToServiceError(err, "failed to create donor")
	}

	donor.ID = id
	logger.WithField("donor_id", id).Info("Donor created")
	return donor, nil
}

// UpdateDonor overwrites the mutable fields of an existing donor
func (s *donorService) UpdateDonor(
	ctx context.Context,
	id int64,
	donor *model.Donor,
) (*model.Donor, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("donor_id", id)
	logger.Info("Updating donor")

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errDonorNotFound) {
			logger.Warn("Donor not found for update")
			return nil, serviceerror.NotFound("donor", id)
		}
		logger.WithError(err).Error("Failed to load donor for update")
		return nil, database.ToServiceError(err, "failed to update donor")
	}

	existing.ApplyUpdate(donor)
	if err := s.store.Update(ctx, existing); err != nil {
		logger.WithError(err).Error("Failed to update donor")
		return nil, database.ToServiceError(err, "failed to update donor")
	}

	logger.Info("Donor updated")
	return existing, nil
}

// DeleteDonor removes an existing donor
func (s *donorService) DeleteDonor(ctx context.Context, id int64) *serviceerror.ServiceError {
	logger := s.loggerFor(ctx).WithField("donor_id", id)
	logger.Info("Deleting donor")

	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		logger.WithError(err).Error("Failed to check donor before delete")
		return database.ToServiceError(err, "failed to delete donor")
	}
	if !exists {
		logger.Warn("Donor not found for delete")
		return serviceerror.NotFound("donor", id)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		logger.WithError(err).Error("Failed to delete donor")
		return database.ToServiceError(err, "failed to delete donor")
	}

	logger.Info("Donor deleted")
	return nil
}

// SearchDonors finds donors whose name or email contains query
func (s *donorService) SearchDonors(
	ctx context.Context,
	query string,
) ([]model.Donor, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("query", query)
	logger.Info("Searching donors")

	donors, err := s.store.Search(ctx, query)
	if err != nil {
		logger.WithError(err).Error("Failed to search donors")
		return nil, database.ToServiceError(err, "failed to search donors")
	}
	return donors, nil
}

// CountDonors returns the number of donors
func (s *donorService) CountDonors(ctx context.Context) (int64, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx)
	logger.Info("Counting donors")

	count, err := s.store.Count(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to count donors")
		return 0, database.ToServiceError(err, "failed to count donors")
	}
	return count, nil
}

// DonorExists reports whether a donor with the given ID exists
func (s *donorService) DonorExists(ctx context.Context, id int64) (bool, *serviceerror.ServiceError) {
	logger := s.loggerFor(ctx).WithField("donor_id", id)
	logger.Info("Checking donor existence")

	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		logger.WithError(err).Error("Failed to check donor existence")
		return false, database.ToServiceError(err, "failed to check donor")
	}
	return exists, nil
}
