package donation

import (
	"context"
	"errors"

	"github.com/foodandhunger/backend/internal/donation/model"
	"github.com/foodandhunger/backend/internal/system/database"
	dbmodel "github.com/foodandhunger/backend/internal/system/database/model"
	"github.com/foodandhunger/backend/internal/system/database/provider"
	dbutils "github.com/foodandhunger/backend/internal/system/database/utils"
)

const selectDonations = "SELECT ID, TITLE, DESCRIPTION, TYPE, PHOTO, LOCATION, ADDRESS FROM DONATION"

// searchColumns are the columns matched by Search.
var searchColumns = []string{"TITLE", "DESCRIPTION"}

// DBQuery objects for all donation operations
var (
	QueryCreateDonation = dbmodel.DBQuery{
		ID:    "CREATE_DONATION",
		Query: "INSERT INTO DONATION (TITLE, DESCRIPTION, TYPE, PHOTO, LOCATION, ADDRESS) VALUES (?, ?, ?, ?, ?, ?)",
	}

	QueryGetDonationByID = dbmodel.DBQuery{
		ID:    "GET_DONATION_BY_ID",
		Query: selectDonations + " WHERE ID = ?",
	}

	QueryGetAllDonations = dbmodel.DBQuery{
		ID:    "GET_ALL_DONATIONS",
		Query: dbutils.BuildOrderByQuery(selectDonations, "ID", true),
	}

	QueryUpdateDonation = dbmodel.DBQuery{
		ID:    "UPDATE_DONATION",
		Query: "UPDATE DONATION SET TITLE = ?, DESCRIPTION = ?, TYPE = ?, PHOTO = ?, LOCATION = ?, ADDRESS = ? WHERE ID = ?",
	}

	QueryDeleteDonation = dbmodel.DBQuery{
		ID:    "DELETE_DONATION",
		Query: "DELETE FROM DONATION WHERE ID = ?",
	}

	QueryCheckDonationExists = dbmodel.DBQuery{
		ID:    "CHECK_DONATION_EXISTS",
		Query: "SELECT COUNT(*) FROM DONATION WHERE ID = ?",
	}

	QueryCountDonations = dbmodel.DBQuery{
		ID:    "COUNT_DONATIONS",
		Query: "SELECT COUNT(*) FROM DONATION",
	}

	QuerySearchDonations = dbmodel.DBQuery{
		ID:    "SEARCH_DONATIONS",
		Query: dbutils.BuildOrderByQuery(dbutils.BuildContainsQuery(selectDonations, searchColumns...), "ID", true),
	}
)

var errDonationNotFound = errors.New("donation not found")

// donationStore defines the interface for donation data operations
type donationStore interface {
	Create(ctx context.Context, donation *model.Donation) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Donation, error)
	GetAll(ctx context.Context) ([]model.Donation, error)
	Update(ctx context.Context, donation *model.Donation) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string) ([]model.Donation, error)
}

// store implements donationStore
type store struct {
	dbClient provider.DBClientInterface
}

// newDonationStore creates a new donation store
func newDonationStore(dbClient provider.DBClientInterface) donationStore {
	return &store{
		dbClient: dbClient,
	}
}

// Create inserts a donation and returns its generated ID
func (s *store) Create(ctx context.Context, donation *model.Donation) (int64, error) {
	result, err := s.dbClient.Execute(ctx, QueryCreateDonation,
		donation.Title,
		donation.Description,
		donation.Type,
		donation.Photo,
		donation.Location,
		donation.Address,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetByID retrieves a donation by ID
func (s *store) GetByID(ctx context.Context, id int64) (*model.Donation, error) {
	var donation model.Donation
	if err := s.dbClient.Get(ctx, &donation, QueryGetDonationByID, id); err != nil {
		if database.IsNoRows(err) {
			return nil, errDonationNotFound
		}
		return nil, err
	}
	return &donation, nil
}

// GetAll retrieves every donation ordered by ID
func (s *store) GetAll(ctx context.Context) ([]model.Donation, error) {
	donations := []model.Donation{}
	if err := s.dbClient.Select(ctx, &donations, QueryGetAllDonations); err != nil {
		return nil, err
	}
	return donations, nil
}

// Update persists all mutable columns of a donation
func (s *store) Update(ctx context.Context, donation *model.Donation) error {
	_, err := s.dbClient.Execute(ctx, QueryUpdateDonation,
		donation.Title,
		donation.Description,
		donation.Type,
		donation.Photo,
		donation.Location,
		donation.Address,
		donation.ID,
	)
	return err
}

// Delete removes a donation
func (s *store) Delete(ctx context.Context, id int64) error {
	_, err := s.dbClient.Execute(ctx, QueryDeleteDonation, id)
	return err
}

// Exists checks whether a donation with the given ID exists
func (s *store) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := s.dbClient.Get(ctx, &count, QueryCheckDonationExists, id); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of donations
func (s *store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.dbClient.Get(ctx, &count, QueryCountDonations); err != nil {
		return 0, err
	}
	return count, nil
}

// Search returns donations whose title or description contains query, ignoring case
func (s *store) Search(ctx context.Context, query string) ([]model.Donation, error) {
	donations := []model.Donation{}
	args := dbutils.ContainsArgs(query, len(searchColumns))
	if err := s.dbClient.Select(ctx, &donations, QuerySearchDonations, args...); err != nil {
		return nil, err
	}
	return donations, nil
}
