package donor

import (
	"context"
	"errors"

	"github.com/foodandhunger/backend/internal/donor/model"
	"github.com/foodandhunger/backend/internal/system/database"
	dbmodel "github.com/foodandhunger/backend/internal/system/database/model"
	"github.com/foodandhunger/backend/internal/system/database/provider"
	dbutils "github.com/foodandhunger/backend/internal/system/database/utils"
)

const selectDonors = "SELECT ID, USER_ID, NAME, EMAIL, PHONE, ADDRESS, PHOTO FROM DONOR"

var searchColumns = []string{"NAME", "EMAIL"}

// DBQuery objects for all donor operations
var (
	QueryCreateDonor = dbmodel.DBQuery{
		ID:    "CREATE_DONOR",
		Query: "INSERT INTO DONOR (USER_ID, NAME, EMAIL, PHONE, ADDRESS, PHOTO) VALUES (?, ?, ?, ?, ?, ?)",
	}

	QueryGetDonorByID = dbmodel.DBQuery{
		ID:    "GET_DONOR_BY_ID",
		Query: selectDonors + " WHERE ID = ?",
	}

	QueryGetAllDonors = dbmodel.DBQuery{
		ID:    "GET_ALL_DONORS",
		Query: dbutils.BuildOrderByQuery(selectDonors, "ID", true),
	}

	QueryUpdateDonor = dbmodel.DBQuery{
		ID:    "UPDATE_DONOR",
		Query: "UPDATE DONOR SET USER_ID = ?, NAME = ?, EMAIL = ?, PHONE = ?, ADDRESS = ?, PHOTO = ? WHERE ID = ?",
	}

	QueryDeleteDonor = dbmodel.DBQuery{
		ID:    "DELETE_DONOR",
		Query: "DELETE FROM DONOR WHERE ID = ?",
	}

	QueryCheckDonorExists = dbmodel.DBQuery{
		ID:    "CHECK_DONOR_EXISTS",
		Query: "SELECT COUNT(*) FROM DONOR WHERE ID = ?",
	}

	QueryCountDonors = dbmodel.DBQuery{
		ID:    "COUNT_DONORS",
		Query: "SELECT COUNT(*) FROM DONOR",
	}

	QuerySearchDonors = dbmodel.DBQuery{
		ID:    "SEARCH_DONORS",
		Query: dbutils.BuildOrderByQuery(dbutils.BuildContainsQuery(selectDonors, searchColumns...), "ID", true),
	}
)

var errDonorNotFound = errors.New("donor not found")

// donorStore defines the interface for donor data operations
type donorStore interface {
	Create(ctx context.Context, donor *model.Donor) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Donor, error)
	GetAll(ctx context.Context) ([]model.Donor, error)
	Update(ctx context.Context, donor *model.Donor) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string) ([]model.Donor, error)
}

type store struct {
	dbClient provider.DBClientInterface
}

func newDonorStore(dbClient provider.DBClientInterface) donorStore {
	return &store{
		dbClient: dbClient,
	}
}

func (s *store) Create(ctx context.Context, donor *model.Donor) (int64, error) {
	result, err := s.dbClient.Execute(ctx, QueryCreateDonor,
		donor.UserID,
		donor.Name,
		donor.Email,
		donor.Phone,
		donor.Address,
		donor.Photo,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *store) GetByID(ctx context.Context, id int64) (*model.Donor, error) {
	var donor model.Donor
	if err := s.dbClient.Get(ctx, &donor, QueryGetDonorByID, id); err != nil {
		if database.IsNoRows(err) {
			return nil, errDonorNotFound
		}
		return nil, err
	}
	return &donor, nil
}

func (s *store) GetAll(ctx context.Context) ([]model.Donor, error) {
	donors := []model.Donor{}
	if err := s.dbClient.Select(ctx, &donors, QueryGetAllDonors); err != nil {
		return nil, err
	}
	return donors, nil
}

func (s *store) Update(ctx context.Context, donor *model.Donor) error {
	_, err := s.dbClient.Execute(ctx, QueryUpdateDonor,
		donor.UserID,
		donor.Name,
		donor.Email,
		donor.Phone,
		donor.Address,
		donor.Photo,
		donor.ID,
	)
	return err
}

func (s *store) Delete(ctx context.Context, id int64) error {
	_, err := s.dbClient.Execute(ctx, QueryDeleteDonor, id)
	return err
}

func (s *store) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := s.dbClient.Get(ctx, &count, QueryCheckDonorExists, id); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.dbClient.Get(ctx, &count, QueryCountDonors); err != nil {
		return 0, err
	}
	return count, nil
}

// Search matches query against name and email, ignoring case
func (s *store) Search(ctx context.Context, query string) ([]model.Donor, error) {
	donors := []model.Donor{}
	args := dbutils.ContainsArgs(query, len(searchColumns))
	if err := s.dbClient.Select(ctx, &donors, QuerySearchDonors, args...); err != nil {
		return nil, err
	}
	return donors, nil
}
