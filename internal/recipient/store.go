package recipient

import (
	"context"
	"errors"

	"github.com/foodandhunger/backend/internal/recipient/model"
	"github.com/foodandhunger/backend/internal/system/database"
	dbmodel "github.com/foodandhunger/backend/internal/system/database/model"
	"github.com/foodandhunger/backend/internal/system/database/provider"
	dbutils "github.com/foodandhunger/backend/internal/system/database/utils"
)

const selectRecipients = "SELECT ID, USER_ID, NAME, AGE, ADDRESS, LOCATION, ORGANIZATION_NAME, PAN, AADHAAR, PHONE, EMAIL, " +
	"ORGANIZATION_CERTIFICATE_ID, ORGANIZATION_CERTIFICATE, PHOTO, SIGNATURE FROM RECIPIENT"

var searchColumns = []string{"NAME"}

// DBQuery objects for all recipient operations
var (
	QueryCreateRecipient = dbmodel.DBQuery{
		ID: "CREATE_RECIPIENT",
		Query: "INSERT INTO RECIPIENT (USER_ID, NAME, AGE, ADDRESS, LOCATION, ORGANIZATION_NAME, PAN, AADHAAR, PHONE, EMAIL, " +
			"ORGANIZATION_CERTIFICATE_ID, ORGANIZATION_CERTIFICATE, PHOTO, SIGNATURE) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
	}

	QueryGetRecipientByID = dbmodel.DBQuery{
		ID:    "GET_RECIPIENT_BY_ID",
		Query: selectRecipients + " WHERE ID = ?",
	}

	QueryGetAllRecipients = dbmodel.DBQuery{
		ID:    "GET_ALL_RECIPIENTS",
		Query: dbutils.BuildOrderByQuery(selectRecipients, "ID", true),
	}

	// ORGANIZATION_CERTIFICATE and SIGNATURE are not updatable.
	QueryUpdateRecipient = dbmodel.DBQuery{
		ID: "UPDATE_RECIPIENT",
		Query: "UPDATE RECIPIENT SET USER_ID = ?, NAME = ?, AGE = ?, ADDRESS = ?, LOCATION = ?, ORGANIZATION_NAME = ?, PAN = ?, " +
			"AADHAAR = ?, PHONE = ?, EMAIL = ?, ORGANIZATION_CERTIFICATE_ID = ?, PHOTO = ? WHERE ID = ?",
	}

	QueryDeleteRecipient = dbmodel.DBQuery{
		ID:    "DELETE_RECIPIENT",
		Query: "DELETE FROM RECIPIENT WHERE ID = ?",
	}

	QueryCheckRecipientExists = dbmodel.DBQuery{
		ID:    "CHECK_RECIPIENT_EXISTS",
		Query: "SELECT COUNT(*) FROM RECIPIENT WHERE ID = ?",
	}

	QueryCountRecipients = dbmodel.DBQuery{
		ID:    "COUNT_RECIPIENTS",
		Query: "SELECT COUNT(*) FROM RECIPIENT",
	}

	QuerySearchRecipients = dbmodel.DBQuery{
		ID:    "SEARCH_RECIPIENTS",
		Query: dbutils.BuildOrderByQuery(dbutils.BuildContainsQuery(selectRecipients, searchColumns...), "ID", true),
	}
)

var errRecipientNotFound = errors.New("recipient not found")

// recipientStore defines the interface for recipient data operations
type recipientStore interface {
	Create(ctx context.Context, recipient *model.Recipient) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Recipient, error)
	GetAll(ctx context.Context) ([]model.Recipient, error)
	Update(ctx context.Context, recipient *model.Recipient) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string) ([]model.Recipient, error)
}

// store implements recipientStore
type store struct {
	dbClient provider.DBClientInterface
}

// newRecipientStore creates a new recipient store
func newRecipientStore(dbClient provider.DBClientInterface) recipientStore {
	return &store{
		dbClient: dbClient,
	}
}

// Create inserts a recipient with its documents and returns the generated ID
func (s *store) Create(ctx context.Context, recipient *model.Recipient) (int64, error) {
	result, err := s.dbClient.Execute(ctx, QueryCreateRecipient,
		recipient.UserID,
		recipient.Name,
		recipient.Age,
		recipient.Address,
		recipient.Location,
		recipient.OrganizationName,
		recipient.PAN,
		recipient.Aadhaar,
		recipient.Phone,
		recipient.Email,
		recipient.OrganizationCertificateID,
		recipient.OrganizationCertificate,
		recipient.Photo,
		recipient.Signature,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetByID retrieves a recipient by ID
func (s *store) GetByID(ctx context.Context, id int64) (*model.Recipient, error) {
	var recipient model.Recipient
	if err := s.dbClient.Get(ctx, &recipient, QueryGetRecipientByID, id); err != nil {
		if database.IsNoRows(err) {
			return nil, errRecipientNotFound
		}
		return nil, err
	}
	return &recipient, nil
}

// GetAll retrieves every recipient ordered by ID
func (s *store) GetAll(ctx context.Context) ([]model.Recipient, error) {
	recipients := []model.Recipient{}
	if err := s.dbClient.Select(ctx, &recipients, QueryGetAllRecipients); err != nil {
		return nil, err
	}
	return recipients, nil
}

// Update persists the updatable columns of a recipient
func (s *store) Update(ctx context.Context, recipient *model.Recipient) error {
	_, err := s.dbClient.Execute(ctx, QueryUpdateRecipient,
		recipient.UserID,
		recipient.Name,
		recipient.Age,
		recipient.Address,
		recipient.Location,
		recipient.OrganizationName,
		recipient.PAN,
		recipient.Aadhaar,
		recipient.Phone,
		recipient.Email,
		recipient.OrganizationCertificateID,
		recipient.Photo,
		recipient.ID,
	)
	return err
}

// Delete removes a recipient
func (s *store) Delete(ctx context.Context, id int64) error {
	_, err := s.dbClient.Execute(ctx, QueryDeleteRecipient, id)
	return err
}

// Exists checks whether a recipient with the given ID exists
func (s *store) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := s.dbClient.Get(ctx, &count, QueryCheckRecipientExists, id); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of recipients
func (s *store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.dbClient.Get(ctx, &count, QueryCountRecipients); err != nil {
		return 0, err
	}
	return count, nil
}

// Search returns recipients whose name contains query, ignoring case
func (s *store) Search(ctx context.Context, query string) ([]model.Recipient, error) {
	recipients := []model.Recipient{}
	args := dbutils.ContainsArgs(query, len(searchColumns))
	if err := s.dbClient.Select(ctx, &recipients, QuerySearchRecipients, args...); err != nil {
		return nil, err
	}
	return recipients, nil
}
