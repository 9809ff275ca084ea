package feedback

import (
	"context"
	"errors"

	"github.com/foodandhunger/backend/internal/feedback/model"
	"github.com/foodandhunger/backend/internal/system/database"
	dbmodel "github.com/foodandhunger/backend/internal/system/database/model"
	"github.com/foodandhunger/backend/internal/system/database/provider"
	dbutils "github.com/foodandhunger/backend/internal/system/database/utils"
)

const selectFeedback = "SELECT ID, USER_ID, MESSAGE, STAR FROM FEEDBACK"

var searchColumns = []string{"MESSAGE"}

var (
	QueryCreateFeedback = dbmodel.DBQuery{
		ID:    "CREATE_FEEDBACK",
		Query: "INSERT INTO FEEDBACK (USER_ID, MESSAGE, STAR) VALUES (?, ?, ?)",
	}

	QueryGetFeedbackByID = dbmodel.DBQuery{
		ID:    "GET_FEEDBACK_BY_ID",
		Query: selectFeedback + " WHERE ID = ?",
	}

	QueryGetAllFeedback = dbmodel.DBQuery{
		ID:    "GET_ALL_FEEDBACK",
		Query: dbutils.BuildOrderByQuery(selectFeedback, "ID", true),
	}

	QueryUpdateFeedback = dbmodel.DBQuery{
		ID:    "UPDATE_FEEDBACK",
		Query: "UPDATE FEEDBACK SET USER_ID = ?, MESSAGE = ?, STAR = ? WHERE ID = ?",
	}

	QueryDeleteFeedback = dbmodel.DBQuery{
		ID:    "DELETE_FEEDBACK",
		Query: "DELETE FROM FEEDBACK WHERE ID = ?",
	}

	QueryCheckFeedbackExists = dbmodel.DBQuery{
		ID:    "CHECK_FEEDBACK_EXISTS",
		Query: "SELECT COUNT(*) FROM FEEDBACK WHERE ID = ?",
	}

	QueryCountFeedback = dbmodel.DBQuery{
		ID:    "COUNT_FEEDBACK",
		Query: "SELECT COUNT(*) FROM FEEDBACK",
	}

	QuerySearchFeedback = dbmodel.DBQuery{
		ID:    "SEARCH_FEEDBACK",
		Query: dbutils.BuildOrderByQuery(dbutils.BuildContainsQuery(selectFeedback, searchColumns...), "ID", true),
	}
)

var errFeedbackNotFound = errors.New("feedback not found")

type feedbackStore interface {
	Create(ctx context.Context, feedback *model.Feedback) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Feedback, error)
	GetAll(ctx context.Context) ([]model.Feedback, error)
	Update(ctx context.Context, feedback *model.Feedback) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string) ([]model.Feedback, error)
}

type store struct {
	dbClient provider.DBClientInterface
}

func newFeedbackStore(dbClient provider.DBClientInterface) feedbackStore {
	return &store{dbClient: dbClient}
}

func (s *store) Create(ctx context.Context, feedback *model.Feedback) (int64, error) {
	result, err := s.dbClient.Execute(ctx, QueryCreateFeedback, feedback.UserID, feedback.Message, feedback.Star)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *store) GetByID(ctx context.Context, id int64) (*model.Feedback, error) {
	var feedback model.Feedback
	if err := s.dbClient.Get(ctx, &feedback, QueryGetFeedbackByID, id); err != nil {
		if database.IsNoRows(err) {
			return nil, errFeedbackNotFound
		}
		return nil, err
	}
	return &feedback, nil
}

func (s *store) GetAll(ctx context.Context) ([]model.Feedback, error) {
	entries := []model.Feedback{}
	if err := s.dbClient.Select(ctx, &entries, QueryGetAllFeedback); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *store) Update(ctx context.Context, feedback *model.Feedback) error {
	_, err := s.dbClient.Execute(ctx, QueryUpdateFeedback, feedback.UserID, feedback.Message, feedback.Star, feedback.ID)
	return err
}

func (s *store) Delete(ctx context.Context, id int64) error {
	_, err := s.dbClient.Execute(ctx, QueryDeleteFeedback, id)
	return err
}

func (s *store) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := s.dbClient.Get(ctx, &count, QueryCheckFeedbackExists, id); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.dbClient.Get(ctx, &count, QueryCountFeedback); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *store) Search(ctx context.Context, query string) ([]model.Feedback, error) {
	entries := []model.Feedback{}
	args := dbutils.ContainsArgs(query, len(searchColumns))
	if err := s.dbClient.Select(ctx, &entries, QuerySearchFeedback, args...); err != nil {
		return nil, err
	}
	return entries, nil
}
