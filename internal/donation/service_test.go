package donation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/foodandhunger/backend/internal/donation/model"
	"github.com/foodandhunger/backend/internal/system/error/serviceerror"
)

// mockDonationStore is a testify mock of donationStore
type mockDonationStore struct {
	mock.Mock
}

func (m *mockDonationStore) Create(ctx context.Context, donation *model.Donation) (int64, error) {
	args := m.Called(ctx, donation)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDonationStore) GetByID(ctx context.Context, id int64) (*model.Donation, error) {
	args := m.Called(ctx, id)
	if donation, ok := args.Get(0).(*model.Donation); ok {
		return donation, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDonationStore) GetAll(ctx context.Context) ([]model.Donation, error) {
	args := m.Called(ctx)
	if donations, ok := args.Get(0).([]model.Donation); ok {
		return donations, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDonationStore) Update(ctx context.Context, donation *model.Donation) error {
	return m.Called(ctx, donation).Error(0)
}

func (m *mockDonationStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockDonationStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockDonationStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDonationStore) Search(ctx context.Context, query string) ([]model.Donation, error) {
	args := m.Called(ctx, query)
	if donations, ok := args.Get(0).([]model.Donation); ok {
		return donations, args.Error(1)
	}
	return nil, args.Error(1)
}

// memoryStore is an in-memory donationStore with the same matching rules as the SQL store
type memoryStore struct {
	nextID int64
	rows   map[int64]model.Donation
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: map[int64]model.Donation{}}
}

func (m *memoryStore) Create(_ context.Context, donation *model.Donation) (int64, error) {
	m.nextID++
	row := *donation
	row.ID = m.nextID
	m.rows[row.ID] = row
	return row.ID, nil
}

func (m *memoryStore) GetByID(_ context.Context, id int64) (*model.Donation, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, errDonationNotFound
	}
	return &row, nil
}

func (m *memoryStore) GetAll(_ context.Context) ([]model.Donation, error) {
	result := []model.Donation{}
	for id := int64(1); id <= m.nextID; id++ {
		if row, ok := m.rows[id]; ok {
			result = append(result, row)
		}
	}
	return result, nil
}

func (m *memoryStore) Update(_ context.Context, donation *model.Donation) error {
	m.rows[donation.ID] = *donation
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

func (m *memoryStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.rows[id]
	return ok, nil
}

func (m *memoryStore) Count(_ context.Context) (int64, error) {
	return int64(len(m.rows)), nil
}

func (m *memoryStore) Search(ctx context.Context, query string) ([]model.Donation, error) {
	all, _ := m.GetAll(ctx)
	term := strings.ToLower(query)
	result := []model.Donation{}
	for _, row := range all {
		if strings.Contains(strings.ToLower(row.Title), term) || strings.Contains(strings.ToLower(row.Description), term) {
			result = append(result, row)
		}
	}
	return result, nil
}

// TestGetDonation tests the three outcomes of a lookup
func TestGetDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		store := &mockDonationStore{}
		store.On("GetByID", ctx, int64(1)).Return(&model.Donation{ID: 1, Title: "Rice Bags"}, nil)

		donation, err := newDonationService(store).GetDonation(ctx, 1)
		assert.Nil(t, err)
		assert.Equal(t, "Rice Bags", donation.Title)
		store.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		store := &mockDonationStore{}
		store.On("GetByID", ctx, int64(2)).Return(nil, errDonationNotFound)

		donation, err := newDonationService(store).GetDonation(ctx, 2)
		assert.Nil(t, donation)
		require.NotNil(t, err)
		assert.True(t, err.Is(serviceerror.ResourceNotFoundError))
	})

	t.Run("store failure is not reported as absence", func(t *testing.T) {
		store := &mockDonationStore{}
		store.On("GetByID", ctx, int64(3)).Return(nil, errors.New("connection reset"))

		_, err := newDonationService(store).GetDonation(ctx, 3)
		require.NotNil(t, err)
		assert.True(t, err.Is(serviceerror.DatabaseError))
		assert.NotContains(t, err.ErrorDescription, "connection reset")
	})
}

// TestCreateDonation tests that the generated ID is set on the returned donation
func TestCreateDonation(t *testing.T) {
	ctx := context.Background()
	store := &mockDonationStore{}
	donation := &model.Donation{Title: "Rice Bags"}
	store.On("Create", ctx, donation).Return(int64(11), nil)

	created, err := newDonationService(store).CreateDonation(ctx, donation)
	assert.Nil(t, err)
	assert.Equal(t, int64(11), created.ID)
	store.AssertExpectations(t)
}

// TestCreateDonation_ConstraintViolation tests that rejected rows become validation errors
func TestCreateDonation_ConstraintViolation(t *testing.T) {
	ctx := context.Background()
	store := &mockDonationStore{}
	store.On("Create", ctx, mock.Anything).Return(int64(0), &mysql.MySQLError{Number: 1406, Message: "Data too long for column 'TITLE'"})

	created, err := newDonationService(store).CreateDonation(ctx, &model.Donation{Title: strings.Repeat("x", 300)})
	assert.Nil(t, created)
	require.NotNil(t, err)
	assert.True(t, err.Is(serviceerror.ValidationError))
	assert.Equal(t, "value is too long", err.ErrorDescription)
}

// TestUpdateDonation tests the read-modify-write path
func TestUpdateDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("copies fields onto the stored row", func(t *testing.T) {
		store := &mockDonationStore{}
		store.On("GetByID", ctx, int64(5)).Return(&model.Donation{ID: 5, Title: "Old", Location: "Pune"}, nil)
		store.On("Update", ctx, mock.MatchedBy(func(d *model.Donation) bool {
			return d.ID == 5 && d.Title == "New" && d.Location == "Mumbai"
		})).Return(nil)

		updated, err := newDonationService(store).UpdateDonation(ctx, 5, &model.Donation{ID: 42, Title: "New", Location: "Mumbai"})
		assert.Nil(t, err)
		assert.Equal(t, int64(5), updated.ID)
		assert.Equal(t, "New", updated.Title)
		store.AssertExpectations(t)
	})

	t.Run("absent id creates nothing", func(t *testing.T) {
		store := &mockDonationStore{}
		store.On("GetByID", ctx, int64(6)).Return(nil, errDonationNotFound)

		_, err := newDonationService(store).UpdateDonation(ctx, 6, &model.Donation{Title: "New"})
		require.NotNil(t, err)
		assert.True(t, err.Is(serviceerror.ResourceNotFoundError))
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

// TestDeleteDonation tests existence checking before delete
func TestDeleteDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("present", func(t *testing.T) {
		store := &mockDonationStore{}
		store.On("Exists", ctx, int64(1)).Return(true, nil)
		store.On("Delete", ctx, int64(1)).Return(nil)

		assert.Nil(t, newDonationService(store).DeleteDonation(ctx, 1))
		store.AssertExpectations(t)
	})

	t.Run("absent", func(t *testing.T) {
		store := &mockDonationStore{}
		store.On("Exists", ctx, int64(2)).Return(false, nil)

		err := newDonationService(store).DeleteDonation(ctx, 2)
		require.NotNil(t, err)
		assert.True(t, err.Is(serviceerror.ResourceNotFoundError))
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("existence check fails", func(t *testing.T) {
		store := &mockDonationStore{}
		store.On("Exists", ctx, int64(3)).Return(false, errors.New("timeout"))

		err := newDonationService(store).DeleteDonation(ctx, 3)
		require.NotNil(t, err)
		assert.True(t, err.Is(serviceerror.DatabaseError))
	})
}

// TestSearchCountExists_Failures tests that read failures surface as database errors
func TestSearchCountExists_Failures(t *testing.T) {
	ctx := context.Background()
	store := &mockDonationStore{}
	store.On("Search", ctx, "rice").Return(nil, errors.New("boom"))
	store.On("Count", ctx).Return(int64(0), errors.New("boom"))
	store.On("Exists", ctx, int64(1)).Return(false, errors.New("boom"))
	store.On("GetAll", ctx).Return(nil, errors.New("boom"))
	service := newDonationService(store)

	_, err := service.SearchDonations(ctx, "rice")
	assert.True(t, err.Is(serviceerror.DatabaseError))
	_, err = service.CountDonations(ctx)
	assert.True(t, err.Is(serviceerror.DatabaseError))
	_, err = service.DonationExists(ctx, 1)
	assert.True(t, err.Is(serviceerror.DatabaseError))
	_, err = service.GetAllDonations(ctx)
	assert.True(t, err.Is(serviceerror.DatabaseError))
}

// TestDonationLifecycle tests create, search, count, exists and delete against an in-memory store
func TestDonationLifecycle(t *testing.T) {
	ctx := context.Background()
	service := newDonationService(newMemoryStore())

	created, err := service.CreateDonation(ctx, &model.Donation{Title: "Rice Bags", Description: "50kg rice"})
	require.Nil(t, err)

	fetched, err := service.GetDonation(ctx, created.ID)
	require.Nil(t, err)
	assert.Equal(t, "Rice Bags", fetched.Title)
	assert.Equal(t, "50kg rice", fetched.Description)

	found, err := service.SearchDonations(ctx, "rice")
	require.Nil(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)

	found, err = service.SearchDonations(ctx, "wheat")
	require.Nil(t, err)
	assert.Empty(t, found)

	count, _ := service.CountDonations(ctx)
	assert.Equal(t, int64(1), count)

	require.Nil(t, service.DeleteDonation(ctx, created.ID))
	exists, _ := service.DonationExists(ctx, created.ID)
	assert.False(t, exists)
	count, _ = service.CountDonations(ctx)
	assert.Equal(t, int64(0), count)

	err = service.DeleteDonation(ctx, created.ID)
	require.NotNil(t, err)
	assert.True(t, err.Is(serviceerror.ResourceNotFoundError))
}
