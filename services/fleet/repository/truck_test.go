package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	fleetsvc "github.com/an-ant0/digital-waste-management/services/fleet"
)

func setupTruckRepoTest(t *testing.T) (*TruckRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &TruckRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func truckRows(id uuid.UUID, truckID string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "truck_id", "driver_name", "latitude", "longitude",
		"status", "access_code_hash", "created_at", "last_updated",
	}).AddRow(id, truckID, "Ravi Kumar", 27.7, 85.3, "active", "$2a$10$hash", now, now)
}

func TestCreateTruck(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO trucks").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Duplicate Truck ID",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO trucks").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, fleetsvc.ErrTruckExists)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO trucks").
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, fleetsvc.ErrTruckExists)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTruckRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			truck := &models.Truck{
				ID:             uuid.New(),
				TruckID:        "KTM-01",
				DriverName:     "Ravi Kumar",
				Latitude:       27.7,
				Longitude:      85.3,
				Status:         models.TruckStatusActive,
				AccessCodeHash: "$2a$10$hash",
				CreatedAt:      time.Now(),
				LastUpdated:    time.Now(),
			}

			err := repo.CreateTruck(context.Background(), truck)
			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetTruckByID(t *testing.T) {
	testCases := []struct {
		name       string
		truckID    string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, truck *models.Truck, err error)
	}{
		{
			name:    "Success",
			truckID: "KTM-01",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := truckRows(uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"), "KTM-01")
				mock.ExpectQuery("^SELECT (.+) FROM trucks WHERE truck_id").
					WithArgs("KTM-01").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, truck *models.Truck, err error) {
				assert.NoError(t, err)
				require.NotNil(t, truck)
				assert.Equal(t, "KTM-01", truck.TruckID)
				assert.Equal(t, "Ravi Kumar", truck.DriverName)
				assert.Equal(t, models.TruckStatusActive, truck.Status)
			},
		},
		{
			name:    "Truck Not Found",
			truckID: "KTM-99",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM trucks WHERE truck_id").
					WithArgs("KTM-99").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, truck *models.Truck, err error) {
				assert.ErrorIs(t, err, fleetsvc.ErrTruckNotFound)
				assert.Nil(t, truck)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTruckRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			truck, err := repo.GetTruckByID(context.Background(), tc.truckID)
			tc.assertFunc(t, truck, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateTruckLocation(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name       string
		truckID    string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, truck *models.Truck, err error)
	}{
		{
			name:    "Success",
			truckID: "KTM-01",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := truckRows(uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"), "KTM-01")
				mock.ExpectQuery("UPDATE trucks").
					WithArgs(27.7, 85.3, now, "KTM-01").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, truck *models.Truck, err error) {
				assert.NoError(t, err)
				require.NotNil(t, truck)
				assert.Equal(t, "KTM-01", truck.TruckID)
			},
		},
		{
			name:    "Unknown Truck Returns Not Found Without Creating",
			truckID: "KTM-99",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE trucks").
					WithArgs(27.7, 85.3, now, "KTM-99").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, truck *models.Truck, err error) {
				assert.ErrorIs(t, err, fleetsvc.ErrTruckNotFound)
				assert.Nil(t, truck)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTruckRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			truck, err := repo.UpdateTruckLocation(context.Background(), tc.truckID, 27.7, 85.3, now)
			tc.assertFunc(t, truck, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateTruckStatus(t *testing.T) {
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupTruckRepoTest(t)
		defer cleanup()

		rows := truckRows(uuid.New(), "KTM-01")
		mock.ExpectQuery("UPDATE trucks").
			WithArgs(models.TruckStatusMaintenance, now, "KTM-01").
			WillReturnRows(rows)

		truck, err := repo.UpdateTruckStatus(context.Background(), "KTM-01", models.TruckStatusMaintenance, now)
		assert.NoError(t, err)
		require.NotNil(t, truck)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Truck Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupTruckRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("UPDATE trucks").
			WithArgs(models.TruckStatusInactive, now, "KTM-99").
			WillReturnError(sql.ErrNoRows)

		truck, err := repo.UpdateTruckStatus(context.Background(), "KTM-99", models.TruckStatusInactive, now)
		assert.ErrorIs(t, err, fleetsvc.ErrTruckNotFound)
		assert.Nil(t, truck)
	})
}

func TestListTrucksByStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupTruckRepoTest(t)
		defer cleanup()

		rows := truckRows(uuid.New(), "KTM-01").
			AddRow(uuid.New(), "KTM-02", "Sita Sharma", 27.68, 85.32, "active", "$2a$10$hash", time.Now(), time.Now())
		mock.ExpectQuery("^SELECT (.+) FROM trucks WHERE status").
			WithArgs(models.TruckStatusActive).
			WillReturnRows(rows)

		trucks, err := repo.ListTrucksByStatus(context.Background(), models.TruckStatusActive)
		assert.NoError(t, err)
		require.Len(t, trucks, 2)
		assert.Equal(t, "KTM-01", trucks[0].TruckID)
		assert.Equal(t, "KTM-02", trucks[1].TruckID)
	})

	t.Run("Empty Result", func(t *testing.T) {
		repo, mock, cleanup := setupTruckRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{
			"id", "truck_id", "driver_name", "latitude", "longitude",
			"status", "access_code_hash", "created_at", "last_updated",
		})
		mock.ExpectQuery("^SELECT (.+) FROM trucks WHERE status").
			WithArgs(models.TruckStatusActive).
			WillReturnRows(rows)

		trucks, err := repo.ListTrucksByStatus(context.Background(), models.TruckStatusActive)
		assert.NoError(t, err)
		assert.Empty(t, trucks)
	})
}
