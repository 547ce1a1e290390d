package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := &DB{db}

	mock.ExpectQuery(`SELECT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))

	require.NoError(t, wrapped.HealthCheck())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck_ReleasesPooledConnections(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := &DB{db}

	for i := 0; i < 3; i++ {
		mock.ExpectQuery(`SELECT 1`).
			WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))
		require.NoError(t, wrapped.HealthCheck())
	}

	// Cada chequeo debe devolver su conexión al pool
	assert.Equal(t, 0, db.Stats().InUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}
