package certificate

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db), mock
}

func TestStoreCreate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO certificate_requests")).
		WithArgs("S-1", "Completion").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectCommit()

	id, err := store.Create(context.Background(), CertificateRequest{StudentID: "S-1", CertificateType: "Completion"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCreateRollsBack(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO certificate_requests")).
		WillReturnError(errors.New("relation does not exist"))
	mock.ExpectRollback()

	_, err := store.Create(context.Background(), CertificateRequest{})
	assert.ErrorContains(t, err, "insert certificate request")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreGet(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2025, 5, 4, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM certificate_requests")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "certificate_type", "created_at"}).
			AddRow(int64(3), "S-1", "Completion", created))

	got, err := store.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, CertificateRequest{ID: 3, StudentID: "S-1", CertificateType: "Completion", CreatedAt: created}, got)
}

func TestStoreGetNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM certificate_requests")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := store.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreGetFailure(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM certificate_requests")).
		WillReturnError(errors.New("conn closed"))

	_, err := store.Get(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
