package certificatehandler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentdesk/internal/agents"
	"agentdesk/internal/domain/certificate"
)

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock, string) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dir := filepath.Join(t.TempDir(), "certificates")
	r := chi.NewRouter()
	NewHandler(agents.NewFactory(db, nil), certificate.NewRenderer(dir)).RegisterRoutes(r)
	return r, mock, dir
}

var certColumns = []string{"id", "student_id", "certificate_type", "created_at"}

func TestGenerateCertificate(t *testing.T) {
	router, mock, _ := newTestRouter(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO certificate_requests")).
		WithArgs("S-9", "transcript").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectCommit()

	body := `{"student_id":"S-9","certificate_type":"transcript"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate_certificate/", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"generated","message":"Certificate issued"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateCertificateMissingField(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate_certificate/", strings.NewReader(`{"student_id":"S-9"}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "certificate_type")
}

func TestGenerateCertificateStoreFailure(t *testing.T) {
	router, mock, _ := newTestRouter(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO certificate_requests")).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	body := `{"student_id":"S-9","certificate_type":"transcript"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate_certificate/", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDownloadCertificate(t *testing.T) {
	router, mock, dir := newTestRouter(t)
	created := time.Date(2025, 5, 4, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM certificate_requests")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(certColumns).AddRow(int64(5), "S-1", "Bonafide", created))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download_certificate/5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="certificate_5.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
	assert.Contains(t, rec.Body.String(), "Issued to: S-1")

	onDisk, err := os.ReadFile(filepath.Join(dir, "certificate_5.pdf"))
	require.NoError(t, err)
	assert.Equal(t, onDisk, rec.Body.Bytes())
}

func TestDownloadCertificateNotFound(t *testing.T) {
	router, mock, dir := newTestRouter(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM certificate_requests")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(certColumns))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download_certificate/99", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Certificate not found"}`, rec.Body.String())
	_, err := os.Stat(filepath.Join(dir, "certificate_99.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestDownloadCertificateInvalidID(t *testing.T) {
	router, mock, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download_certificate/abc", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDownloadCertificateLookupFailure(t *testing.T) {
	router, mock, _ := newTestRouter(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM certificate_requests")).WillReturnError(errors.New("conn reset"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download_certificate/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
