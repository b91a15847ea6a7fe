package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/veracourse/portal/internal/models"
	"github.com/veracourse/portal/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

var accessCodeTestColumns = []string{
	"id", "code", "student_name", "phone_number", "category",
	"allowed_sections", "is_active", "expiry_date", "device_id",
	"device_info", "session_token", "session_expiry", "force_reauth",
	"login_count", "reset_count", "last_login_at", "created_at", "updated_at",
}

func accessCodeTestRow(rec *md.AccessCode) []driver.Value {
	return []driver.Value{
		rec.ID, rec.Code, rec.StudentName, rec.PhoneNumber, rec.Category,
		`[]`, rec.IsActive, rec.ExpiryDate, rec.DeviceID,
		nil, rec.SessionToken, rec.SessionExpiry, rec.ForceReauth,
		rec.LoginCount, rec.ResetCount, rec.LastLoginAt, rec.CreatedAt, rec.UpdatedAt,
	}
}

func TestRepository_GetAccessCodeByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	testErr := errors.New("test error")
	r := &Repository{conn: sqlxDB}

	testCode := &md.AccessCode{
		ID:            uuid.New(),
		Code:          "ABC23456",
		StudentName:   "Student 1",
		PhoneNumber:   "+15550001111",
		Category:      "cat-a",
		IsActive:      true,
		SessionToken:  "tok",
		SessionExpiry: time.Now().Add(time.Hour),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	tests := []struct {
		name        string
		code        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			code: testCode.Code,
			mock: func() {
				rows := sqlmock.NewRows(accessCodeTestColumns).
					AddRow(accessCodeTestRow(testCode)...)
				mock.ExpectQuery(regexp.QuoteMeta(accessCodeGetByCodeQ)).
					WithArgs(testCode.Code).
					WillReturnRows(rows)
			},
			expectedErr: nil,
		},
		{
			name: "ErrNotFound",
			code: "MISSING2",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(accessCodeGetByCodeQ)).
					WithArgs("MISSING2").
					WillReturnError(sql.ErrNoRows)
			},
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "ErrInternal",
			code: testCode.Code,
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(accessCodeGetByCodeQ)).
					WithArgs(testCode.Code).
					WillReturnError(testErr)
			},
			expectedErr: testErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			result, err := r.GetAccessCodeByCode(context.Background(), tt.code)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCode.ID, result.ID)
				assert.Equal(t, testCode.Code, result.Code)
				assert.Equal(t, testCode.SessionToken, result.SessionToken)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateAccessCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	testErr := errors.New("test error")
	r := &Repository{conn: sqlxDB}

	newID := uuid.New()
	rec := &md.AccessCode{
		Code:          "ABC23456",
		StudentName:   "Student 1",
		PhoneNumber:   "+15550001111",
		Category:      "cat-a",
		IsActive:      true,
		SessionToken:  "tok",
		SessionExpiry: time.Now().Add(time.Hour),
	}

	tests := []struct {
		name        string
		mock        func()
		expected    uuid.UUID
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(accessCodeCreateQ)).
					WithArgs(
						rec.Code, rec.StudentName, rec.PhoneNumber, rec.Category,
						rec.AllowedSections, rec.IsActive, rec.ExpiryDate,
						rec.SessionToken, rec.SessionExpiry,
					).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID))
			},
			expected:    newID,
			expectedErr: nil,
		},
		{
			name: "ErrAlreadyExists",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(accessCodeCreateQ)).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expected:    uuid.Nil,
			expectedErr: repo.ErrAlreadyExists,
		},
		{
			name: "ErrInternal",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(accessCodeCreateQ)).
					WillReturnError(testErr)
			},
			expected:    uuid.Nil,
			expectedErr: testErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			id, err := r.CreateAccessCode(context.Background(), rec)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, id)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_BindDeviceSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	testErr := errors.New("test error")
	r := &Repository{conn: sqlxDB}

	bind := &md.DeviceBind{
		ID:            uuid.New(),
		DeviceID:      "dev_0123456789abcdef",
		DeviceInfo:    &md.DeviceInfo{DeviceID: "dev_0123456789abcdef", UA: "agent"},
		SessionToken:  "tok",
		SessionExpiry: time.Now().Add(24 * time.Hour),
		LoginAt:       time.Now(),
	}

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(accessCodeBindDeviceQ)).
					WithArgs(
						bind.ID, bind.DeviceID, bind.DeviceInfo,
						bind.SessionToken, bind.SessionExpiry, bind.LoginAt,
					).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedErr: nil,
		},
		{
			name: "ErrDeviceBound",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(accessCodeBindDeviceQ)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(accessCodeExistsQ)).
					WithArgs(bind.ID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expectedErr: repo.ErrDeviceBound,
		},
		{
			name: "ErrNotFound",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(accessCodeBindDeviceQ)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(accessCodeExistsQ)).
					WithArgs(bind.ID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "ExecError",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(accessCodeBindDeviceQ)).
					WillReturnError(testErr)
			},
			expectedErr: testErr,
		},
		{
			name: "ExistsQueryError",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(accessCodeBindDeviceQ)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(accessCodeExistsQ)).
					WithArgs(bind.ID).
					WillReturnError(testErr)
			},
			expectedErr: testErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			err := r.BindDeviceSession(context.Background(), bind)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ResetDeviceSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	testErr := errors.New("test error")
	r := &Repository{conn: sqlxDB}

	id := uuid.New()
	token := "rotated"
	expiry := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(accessCodeResetDeviceQ)).
					WithArgs(id, token, expiry).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedErr: nil,
		},
		{
			name: "ErrNotFound",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(accessCodeResetDeviceQ)).
					WithArgs(id, token, expiry).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "ErrInternal",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(accessCodeResetDeviceQ)).
					WithArgs(id, token, expiry).
					WillReturnError(testErr)
			},
			expectedErr: testErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			err := r.ResetDeviceSession(context.Background(), id, token, expiry)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
