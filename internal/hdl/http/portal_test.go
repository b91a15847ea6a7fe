package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/veracourse/portal/internal/config"
	"github.com/veracourse/portal/internal/ctrl"
	"github.com/veracourse/portal/internal/dto"
	"github.com/veracourse/portal/internal/hdl"
	"github.com/veracourse/portal/internal/hdl/http/utils"
	"github.com/veracourse/portal/internal/revocation"
	"github.com/veracourse/portal/tests/mocks"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Login(t *testing.T) {
	const uri = "/api/portal/login"
	mock := gomock.NewController(t)
	defer mock.Finish()

	testErr := errors.New("testErr")
	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockCore(mock)
	h := New(mauth, mctrl)

	studentID := uuid.New()
	loginReq := &dto.LoginRequest{
		Code: "ABC23456",
		Device: dto.DeviceInfoRequest{
			DeviceID: "dev_0123456789abcdef",
			UA:       "agent",
			IP:       "192.168.1.1",
		},
	}
	studentData := &dto.StudentDataResponse{
		ID:            studentID,
		Code:          loginReq.Code,
		StudentName:   "Student 1",
		Category:      "cat-a",
		SessionToken:  "tok",
		SessionExpiry: time.Now().Add(24 * time.Hour),
		DeviceID:      loginReq.Device.DeviceID,
	}

	tests := []struct {
		name       string
		body       any
		status     int
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:   "ErrDecodeRequest",
			body:   "not-json",
			status: http.StatusBadRequest,
			expect: func() {},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrDecodeRequest.Error(), res.Error)
			},
		},
		{
			name:   "ErrMissingDevice",
			body:   map[string]any{"code": "ABC23456"},
			status: http.StatusBadRequest,
			expect: func() {},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.NotEmpty(t, res.Error)
			},
		},
		{
			name:   "ErrInvalidCode",
			body:   loginReq,
			status: http.StatusUnauthorized,
			expect: func() {
				mctrl.EXPECT().
					ValidateAccessCode(gomock.Any(), loginReq.Code, gomock.Any()).
					Return(nil, ctrl.ErrInvalidCode)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, ctrl.ErrInvalidCode.Error(), res.Error)
			},
		},
		{
			name:   "ErrAccountDisabled",
			body:   loginReq,
			status: http.StatusForbidden,
			expect: func() {
				mctrl.EXPECT().
					ValidateAccessCode(gomock.Any(), loginReq.Code, gomock.Any()).
					Return(nil, ctrl.ErrAccountDisabled)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, ctrl.ErrAccountDisabled.Error(), res.Error)
			},
		},
		{
			name:   "ErrDeviceMismatch",
			body:   loginReq,
			status: http.StatusForbidden,
			expect: func() {
				mctrl.EXPECT().
					ValidateAccessCode(gomock.Any(), loginReq.Code, gomock.Any()).
					Return(nil, ctrl.ErrDeviceMismatch)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, ctrl.ErrDeviceMismatch.Error(), res.Error)
			},
		},
		{
			name:   "StatusInternalServerError",
			body:   loginReq,
			status: http.StatusInternalServerError,
			expect: func() {
				mctrl.EXPECT().
					ValidateAccessCode(gomock.Any(), loginReq.Code, gomock.Any()).
					Return(nil, testErr)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrInternal.Error(), res.Error)
			},
		},
		{
			name:   "Success",
			body:   loginReq,
			status: http.StatusOK,
			expect: func() {
				mctrl.EXPECT().
					ValidateAccessCode(gomock.Any(), loginReq.Code, gomock.Any()).
					Return(studentData, nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.Response{Data: &dto.StudentDataResponse{}}
				require.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))

				data, ok := res.Data.(*dto.StudentDataResponse)
				require.True(t, ok)
				assert.Equal(t, studentData.ID, data.ID)
				assert.Equal(t, studentData.SessionToken, data.SessionToken)
				assert.Equal(t, studentData.DeviceID, data.DeviceID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()

			var body []byte
			switch v := tt.body.(type) {
			case string:
				body = []byte(v)
			default:
				var err error
				body, err = json.Marshal(v)
				require.Nil(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, uri, bytes.NewReader(body))
			w := httptest.NewRecorder()
			h.login(w, req)
			assert.Equal(t, tt.status, w.Result().StatusCode)

			defer func() {
				assert.Nil(t, w.Result().Body.Close())
			}()

			tt.assertions(w)
		})
	}
}

func TestHandler_ValidateSession(t *testing.T) {
	const uri = "/api/portal/session/validate"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockCore(mock)
	h := New(mauth, mctrl)

	sessReq := &dto.SessionRequest{
		StudentID:    uuid.New(),
		SessionToken: "tok",
		DeviceID:     "dev_0123456789abcdef",
	}

	tests := []struct {
		name   string
		status int
		err    error
	}{
		{name: "ErrAccountNotFound", status: http.StatusNotFound, err: ctrl.ErrAccountNotFound},
		{name: "ErrSessionMismatch", status: http.StatusUnauthorized, err: ctrl.ErrSessionMismatch},
		{name: "ErrSessionExpired", status: http.StatusUnauthorized, err: ctrl.ErrSessionExpired},
		{name: "ErrReauthRequired", status: http.StatusUnauthorized, err: ctrl.ErrReauthRequired},
		{name: "ErrAccountExpired", status: http.StatusForbidden, err: ctrl.ErrAccountExpired},
		{name: "ErrDeviceMismatch", status: http.StatusForbidden, err: ctrl.ErrDeviceMismatch},
		{name: "Success", status: http.StatusOK, err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err != nil {
				mctrl.EXPECT().
					ValidateActiveSession(gomock.Any(), sessReq).
					Return(nil, tt.err)
			} else {
				mctrl.EXPECT().
					ValidateActiveSession(gomock.Any(), sessReq).
					Return(&dto.StudentDataResponse{ID: sessReq.StudentID}, nil)
			}

			body, err := json.Marshal(sessReq)
			require.Nil(t, err)

			req := httptest.NewRequest(http.MethodPost, uri, bytes.NewReader(body))
			w := httptest.NewRecorder()
			h.validateSession(w, req)
			assert.Equal(t, tt.status, w.Result().StatusCode)

			if tt.err != nil {
				res := &utils.ErrorResponse{}
				require.Nil(t, json.NewDecoder(w.Result().Body).Decode(res))
				assert.Equal(t, tt.err.Error(), res.Error)
			}

			assert.Nil(t, w.Result().Body.Close())
		})
	}
}

func TestHandler_SessionEvents(t *testing.T) {
	const uri = "/api/portal/session/events"
	mock := gomock.NewController(t)
	defer mock.Finish()

	testErr := errors.New("testErr")
	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockCore(mock)
	h := New(mauth, mctrl)

	student := &dto.StudentDataResponse{ID: uuid.New(), Category: "cat-a"}

	t.Run("SubscribeError", func(t *testing.T) {
		mctrl.EXPECT().
			SubscribeRevocation(gomock.Any(), student.ID, gomock.Any()).
			Return(nil, testErr)

		req := httptest.NewRequest(http.MethodGet, uri, nil)
		req = req.WithContext(context.WithValue(req.Context(), config.StudentKey, student))

		w := httptest.NewRecorder()
		h.sessionEvents(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
		assert.Nil(t, w.Result().Body.Close())
	})

	t.Run("DeliversSignal", func(t *testing.T) {
		unsubscribed := false
		sig := revocation.Signal{
			Kind:      revocation.KindAdminReset,
			StudentID: student.ID,
			At:        time.Now(),
		}

		mctrl.EXPECT().
			SubscribeRevocation(gomock.Any(), student.ID, gomock.Any()).
			DoAndReturn(
				func(
					_ context.Context,
					_ uuid.UUID,
					handler revocation.Handler,
				) (func(), error) {
					handler(sig)
					return func() { unsubscribed = true }, nil
				},
			)

		req := httptest.NewRequest(http.MethodGet, uri, nil)
		req = req.WithContext(context.WithValue(req.Context(), config.StudentKey, student))

		w := httptest.NewRecorder()
		h.sessionEvents(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.Equal(t, "text/event-stream", w.Result().Header.Get("Content-Type"))
		assert.True(t, unsubscribed)

		body := w.Body.String()
		assert.Contains(t, body, "event: revocation")
		assert.Contains(t, body, string(revocation.KindAdminReset))
		assert.Nil(t, w.Result().Body.Close())
	})

	t.Run("ClientDisconnect", func(t *testing.T) {
		unsubscribed := false
		mctrl.EXPECT().
			SubscribeRevocation(gomock.Any(), student.ID, gomock.Any()).
			Return(func() { unsubscribed = true }, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		req := httptest.NewRequest(http.MethodGet, uri, nil)
		req = req.WithContext(context.WithValue(ctx, config.StudentKey, student))

		w := httptest.NewRecorder()
		h.sessionEvents(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.True(t, unsubscribed)
		assert.Empty(t, w.Body.String())
		assert.Nil(t, w.Result().Body.Close())
	})
}

func TestHandler_SessionMiddleware(t *testing.T) {
	const uri = "/api/portal/sections"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockCore(mock)
	h := New(mauth, mctrl)

	studentID := uuid.New()
	token := "tok"
	deviceID := "dev_0123456789abcdef"

	var passed *dto.StudentDataResponse
	next := http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s, ok := studentFromContext(r.Context())
			require.True(t, ok)
			passed = s
			w.WriteHeader(http.StatusOK)
		},
	)

	tests := []struct {
		name    string
		headers map[string]string
		status  int
		expect  func()
	}{
		{
			name:    "MissingStudentID",
			headers: map[string]string{sessionTokenHeader: token, deviceIDHeader: deviceID},
			status:  http.StatusUnauthorized,
			expect:  func() {},
		},
		{
			name: "MalformedStudentID",
			headers: map[string]string{
				studentIDHeader:    "not-a-uuid",
				sessionTokenHeader: token,
				deviceIDHeader:     deviceID,
			},
			status: http.StatusUnauthorized,
			expect: func() {},
		},
		{
			name: "MissingToken",
			headers: map[string]string{
				studentIDHeader: studentID.String(),
				deviceIDHeader:  deviceID,
			},
			status: http.StatusUnauthorized,
			expect: func() {},
		},
		{
			name: "ErrReauthRequired",
			headers: map[string]string{
				studentIDHeader:    studentID.String(),
				sessionTokenHeader: token,
				deviceIDHeader:     deviceID,
			},
			status: http.StatusUnauthorized,
			expect: func() {
				mctrl.EXPECT().
					ValidateActiveSession(gomock.Any(), gomock.Any()).
					Return(nil, ctrl.ErrReauthRequired)
			},
		},
		{
			name: "Success",
			headers: map[string]string{
				studentIDHeader:    studentID.String(),
				sessionTokenHeader: token,
				deviceIDHeader:     deviceID,
			},
			status: http.StatusOK,
			expect: func() {
				mctrl.EXPECT().
					ValidateActiveSession(
						gomock.Any(),
						&dto.SessionRequest{
							StudentID:    studentID,
							SessionToken: token,
							DeviceID:     deviceID,
						},
					).
					Return(&dto.StudentDataResponse{ID: studentID, Category: "cat-a"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed = nil
			tt.expect()

			req := httptest.NewRequest(http.MethodGet, uri, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			h.session(next).ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Result().StatusCode)

			if tt.status == http.StatusOK {
				require.NotNil(t, passed)
				assert.Equal(t, studentID, passed.ID)
				assert.Equal(t, "cat-a", passed.Category)
			} else {
				assert.Nil(t, passed)
			}

			assert.Nil(t, w.Result().Body.Close())
		})
	}
}
