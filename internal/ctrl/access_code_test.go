package ctrl

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/veracourse/portal/internal/audit"
	"github.com/veracourse/portal/internal/config"
	"github.com/veracourse/portal/internal/dto"
	md "github.com/veracourse/portal/internal/models"
	"github.com/veracourse/portal/internal/repo"
	"github.com/veracourse/portal/internal/revocation"
	"github.com/veracourse/portal/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type auditSpy struct {
	events []audit.Event
}

func (s *auditSpy) Record(_ context.Context, ev audit.Event) {
	s.events = append(s.events, ev)
}

func newBoundCode(deviceID, token string) *md.AccessCode {
	rec := &md.AccessCode{
		ID:            uuid.New(),
		Code:          "ABC23456",
		StudentName:   "Test Student",
		Category:      "premium",
		IsActive:      true,
		SessionToken:  token,
		SessionExpiry: time.Now().Add(time.Hour),
	}
	if deviceID != "" {
		rec.DeviceID = &deviceID
	}
	return rec
}

func TestController_ValidateAccessCode(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	spy := &auditSpy{}
	bus := revocation.NewMemoryBus()
	svc := New(mockAuth, mockRepo, mockCache, spy, bus, nil)

	device := &dto.DeviceInfoRequest{DeviceID: "dev_aaaa1111bbbb2222", IP: "10.0.0.1"}
	pastDate := time.Now().Add(-time.Hour)

	tests := []struct {
		name   string
		setup  func()
		device *dto.DeviceInfoRequest
		err    error
		check  func(t *testing.T, res *dto.StudentDataResponse)
	}{
		{
			name: "InvalidCode",
			setup: func() {
				mockRepo.EXPECT().
					GetAccessCodeByCode(gomock.Any(), "ABC23456").
					Return(nil, repo.ErrNotFound)
			},
			device: device,
			err:    ErrInvalidCode,
		},
		{
			name: "AccountDisabled",
			setup: func() {
				rec := newBoundCode("", "tok")
				rec.IsActive = false
				mockRepo.EXPECT().
					GetAccessCodeByCode(gomock.Any(), "ABC23456").
					Return(rec, nil)
			},
			device: device,
			err:    ErrAccountDisabled,
		},
		{
			name: "AccountExpired",
			setup: func() {
				rec := newBoundCode("", "tok")
				rec.ExpiryDate = &pastDate
				mockRepo.EXPECT().
					GetAccessCodeByCode(gomock.Any(), "ABC23456").
					Return(rec, nil)
			},
			device: device,
			err:    ErrAccountExpired,
		},
		{
			// Expiry takes precedence over the disabled flag.
			name: "ExpiredAndDisabledReadsExpired",
			setup: func() {
				rec := newBoundCode("", "tok")
				rec.IsActive = false
				rec.ExpiryDate = &pastDate
				mockRepo.EXPECT().
					GetAccessCodeByCode(gomock.Any(), "ABC23456").
					Return(rec, nil)
			},
			device: device,
			err:    ErrAccountExpired,
		},
		{
			name: "DeviceMismatch",
			setup: func() {
				rec := newBoundCode("dev_other", "tok")
				mockRepo.EXPECT().
					GetAccessCodeByCode(gomock.Any(), "ABC23456").
					Return(rec, nil)
			},
			device: device,
			err:    ErrDeviceMismatch,
		},
		{
			name: "LostBindRace",
			setup: func() {
				rec := newBoundCode("", "tok")
				mockRepo.EXPECT().
					GetAccessCodeByCode(gomock.Any(), "ABC23456").
					Return(rec, nil)
				mockAuth.EXPECT().NewSessionToken().Return("fresh-token", nil)
				mockRepo.EXPECT().
					BindDeviceSession(gomock.Any(), gomock.Any()).
					Return(repo.ErrDeviceBound)
			},
			device: device,
			err:    ErrDeviceMismatch,
		},
		{
			name: "FirstLoginBindsDevice",
			setup: func() {
				rec := newBoundCode("", "stale-token")
				mockRepo.EXPECT().
					GetAccessCodeByCode(gomock.Any(), "ABC23456").
					Return(rec, nil)
				mockAuth.EXPECT().NewSessionToken().Return("fresh-token", nil)
				mockRepo.EXPECT().
					BindDeviceSession(gomock.Any(), gomock.Any()).
					DoAndReturn(
						func(_ context.Context, bind *md.DeviceBind) error {
							assert.Equal(t, rec.ID, bind.ID)
							assert.Equal(t, device.DeviceID, bind.DeviceID)
							assert.Equal(t, "fresh-token", bind.SessionToken)
							assert.True(t, bind.SessionExpiry.After(time.Now()))
							return nil
						},
					)
				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any())
			},
			device: device,
			check: func(t *testing.T, res *dto.StudentDataResponse) {
				assert.Equal(t, "fresh-token", res.SessionToken)
				assert.Equal(t, device.DeviceID, res.DeviceID)
			},
		},
		{
			name: "RepeatLoginSameDeviceRotatesToken",
			setup: func() {
				rec := newBoundCode(device.DeviceID, "old-token")
				mockRepo.EXPECT().
					GetAccessCodeByCode(gomock.Any(), "ABC23456").
					Return(rec, nil)
				mockAuth.EXPECT().NewSessionToken().Return("rotated-token", nil)
				mockRepo.EXPECT().
					BindDeviceSession(gomock.Any(), gomock.Any()).
					Return(nil)
				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any())
			},
			device: device,
			check: func(t *testing.T, res *dto.StudentDataResponse) {
				assert.Equal(t, "rotated-token", res.SessionToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := svc.ValidateAccessCode(ctx, "ABC23456", tt.device)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Nil(t, res)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, res)
			tt.check(t, res)
		})
	}
}

func TestController_ValidateAccessCode_Audit(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	spy := &auditSpy{}
	svc := New(mockAuth, mockRepo, mockCache, spy, revocation.NewMemoryBus(), nil)

	rec := newBoundCode("dev_bound", "tok")
	mockRepo.EXPECT().
		GetAccessCodeByCode(gomock.Any(), rec.Code).
		Return(rec, nil)

	_, err := svc.ValidateAccessCode(
		ctx, rec.Code, &dto.DeviceInfoRequest{DeviceID: "dev_intruder", IP: "10.0.0.9"},
	)
	require.ErrorIs(t, err, ErrDeviceMismatch)

	require.Len(t, spy.events, 1)
	assert.Equal(t, audit.KindDeviceMismatch, spy.events[0].Kind)
	assert.Equal(t, audit.SeverityHigh, spy.events[0].Severity)
	assert.Equal(t, rec.ID, spy.events[0].SubjectID)
	assert.Equal(t, "dev_intruder", spy.events[0].Metadata["presentedDevice"])
}

func TestController_ValidateAccessCode_PublishesSupersession(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	bus := revocation.NewMemoryBus()
	svc := New(mockAuth, mockRepo, mockCache, audit.Noop{}, bus, nil)

	rec := newBoundCode("dev_abc", "old-token")

	var got []revocation.Signal
	unsub, err := bus.Subscribe(
		ctx, rec.ID, func(sig revocation.Signal) {
			got = append(got, sig)
		},
	)
	require.NoError(t, err)
	defer unsub()

	mockRepo.EXPECT().
		GetAccessCodeByCode(gomock.Any(), rec.Code).
		Return(rec, nil)
	mockAuth.EXPECT().NewSessionToken().Return("new-token", nil)
	mockRepo.EXPECT().BindDeviceSession(gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any())

	_, err = svc.ValidateAccessCode(ctx, rec.Code, &dto.DeviceInfoRequest{DeviceID: "dev_abc"})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, revocation.KindSessionSuperseded, got[0].Kind)
	assert.Equal(t, "new-token", got[0].SessionToken)
	assert.False(t, got[0].ClearsDevice())
}

func TestController_SubscribeRevocation(t *testing.T) {
	ctx := context.Background()
	bus := revocation.NewMemoryBus()
	svc := New(nil, nil, nil, audit.Noop{}, bus, nil)

	studentID := uuid.New()

	var got []revocation.Signal
	unsub, err := svc.SubscribeRevocation(
		ctx, studentID, func(sig revocation.Signal) {
			got = append(got, sig)
		},
	)
	require.NoError(t, err)

	sig := revocation.Signal{Kind: revocation.KindAdminReset, StudentID: studentID}
	require.NoError(t, bus.Publish(ctx, sig))
	require.Len(t, got, 1)
	assert.Equal(t, revocation.KindAdminReset, got[0].Kind)

	unsub()
	require.NoError(t, bus.Publish(ctx, sig))
	assert.Len(t, got, 1)
}

func TestController_ValidateActiveSession(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	spy := &auditSpy{}
	svc := New(mockAuth, mockRepo, mockCache, spy, revocation.NewMemoryBus(), nil)

	studentID := uuid.New()
	pastDate := time.Now().Add(-time.Hour)
	req := &dto.SessionRequest{
		StudentID:    studentID,
		SessionToken: "current-token",
		DeviceID:     "dev_abc",
	}

	tests := []struct {
		name  string
		setup func()
		err   error
	}{
		{
			name: "AccountNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetAccessCodeByID(gomock.Any(), studentID).
					Return(nil, repo.ErrNotFound)
			},
			err: ErrAccountNotFound,
		},
		{
			name: "AccountDisabled",
			setup: func() {
				rec := newBoundCode("dev_abc", "current-token")
				rec.IsActive = false
				mockRepo.EXPECT().
					GetAccessCodeByID(gomock.Any(), studentID).
					Return(rec, nil)
			},
			err: ErrAccountDisabled,
		},
		{
			name: "AccountExpired",
			setup: func() {
				rec := newBoundCode("dev_abc", "current-token")
				rec.ExpiryDate = &pastDate
				mockRepo.EXPECT().
					GetAccessCodeByID(gomock.Any(), studentID).
					Return(rec, nil)
			},
			err: ErrAccountExpired,
		},
		{
			// Same precedence as login: expiry wins over the
			// disabled flag.
			name: "ExpiredAndDisabledReadsExpired",
			setup: func() {
				rec := newBoundCode("dev_abc", "current-token")
				rec.IsActive = false
				rec.ExpiryDate = &pastDate
				mockRepo.EXPECT().
					GetAccessCodeByID(gomock.Any(), studentID).
					Return(rec, nil)
			},
			err: ErrAccountExpired,
		},
		{
			// ForceReauth blocks even when every credential still
			// matches the stored record.
			name: "ReauthRequiredBeatsMatchingCredentials",
			setup: func() {
				rec := newBoundCode("dev_abc", "current-token")
				rec.ForceReauth = true
				mockRepo.EXPECT().
					GetAccessCodeByID(gomock.Any(), studentID).
					Return(rec, nil)
			},
			err: ErrReauthRequired,
		},
		{
			name: "DeviceMismatch",
			setup: func() {
				rec := newBoundCode("dev_other", "current-token")
				mockRepo.EXPECT().
					GetAccessCodeByID(gomock.Any(), studentID).
					Return(rec, nil)
			},
			err: ErrDeviceMismatch,
		},
		{
			name: "NoBoundDeviceIsMismatch",
			setup: func() {
				rec := newBoundCode("", "current-token")
				mockRepo.EXPECT().
					GetAccessCodeByID(gomock.Any(), studentID).
					Return(rec, nil)
			},
			err: ErrDeviceMismatch,
		},
		{
			name: "RotatedTokenIsMismatch",
			setup: func() {
				rec := newBoundCode("dev_abc", "rotated-by-newer-login")
				mockRepo.EXPECT().
					GetAccessCodeByID(gomock.Any(), studentID).
					Return(rec, nil)
			},
			err: ErrSessionMismatch,
		},
		{
			name: "SessionExpired",
			setup: func() {
				rec := newBoundCode("dev_abc", "current-token")
				rec.SessionExpiry = time.Now().Add(-time.Minute)
				mockRepo.EXPECT().
					GetAccessCodeByID(gomock.Any(), studentID).
					Return(rec, nil)
			},
			err: ErrSessionExpired,
		},
		{
			name: "Success",
			setup: func() {
				rec := newBoundCode("dev_abc", "current-token")
				mockRepo.EXPECT().
					GetAccessCodeByID(gomock.Any(), studentID).
					Return(rec, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := svc.ValidateActiveSession(ctx, req)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Nil(t, res)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, "current-token", res.SessionToken)
		})
	}

	// The replay attempts above must have produced critical audit
	// events, one per device-mismatch case.
	var replays int
	for _, ev := range spy.events {
		if ev.Kind == audit.KindSessionReplay {
			replays++
			assert.Equal(t, audit.SeverityCritical, ev.Severity)
		}
	}
	assert.Equal(t, 2, replays)
}

func TestController_ResetDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	spy := &auditSpy{}
	bus := revocation.NewMemoryBus()
	svc := New(mockAuth, mockRepo, mockCache, spy, bus, nil)

	studentID := uuid.New()

	t.Run("NotFound", func(t *testing.T) {
		mockAuth.EXPECT().NewSessionToken().Return("tok", nil)
		mockRepo.EXPECT().
			ResetDeviceSession(gomock.Any(), studentID, "tok", gomock.Any()).
			Return(repo.ErrNotFound)

		require.ErrorIs(t, svc.ResetDevice(ctx, studentID), ErrNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		var got []revocation.Signal
		unsub, err := bus.Subscribe(
			ctx, studentID, func(sig revocation.Signal) {
				got = append(got, sig)
			},
		)
		require.NoError(t, err)
		defer unsub()

		mockAuth.EXPECT().NewSessionToken().Return("rotated", nil)
		mockRepo.EXPECT().
			ResetDeviceSession(gomock.Any(), studentID, "rotated", gomock.Any()).
			Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), fmt.Sprintf(accessCodeCacheKey, studentID))
		mockCache.EXPECT().
			InvalidateKeysByPattern(gomock.Any(), accessCodePattern).
			AnyTimes()

		require.NoError(t, svc.ResetDevice(ctx, studentID))

		require.Len(t, spy.events, 1)
		assert.Equal(t, audit.KindDeviceReset, spy.events[0].Kind)
		assert.Equal(t, audit.SeverityMedium, spy.events[0].Severity)

		require.Len(t, got, 1)
		assert.Equal(t, revocation.KindAdminReset, got[0].Kind)
		assert.True(t, got[0].ClearsDevice())
	})
}

func TestController_CreateAccessCode(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	svc := New(mockAuth, mockRepo, mockCache, audit.Noop{}, revocation.NewMemoryBus(), nil)

	testID := uuid.New()
	req := &dto.CreateAccessCodeRequest{
		StudentName: "Test Student",
		Category:    "premium",
	}

	t.Run("Success", func(t *testing.T) {
		mockAuth.EXPECT().NewSessionToken().Return("seed-token", nil)
		mockRepo.EXPECT().
			CreateAccessCode(gomock.Any(), gomock.Any()).
			DoAndReturn(
				func(_ context.Context, rec *md.AccessCode) (uuid.UUID, error) {
					assert.Len(t, rec.Code, config.AccessCodeLength)
					for _, ch := range rec.Code {
						assert.Contains(t, config.AccessCodeAlphabet, string(ch))
					}
					assert.True(t, rec.IsActive)
					assert.Nil(t, rec.DeviceID)
					return testID, nil
				},
			)
		mockCache.EXPECT().
			InvalidateKeysByPattern(gomock.Any(), accessCodePattern).
			AnyTimes()

		res, err := svc.CreateAccessCode(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, testID, res.ID)
		assert.Len(t, res.Code, config.AccessCodeLength)
	})

	t.Run("RetriesOnCollision", func(t *testing.T) {
		mockAuth.EXPECT().NewSessionToken().Return("seed-token", nil)

		var codes []string
		gomock.InOrder(
			mockRepo.EXPECT().
				CreateAccessCode(gomock.Any(), gomock.Any()).
				DoAndReturn(
					func(_ context.Context, rec *md.AccessCode) (uuid.UUID, error) {
						codes = append(codes, rec.Code)
						return uuid.Nil, repo.ErrAlreadyExists
					},
				),
			mockRepo.EXPECT().
				CreateAccessCode(gomock.Any(), gomock.Any()).
				DoAndReturn(
					func(_ context.Context, rec *md.AccessCode) (uuid.UUID, error) {
						codes = append(codes, rec.Code)
						return testID, nil
					},
				),
		)
		mockCache.EXPECT().
			InvalidateKeysByPattern(gomock.Any(), accessCodePattern).
			AnyTimes()

		res, err := svc.CreateAccessCode(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, testID, res.ID)
		require.Len(t, codes, 2)
		assert.NotEqual(t, codes[0], codes[1])
	})

	t.Run("GivesUpAfterRepeatedCollisions", func(t *testing.T) {
		mockAuth.EXPECT().NewSessionToken().Return("seed-token", nil)
		mockRepo.EXPECT().
			CreateAccessCode(gomock.Any(), gomock.Any()).
			Times(codeGenAttempts).
			Return(uuid.Nil, repo.ErrAlreadyExists)

		_, err := svc.CreateAccessCode(ctx, req)
		require.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, config.AccessCodeLength)

		// "0", "O", "1", "I" and "L" are excluded to keep codes easy
		// to read out loud.
		for _, ch := range code {
			assert.True(
				t,
				strings.ContainsRune(config.AccessCodeAlphabet, ch),
				"unexpected character %q in %q", ch, code,
			)
		}
		seen[code] = struct{}{}
	}

	assert.Greater(t, len(seen), 90)
}
