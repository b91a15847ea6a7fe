package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal_ClearsDevice(t *testing.T) {
	assert.True(t, Signal{Kind: KindAdminReset}.ClearsDevice())
	assert.False(t, Signal{Kind: KindSessionSuperseded}.ClearsDevice())
}

func TestMemoryBus_FanOut(t *testing.T) {
	ctx := context.Background()
	bus := NewMemoryBus()
	studentID := uuid.New()

	var first, second []Signal
	unsub1, err := bus.Subscribe(ctx, studentID, func(sig Signal) { first = append(first, sig) })
	require.NoError(t, err)
	defer unsub1()

	unsub2, err := bus.Subscribe(ctx, studentID, func(sig Signal) { second = append(second, sig) })
	require.NoError(t, err)
	defer unsub2()

	sig := Signal{
		Kind:         KindSessionSuperseded,
		StudentID:    studentID,
		SessionToken: "tok",
		At:           time.Now(),
	}
	require.NoError(t, bus.Publish(ctx, sig))

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, sig, first[0])
	assert.Equal(t, sig, second[0])
}

func TestMemoryBus_PerStudentTopics(t *testing.T) {
	ctx := context.Background()
	bus := NewMemoryBus()

	target := uuid.New()
	bystander := uuid.New()

	var got []Signal
	unsub, err := bus.Subscribe(ctx, bystander, func(sig Signal) { got = append(got, sig) })
	require.NoError(t, err)
	defer unsub()

	require.NoError(t, bus.Publish(ctx, Signal{Kind: KindAdminReset, StudentID: target}))

	assert.Empty(t, got)
}

func TestMemoryBus_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	bus := NewMemoryBus()
	studentID := uuid.New()

	var got []Signal
	unsub, err := bus.Subscribe(ctx, studentID, func(sig Signal) { got = append(got, sig) })
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, Signal{Kind: KindAdminReset, StudentID: studentID}))
	require.Len(t, got, 1)

	unsub()

	require.NoError(t, bus.Publish(ctx, Signal{Kind: KindAdminReset, StudentID: studentID}))
	assert.Len(t, got, 1)
}

func TestMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(
		t, bus.Publish(context.Background(), Signal{Kind: KindAdminReset, StudentID: uuid.New()}),
	)
}
