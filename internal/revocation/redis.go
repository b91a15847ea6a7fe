package revocation

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const channelPrefix = "revocation:"

// RedisBus fans signals out across service instances over redis
// pub/sub. Delivery is at-most-once, which is enough here: the session
// poll is the enforcement path, the bus only shortens the latency.
type RedisBus struct {
	cli *redis.Client
}

func NewRedisBus(cli *redis.Client) *RedisBus {
	return &RedisBus{cli: cli}
}

func (b *RedisBus) Publish(ctx context.Context, sig Signal) error {
	payload, err := json.Marshal(sig)
	if err != nil {
		return err
	}

	return b.cli.Publish(ctx, channelPrefix+sig.StudentID.String(), payload).Err()
}

func (b *RedisBus) Subscribe(ctx context.Context, studentID uuid.UUID, h Handler) (func(), error) {
	sub := b.cli.Subscribe(ctx, channelPrefix+studentID.String())
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	go func() {
		for msg := range sub.Channel() {
			var sig Signal
			if err := json.Unmarshal([]byte(msg.Payload), &sig); err != nil {
				zap.L().Warn(
					"malformed revocation payload, treating as logout",
					zap.String("studentId", studentID.String()),
					zap.Error(err),
				)

				// Fail open toward safety: an unreadable signal
				// still logs the client out.
				sig = Signal{
					Kind:      KindSessionSuperseded,
					StudentID: studentID,
					At:        time.Now(),
				}
			}
			h(sig)
		}
	}()

	return func() {
		if err := sub.Close(); err != nil {
			zap.L().Debug("failed to close revocation subscription", zap.Error(err))
		}
	}, nil
}
