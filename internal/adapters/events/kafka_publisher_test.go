package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/results/internal/tenant"
)

type recordingWriter struct {
	msgs []kafka.Message
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestNewKafkaPublisher_RequiresBrokers(t *testing.T) {
	t.Parallel()

	_, err := NewKafkaPublisher(nil, nil)
	assert.Error(t, err)
}

func TestKafkaPublisher_PublishUserUpdated(t *testing.T) {
	t.Parallel()

	w := &recordingWriter{}
	p := &KafkaPublisher{writer: w, topicByEvent: map[string]string{tenant.EventUserUpdated: "tenant-users"}}

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, p.PublishUserUpdated(context.Background(), tenant.UserUpdated{UserID: 1, Name: "Vince", OccurredAt: at}))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "tenant-users", msg.Topic)
	assert.Equal(t, "1", string(msg.Key))

	var env Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	assert.Equal(t, tenant.EventUserUpdated, env.EventType)
	assert.True(t, env.OccurredAt.Equal(at))
	_, err := uuid.Parse(env.EventID)
	assert.NoError(t, err)

	var data tenant.UserUpdated
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Vince", data.Name)
}

func TestKafkaPublisher_DefaultTopic(t *testing.T) {
	t.Parallel()

	w := &recordingWriter{}
	p := &KafkaPublisher{writer: w}
	require.NoError(t, p.PublishUserUpdated(context.Background(), tenant.UserUpdated{UserID: 0}))
	assert.Equal(t, tenant.EventUserUpdated, w.msgs[0].Topic)
}
