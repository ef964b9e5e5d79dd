package mqx

import (
	"context"
	"testing"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTraceMq(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	q := NewTraceMq(memory.NewMQ(), tp)
	ctx := context.Background()
	require.NoError(t, q.CreateTopic(ctx, "trace_events", 1))

	consumer, err := q.Consumer("trace_events", "test")
	require.NoError(t, err)
	producer, err := q.Producer("trace_events")
	require.NoError(t, err)

	_, err = producer.Produce(ctx, &mq.Message{Value: []byte(`{"id":1}`)})
	require.NoError(t, err)
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":1}`), msg.Value)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "mq.produce", spans[0].Name())
	assert.Equal(t, "mq.consume", spans[1].Name())
	for _, span := range spans {
		assert.Equal(t, codes.Ok, span.Status().Code)
	}
}
