package nats_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	natsqueue "github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/queue/nats"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/config"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type mockHandler struct {
	messages [][]byte
	received chan struct{}
	err      error
	mu       sync.Mutex
}

func (m *mockHandler) HandleMessage(ctx context.Context, data []byte) error {
	m.mu.Lock()
	m.messages = append(m.messages, data)
	m.mu.Unlock()

	if m.received != nil {
		m.received <- struct{}{}
	}
	return m.err
}

func (m *mockHandler) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

func setupNATSContainer(t *testing.T) (string, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "nats:2.10-alpine",
		ExposedPorts: []string{"4222/tcp"},
		Cmd:          []string{"-js"},
		WaitingFor:   wait.ForLog("Server is ready"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "4222")
	require.NoError(t, err)

	cleanup := func() {
		_ = container.Terminate(ctx)
	}

	return "nats://" + host + ":" + port.Port(), cleanup
}

func natsConfig(url, name string) config.NATSConfig {
	return config.NATSConfig{
		URL:          url,
		StreamName:   name + "-stream",
		Subject:      name + ".jobs",
		ConsumerName: name + "-worker",
		DeliverGroup: name + "-workers",
	}
}

func TestQueue_EnqueueAndConsume(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	cfg := natsConfig(natsURL, "thumb")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	queue, err := natsqueue.NewQueue(ctx, cfg, logger)
	require.NoError(t, err)
	defer func() { _ = queue.Close() }()

	consumer, err := natsqueue.NewConsumer(cfg, logger)
	require.NoError(t, err)
	defer func() { _ = consumer.Close() }()

	handler := &mockHandler{received: make(chan struct{}, 1)}

	msg := domain.JobMessage{
		JobID:   uuid.New(),
		FileID:  uuid.New(),
		OwnerID: uuid.New(),
	}

	// Act
	err = consumer.Subscribe(ctx, handler)
	require.NoError(t, err)

	err = queue.Enqueue(ctx, msg)
	require.NoError(t, err)

	select {
	case <-handler.received:
	case <-time.After(3 * time.Second):
		t.Fatal("message not received")
	}

	// Assert
	require.Equal(t, 1, handler.count())
	var got domain.JobMessage
	require.NoError(t, json.Unmarshal(handler.messages[0], &got))
	assert.Equal(t, msg, got)
}

func TestQueue_Connected(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	cfg := natsConfig(natsURL, "status")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	queue, err := natsqueue.NewQueue(ctx, cfg, logger)
	require.NoError(t, err)

	// Act & Assert
	assert.True(t, queue.Connected())

	require.NoError(t, queue.Close())
	assert.False(t, queue.Connected())
}

func TestConsumer_HandlerErrorRedelivers(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	cfg := natsConfig(natsURL, "retry")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	queue, err := natsqueue.NewQueue(ctx, cfg, logger)
	require.NoError(t, err)
	defer func() { _ = queue.Close() }()

	consumer, err := natsqueue.NewConsumer(cfg, logger)
	require.NoError(t, err)
	defer func() { _ = consumer.Close() }()

	handler := &mockHandler{
		received: make(chan struct{}, 2),
		err:      assert.AnError,
	}

	// Act
	err = consumer.Subscribe(ctx, handler)
	require.NoError(t, err)

	err = queue.Enqueue(ctx, domain.JobMessage{JobID: uuid.New(), FileID: uuid.New(), OwnerID: uuid.New()})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		select {
		case <-handler.received:
		case <-time.After(5 * time.Second):
			t.Fatal("expected redelivery")
		}
	}

	// Assert - the nak'd message came back
	assert.GreaterOrEqual(t, handler.count(), 2)
}

func TestConsumer_GracefulShutdown(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	cfg := natsConfig(natsURL, "shutdown")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	queue, err := natsqueue.NewQueue(ctx, cfg, logger)
	require.NoError(t, err)
	defer func() { _ = queue.Close() }()

	consumer, err := natsqueue.NewConsumer(cfg, logger)
	require.NoError(t, err)

	handler := &mockHandler{received: make(chan struct{}, 1)}

	// Act
	require.NoError(t, consumer.Subscribe(ctx, handler))
	require.NoError(t, consumer.Close())

	err = queue.Enqueue(ctx, domain.JobMessage{JobID: uuid.New(), FileID: uuid.New(), OwnerID: uuid.New()})
	require.NoError(t, err)

	// Assert
	select {
	case <-handler.received:
		t.Fatal("message should not have been processed after Close")
	case <-time.After(500 * time.Millisecond):
	}
}
