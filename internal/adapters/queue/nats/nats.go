package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/config"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

func connect(cfg config.NATSConfig, name string, logger *slog.Logger) (*nats.Conn, jetstream.JetStream, error) {
	opts := []nats.Option{
		nats.Name(name),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}
	return conn, js, nil
}

// Queue is the producer side of the job queue
type Queue struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

// NewQueue connects and ensures the job stream exists
func NewQueue(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Queue, error) {
	conn, js, err := connect(cfg, cfg.StreamName+"-producer", logger)
	if err != nil {
		return nil, err
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      cfg.StreamName,
		Subjects:  []string{cfg.Subject},
		Retention: jetstream.WorkQueuePolicy,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	return &Queue{logger: logger, conn: conn, js: js, config: cfg}, nil
}

// Enqueue publishes a job message on the stream
func (q *Queue) Enqueue(ctx context.Context, msg domain.JobMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal job message: %w", err)
	}

	if _, err := q.js.Publish(ctx, q.config.Subject, payload); err != nil {
		return fmt.Errorf("failed to publish job message: %w", err)
	}

	q.logger.Info("job enqueued",
		slog.String("job_id", msg.JobID.String()),
		slog.String("file_id", msg.FileID.String()))
	return nil
}

// Connected reports broker liveness for the status endpoint
func (q *Queue) Connected() bool {
	return q.conn != nil && q.conn.IsConnected()
}

// Close releases the connection
func (q *Queue) Close() error {
	if q.conn != nil {
		q.conn.Close()
	}
	return nil
}

// Consumer is the worker side of the job queue. The durable deliver-group
// consumer guarantees no two workers hold the same job at once; an
// unacknowledged message is redelivered after AckWait.
type Consumer struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
	iter   jetstream.MessagesContext
	wg     sync.WaitGroup
}

// NewConsumer creates a consumer bound to the job stream
func NewConsumer(cfg config.NATSConfig, logger *slog.Logger) (*Consumer, error) {
	conn, js, err := connect(cfg, cfg.ConsumerName, logger)
	if err != nil {
		return nil, err
	}
	return &Consumer{logger: logger, conn: conn, js: js, config: cfg}, nil
}

// Subscribe starts a consume loop feeding the handler. A handler error Naks
// the message for redelivery; nil acknowledges it.
func (c *Consumer) Subscribe(ctx context.Context, handler port.MessageService) error {
	consumerCfg := jetstream.ConsumerConfig{
		Durable:       c.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		FilterSubject: c.config.Subject,
		AckWait:       30 * time.Second,
		MaxDeliver:    10,
		BackOff:       []time.Duration{time.Second, 5 * time.Second},
	}

	cons, err := c.js.CreateOrUpdateConsumer(ctx, c.config.StreamName, consumerCfg)
	if err != nil {
		return err
	}

	iter, err := cons.Messages()
	if err != nil {
		return err
	}
	c.iter = iter

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.logger.Info("job subscription started")
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("job subscription stopped")
				return
			default:
				msg, err := iter.Next()
				if err != nil {
					if ctx.Err() != nil {
						c.logger.Info("job subscription stopped")
						return
					}
					c.logger.Error("failed to receive message", "error", err)
					return
				}

				if handleErr := handler.HandleMessage(ctx, msg.Data()); handleErr != nil {
					if errNak := msg.Nak(); errNak != nil {
						c.logger.Error("failed to nak message", "error", errNak)
					}
					c.logger.Warn("job requeued", "error", handleErr)
					continue
				}
				if ackErr := msg.Ack(); ackErr != nil {
					c.logger.Error("failed to ack message", "error", ackErr)
				}
			}
		}
	}()
	return nil
}

// Close graceful shutdown
func (c *Consumer) Close() error {
	if c.iter != nil {
		c.iter.Stop()
	}

	c.wg.Wait()

	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
