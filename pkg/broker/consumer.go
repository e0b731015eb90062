package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/billing/pkg/logger"
)

type Consumer struct {
	l             *slog.Logger
	r             *kafka.Reader
	wg            *sync.WaitGroup
	topicHandlers map[string]func(context.Context, kafka.Message) error
}

func NewConsumer(
	brokers []string,
	groupID string,
	topics ...string,
) *Consumer {
	l := slog.Default().WithGroup("kafka").With("group_id", groupID)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		Logger:      &infoLogger{l: l},
		ErrorLogger: &errorLogger{l: l},
	})

	return &Consumer{
		l:             l,
		r:             r,
		wg:            &sync.WaitGroup{},
		topicHandlers: make(map[string]func(context.Context, kafka.Message) error),
	}
}

func (c *Consumer) Handle(topic string, handler func(context.Context, kafka.Message) error) *Consumer {
	c.topicHandlers[topic] = handler
	return c
}

func (c *Consumer) Consume(ctx context.Context) *Consumer {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		for {
			m, err := c.r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, io.EOF) {
					c.l.Info("consumer stopped")
					return
				}

				c.l.Error(fmt.Sprintf("read kafka message: %s", err))

				continue
			}

			c.dispatch(ctx, m)
		}
	}()

	return c
}

func (c *Consumer) dispatch(ctx context.Context, m kafka.Message) {
	handler, ok := c.topicHandlers[m.Topic]
	if !ok {
		c.l.Warn("kafka handler not found", "topic", m.Topic)
		return
	}

	ctx = logger.WithOperation(ctx, m.Topic)
	ctx = withMessageRequestID(ctx, m)

	err := handler(ctx, m)
	if err != nil {
		c.l.ErrorContext(ctx, fmt.Sprintf("handler kafka msg: %s", err),
			slog.Int("partition", m.Partition), slog.Int64("offset", m.Offset))
	}
}

func withMessageRequestID(ctx context.Context, m kafka.Message) context.Context {
	for _, h := range m.Headers {
		if h.Key == headerRequestID && len(h.Value) > 0 {
			return logger.WithRequestID(ctx, string(h.Value))
		}
	}

	return logger.WithNewRequestID(ctx)
}

func (c *Consumer) Close() {
	err := c.r.Close()
	if err != nil {
		c.l.Error(fmt.Sprintf("close kafka reader: %s", err))
	}

	c.wg.Wait()
}
