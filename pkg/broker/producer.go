package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/billing/internal/entity"
	"github.com/samandr77/microservices/billing/pkg/logger"
)

const headerRequestID = "request_id"

type Topics struct {
	BillPaid       string
	PaymentCreated string
	BillOverdue    string
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	l      *slog.Logger
	w      messageWriter
	topics Topics
}

func NewProducer(l *slog.Logger, brokers []string, topics Topics) *Producer {
	l = l.WithGroup("kafka")

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return newProducer(l, w, topics)
}

func newProducer(l *slog.Logger, w messageWriter, topics Topics) *Producer {
	return &Producer{
		l:      l,
		w:      w,
		topics: topics,
	}
}

type BillPaidEvent struct {
	BillID           int64           `json:"bill_id"`
	ServiceAccountID int64           `json:"service_account_id"`
	PaymentID        int64           `json:"payment_id"`
	PaySystemID      int64           `json:"paysystem_id"`
	Amount           decimal.Decimal `json:"amount"`
	PayedDate        time.Time       `json:"payed_date"`
}

type PaymentCreatedEvent struct {
	Payment entity.Payment `json:"payment"`
}

type BillOverdueEvent struct {
	BillID           int64           `json:"bill_id"`
	ServiceAccountID int64           `json:"service_account_id"`
	PropertyID       int64           `json:"property_id,omitempty"`
	AccountNumber    string          `json:"account_number,omitempty"`
	Provider         string          `json:"provider,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	DueDate          time.Time       `json:"due_date"`
}

func (p *Producer) SendBillPaid(ctx context.Context, bill entity.Bill, payment entity.Payment) {
	event := BillPaidEvent{
		BillID:           bill.ID,
		ServiceAccountID: bill.ServiceAccountID,
		PaymentID:        payment.ID,
		PaySystemID:      payment.PaySystemID,
		Amount:           bill.Amount,
	}

	if bill.PayedDate != nil {
		event.PayedDate = *bill.PayedDate
	}

	p.send(ctx, p.topics.BillPaid, bill.ID, event)
}

func (p *Producer) SendPaymentCreated(ctx context.Context, payment entity.Payment) {
	p.send(ctx, p.topics.PaymentCreated, payment.BillID, PaymentCreatedEvent{Payment: payment})
}

// SendBillOverdue expects an enriched bill; the account and provider are copied into the event.
func (p *Producer) SendBillOverdue(ctx context.Context, bill entity.Bill) {
	event := BillOverdueEvent{
		BillID:           bill.ID,
		ServiceAccountID: bill.ServiceAccountID,
		Amount:           bill.Amount,
	}

	if bill.DueDate != nil {
		event.DueDate = *bill.DueDate
	}

	if sa := bill.ServiceAccount; sa != nil {
		event.PropertyID = sa.PropertyID
		event.AccountNumber = sa.AccountNumber

		if sa.Provider != nil {
			event.Provider = sa.Provider.Title
		}
	}

	p.send(ctx, p.topics.BillOverdue, bill.ID, event)
}

// send keys messages by bill id so events of one bill keep their order.
func (p *Producer) send(ctx context.Context, topic string, billID int64, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(billID, 10)),
		Value: b,
		Topic: topic,
	}

	if requestID := logger.RequestIDFromCtx(ctx); requestID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: headerRequestID, Value: []byte(requestID)})
	}

	err = p.w.WriteMessages(ctx, msg)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err), slog.String("topic", topic))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// NopProducer drops every event. It stands in when no brokers are configured.
type NopProducer struct{}

func (NopProducer) SendBillPaid(context.Context, entity.Bill, entity.Payment) {}

func (NopProducer) SendPaymentCreated(context.Context, entity.Payment) {}

func (NopProducer) SendBillOverdue(context.Context, entity.Bill) {}

func (NopProducer) Close() {}
