package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/vfg2006/synnex-gateway/internal/config"
	"github.com/vfg2006/synnex-gateway/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	headerEventType        = "event-type"
	eventOrderStatusChange = "order.status.changed"
)

var ErrMessagingDisabled = errors.New("kafka publisher disabled: no brokers configured")

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks
type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event domain.OrderStatusChanged) error
	Close()
}

// producer é o recorte de *kgo.Client usado aqui
type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type kafkaPublisher struct {
	producer producer
	topic    string
}

func NewKafkaPublisher(cfg config.Kafka) (EventPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrMessagingDisabled
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.DefaultProduceTopic(cfg.OrderStatusTopic),
		kgo.AllowAutoTopicCreation(),
		kgo.RequestRetries(3),
		kgo.DialTimeout(5*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente kafka: %w", err)
	}

	return newKafkaPublisher(client, cfg.OrderStatusTopic), nil
}

func newKafkaPublisher(p producer, topic string) *kafkaPublisher {
	return &kafkaPublisher{producer: p, topic: topic}
}

// PublishOrderStatusChanged usa o número do PO como chave para manter a ordem por pedido
func (k *kafkaPublisher) PublishOrderStatusChanged(ctx context.Context, event domain.OrderStatusChanged) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao codificar evento: %w", err)
	}

	record := &kgo.Record{
		Topic: k.topic,
		Key:   []byte(event.PONumber),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: headerEventType, Value: []byte(eventOrderStatusChange)},
		},
	}

	if err := k.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("erro ao publicar evento de status do pedido %s: %w", event.PONumber, err)
	}

	logrus.WithFields(logrus.Fields{
		"po_number": event.PONumber,
		"topic":     k.topic,
		"status":    event.CurrentStatus,
	}).Debug("Evento de mudança de status publicado")

	return nil
}

func (k *kafkaPublisher) Close() {
	k.producer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher é usado quando não há brokers configurados
func NewNoopPublisher() EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishOrderStatusChanged(ctx context.Context, event domain.OrderStatusChanged) error {
	logrus.WithField("po_number", event.PONumber).Debug("Publicação de eventos desabilitada, evento descartado")
	return nil
}

func (noopPublisher) Close() {}
