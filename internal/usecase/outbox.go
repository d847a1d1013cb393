package usecase

import (
	"time"

	"github.com/google/uuid"
)

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ProductUpserted OutboxEventType = "product.upserted"
	ProductDeleted  OutboxEventType = "product.deleted"
)

// OutboxEvent — событие изменения каталога, записываемое в одной транзакции
// с мутацией и публикуемое в брокер фоновым воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	EntityID    uuid.UUID
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// ProductEventPayload — JSON-тело события изменения продуктов.
type ProductEventPayload struct {
	EventType  OutboxEventType `json:"event_type"`
	ProductIDs []uuid.UUID     `json:"product_ids"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func NewOutboxEvent(eventType OutboxEventType, entityID uuid.UUID, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		EntityID:  entityID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}
