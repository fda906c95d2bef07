package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

type EventType string

const (
	EventFileUploaded EventType = "file.uploaded"
	EventFileDeleted  EventType = "file.deleted"
)

type FileEvent struct {
	Type       EventType   `json:"type"`
	FileID     uuid.UUID   `json:"file_id"`
	Name       string      `json:"name"`
	Size       int64       `json:"size"`
	Role       entity.Role `json:"role"`
	FolderID   string      `json:"folder_id"`
	UploadedBy string      `json:"uploaded_by"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func NewFileEvent(t EventType, file entity.FileRecord, at time.Time) FileEvent {
	return FileEvent{
		Type:       t,
		FileID:     file.ID,
		Name:       file.Name,
		Size:       file.Size,
		Role:       file.Role,
		FolderID:   file.FolderID,
		UploadedBy: file.UploadedBy,
		OccurredAt: at,
	}
}

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

func (p *Producer) FileUploaded(ctx context.Context, file entity.FileRecord) {
	p.send(ctx, NewFileEvent(EventFileUploaded, file, time.Now()))
}

func (p *Producer) FileDeleted(ctx context.Context, file entity.FileRecord) {
	p.send(ctx, NewFileEvent(EventFileDeleted, file, time.Now()))
}

func (p *Producer) send(ctx context.Context, event FileEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	// Keyed by folder so events of one folder stay ordered.
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(string(event.Role) + "/" + event.FolderID),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// NopProducer drops events. It is used when no brokers are configured.
type NopProducer struct{}

func (NopProducer) FileUploaded(context.Context, entity.FileRecord) {}

func (NopProducer) FileDeleted(context.Context, entity.FileRecord) {}

func (NopProducer) Close() {}
