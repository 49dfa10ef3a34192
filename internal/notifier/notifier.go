package notifier

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"siakad/backend/internal/model"
	"siakad/backend/pkg/redis"
)

// Notifier publishes push-notification jobs for published announcements.
// The actual delivery (FCM or similar) is done by a separate worker
// consuming the queue.
type Notifier interface {
	PublishAnnouncement(ctx context.Context, a *model.Announcement) error
}

// Message is the queue payload, one per published announcement.
type Message struct {
	AnnouncementID string    `json:"announcement_id"`
	Title          string    `json:"title"`
	Audience       string    `json:"audience"`
	ClassID        string    `json:"class_id,omitempty"`
	PublishedAt    time.Time `json:"published_at"`
}

// redisNotifier pushes messages onto a Redis list.
type redisNotifier struct {
	client *redis.Client
	queue  string
	logger *zap.Logger
}

// NewRedisNotifier builds a queue-backed Notifier. A nil Redis client
// degrades to a no-op: announcements still publish, nothing is pushed.
func NewRedisNotifier(client *redis.Client, queue string, logger *zap.Logger) Notifier {
	if client == nil {
		logger.Warn("redis unavailable, push notifications disabled")
		return noopNotifier{}
	}
	return &redisNotifier{client: client, queue: queue, logger: logger}
}

func (n *redisNotifier) PublishAnnouncement(ctx context.Context, a *model.Announcement) error {
	msg := Message{
		AnnouncementID: a.AnnouncementID,
		Title:          a.Title,
		Audience:       a.Audience,
	}
	if a.ClassID != nil {
		msg.ClassID = *a.ClassID
	}
	if a.PublishedAt != nil {
		msg.PublishedAt = *a.PublishedAt
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := n.client.Enqueue(ctx, n.queue, payload); err != nil {
		n.logger.Error("gagal enqueue notifikasi pengumuman",
			zap.String("announcement_id", a.AnnouncementID),
			zap.Error(err))
		return err
	}
	return nil
}

type noopNotifier struct{}

func (noopNotifier) PublishAnnouncement(context.Context, *model.Announcement) error { return nil }
