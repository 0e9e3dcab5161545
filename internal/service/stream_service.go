package service

import (
	"context"
	"encoding/json"

	"ai-chatdesk-be/internal/pkg/logger"
	"ai-chatdesk-be/pkg/events"
	"ai-chatdesk-be/pkg/reveal"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IStreamService interface {
	// RevealReply publishes a reply as paced chunks on the event bus.
	// Blocking; run it in a goroutine when the caller must not wait.
	RevealReply(ctx context.Context, sessionId uuid.UUID, text string, failed bool)
	PublishDocumentIngested(ctx context.Context, payload events.DocumentIngestedPayload)
	PublishSessionClosed(ctx context.Context, sessionId uuid.UUID)
}

type streamService struct {
	publisher message.Publisher
	pacer     *reveal.Pacer
	logger    logger.ILogger
}

func NewStreamService(publisher message.Publisher, pacer *reveal.Pacer, log logger.ILogger) IStreamService {
	return &streamService{
		publisher: publisher,
		pacer:     pacer,
		logger:    log,
	}
}

func (s *streamService) publish(topic string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("StreamService", "Encode event payload failed", map[string]interface{}{"topic": topic, "error": err.Error()})
		return
	}
	if err := s.publisher.Publish(topic, message.NewMessage(watermill.NewUUID(), data)); err != nil {
		s.logger.Warn("StreamService", "Publish failed", map[string]interface{}{"topic": topic, "error": err.Error()})
	}
}

func (s *streamService) RevealReply(ctx context.Context, sessionId uuid.UUID, text string, failed bool) {
	seq := 0
	err := s.pacer.Stream(ctx, text, func(chunk string, done bool) {
		s.publish(events.TopicChatReveal, events.ChatRevealPayload{
			ChatSessionId: sessionId.String(),
			Seq:           seq,
			Chunk:         chunk,
			Done:          done,
			Failed:        failed && done,
		})
		seq++
	})
	if err != nil {
		s.logger.Warn("StreamService", "Reveal stream interrupted", map[string]interface{}{"chat_session_id": sessionId, "error": err.Error()})
	}
}

func (s *streamService) PublishDocumentIngested(_ context.Context, payload events.DocumentIngestedPayload) {
	s.publish(events.TopicDocumentIngested, payload)
}

func (s *streamService) PublishSessionClosed(_ context.Context, sessionId uuid.UUID) {
	s.publish(events.TopicChatSessionClosed, events.ChatSessionClosedPayload{
		ChatSessionId: sessionId.String(),
	})
}
