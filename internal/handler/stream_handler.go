package handler

import (
	"context"
	"encoding/json"

	"ai-chatdesk-be/internal/pkg/logger"
	internalWS "ai-chatdesk-be/internal/websocket"
	"ai-chatdesk-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// StreamHandler bridges the in-process event bus to websocket clients:
// reveal chunks go to the session that owns them, document index updates
// go to everyone.
type StreamHandler struct {
	subscriber message.Subscriber
	hub        *internalWS.Hub
	logger     logger.ILogger
}

func NewStreamHandler(subscriber message.Subscriber, hub *internalWS.Hub, log logger.ILogger) *StreamHandler {
	return &StreamHandler{
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

// Run consumes bus topics until the context is cancelled. Call it in its
// own goroutine alongside hub.Run.
func (h *StreamHandler) Run(ctx context.Context) error {
	reveals, err := h.subscriber.Subscribe(ctx, events.TopicChatReveal)
	if err != nil {
		return err
	}
	ingests, err := h.subscriber.Subscribe(ctx, events.TopicDocumentIngested)
	if err != nil {
		return err
	}
	closed, err := h.subscriber.Subscribe(ctx, events.TopicChatSessionClosed)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-reveals:
			if !ok {
				return nil
			}
			h.forwardReveal(msg)
		case msg, ok := <-ingests:
			if !ok {
				return nil
			}
			h.hub.Broadcast(frame(events.TopicDocumentIngested, msg.Payload))
			msg.Ack()
		case msg, ok := <-closed:
			if !ok {
				return nil
			}
			h.closeSession(msg)
		}
	}
}

func (h *StreamHandler) forwardReveal(msg *message.Message) {
	defer msg.Ack()

	var payload events.ChatRevealPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.logger.Warn("StreamHandler", "Dropping malformed reveal event", map[string]interface{}{"error": err.Error()})
		return
	}
	sessionID, err := uuid.Parse(payload.ChatSessionId)
	if err != nil {
		h.logger.Warn("StreamHandler", "Reveal event with bad session id", map[string]interface{}{"chat_session_id": payload.ChatSessionId})
		return
	}
	h.hub.Send(sessionID, frame(events.TopicChatReveal, msg.Payload))
}

func (h *StreamHandler) closeSession(msg *message.Message) {
	defer msg.Ack()

	var payload events.ChatSessionClosedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return
	}
	if sessionID, err := uuid.Parse(payload.ChatSessionId); err == nil {
		h.hub.CloseSession(sessionID)
	}
}

func frame(eventType string, payload []byte) []byte {
	data, _ := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": json.RawMessage(payload),
	})
	return data
}

// ServeWs upgrades a connection that watches one chat session's stream.
func (h *StreamHandler) ServeWs(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("StreamHandler", "Starting WebSocket session", map[string]interface{}{"chat_session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("StreamHandler", "WebSocket session ended", map[string]interface{}{"chat_session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the stream routes.
func (h *StreamHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/chat/:session_id", h.ServeWs)
}
