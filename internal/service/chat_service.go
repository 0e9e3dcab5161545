package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"ai-chatdesk-be/internal/constant"
	"ai-chatdesk-be/internal/dto"
	"ai-chatdesk-be/internal/entity"
	"ai-chatdesk-be/internal/pkg/logger"
	"ai-chatdesk-be/internal/repository/contract"
	"ai-chatdesk-be/pkg/backend"
	"ai-chatdesk-be/pkg/resource"
	"ai-chatdesk-be/pkg/staging"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("chat session not found")

type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
	Send(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type chatService struct {
	sessionRepo   contract.ChatSessionRepository
	messageRepo   contract.ChatMessageRepository
	provider      backend.Provider
	staging       *staging.Area
	streamService IStreamService
	logger        logger.ILogger

	// One mutex per session keeps concurrent sends appending in FIFO
	// order instead of interleaving their turn pairs.
	locks sync.Map
}

func NewChatService(
	sessionRepo contract.ChatSessionRepository,
	messageRepo contract.ChatMessageRepository,
	provider backend.Provider,
	stagingArea *staging.Area,
	streamService IStreamService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo:   sessionRepo,
		messageRepo:   messageRepo,
		provider:      provider,
		staging:       stagingArea,
		streamService: streamService,
		logger:        log,
	}
}

func (c *chatService) sessionLock(id uuid.UUID) *sync.Mutex {
	v, _ := c.locks.LoadOrStore(id, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func (c *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	session := entity.ChatSession{
		Id:        uuid.New(),
		Title:     constant.DefaultSessionTitle,
		CreatedAt: time.Now(),
	}
	if err := c.sessionRepo.Save(ctx, &session); err != nil {
		return nil, err
	}
	return &dto.CreateSessionResponse{
		Id:    session.Id,
		Title: session.Title,
	}, nil
}

func (c *chatService) GetAllSessions(ctx context.Context) ([]*dto.GetAllSessionsResponse, error) {
	sessions, err := c.sessionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GetAllSessionsResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, &dto.GetAllSessionsResponse{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}
	return result, nil
}

func (c *chatService) GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	session, err := c.sessionRepo.FindOne(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	messages, err := c.messageRepo.FindBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GetChatHistoryResponse, 0, len(messages))
	for _, msg := range messages {
		result = append(result, &dto.GetChatHistoryResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Chat:      msg.Chat,
			CreatedAt: msg.CreatedAt,
			Sources:   toSourceDTOs(msg.Sources),
		})
	}
	return result, nil
}

func (c *chatService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	if err := c.messageRepo.DeleteBySessionId(ctx, sessionId); err != nil {
		return err
	}
	// Delete is idempotent, removing a missing session succeeds.
	if err := c.sessionRepo.Delete(ctx, sessionId); err != nil {
		return err
	}
	c.locks.Delete(sessionId)
	c.streamService.PublishSessionClosed(ctx, sessionId)
	return nil
}

// Send dispatches one turn: the user message is appended first, then the
// backend is consulted, then the reply (or a visible failure notice) is
// appended. A backend failure never rolls the user message back.
func (c *chatService) Send(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	session, err := c.sessionRepo.FindOne(ctx, req.ChatSessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	lock := c.sessionLock(session.Id)
	lock.Lock()
	defer lock.Unlock()

	recording, hasAudio := c.staging.PendingAudio()
	if !hasAudio && strings.TrimSpace(req.Chat) == "" && c.staging.Len() == 0 {
		// Nothing to dispatch. Not an error, the composer simply stays put.
		return &dto.SendChatResponse{
			ChatSessionId:    session.Id,
			ChatSessionTitle: session.Title,
		}, nil
	}

	// Staged entries are display state for this turn only; ingestion
	// already happened at upload time.
	c.staging.Clear()

	userText := req.Chat
	if hasAudio {
		// Pending audio preempts typed text for this turn.
		userText = constant.VoiceQueryLabelPrefix + recording.Name
	}

	count, err := c.messageRepo.CountBySessionId(ctx, session.Id)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		session.Title = deriveTitle(userText)
		now := time.Now()
		session.UpdatedAt = &now
		if err := c.sessionRepo.Save(ctx, session); err != nil {
			return nil, err
		}
	}

	userMsg := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleUser,
		Chat:          userText,
		CreatedAt:     time.Now(),
	}
	if err := c.messageRepo.Create(ctx, &userMsg); err != nil {
		return nil, err
	}

	var result *backend.QueryResult
	if hasAudio {
		result, err = c.provider.QuerySpeech(ctx, recording.Name, recording.Payload)
	} else {
		result, err = c.provider.QueryText(ctx, req.Chat)
	}

	replyText := ""
	var sources []entity.SourceRef
	failed := false
	if err != nil {
		c.logger.Error("ChatService", "Backend query failed", map[string]interface{}{
			"chat_session_id": session.Id,
			"error":           err.Error(),
		})
		replyText = constant.BackendFailureReply
		failed = true
	} else {
		replyText = result.Text
		sources = result.Sources
	}

	replyMsg := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleModel,
		Chat:          replyText,
		Sources:       sources,
		CreatedAt:     time.Now(),
	}
	if err := c.messageRepo.Create(ctx, &replyMsg); err != nil {
		return nil, err
	}

	// Reveal runs detached from the request lifetime.
	go c.streamService.RevealReply(context.Background(), session.Id, replyText, failed)

	return &dto.SendChatResponse{
		ChatSessionId:    session.Id,
		ChatSessionTitle: session.Title,
		Sent: &dto.SendChatResponseChat{
			Id:        userMsg.Id,
			Chat:      userMsg.Chat,
			Role:      userMsg.Role,
			CreatedAt: userMsg.CreatedAt,
		},
		Reply: &dto.SendChatResponseChat{
			Id:        replyMsg.Id,
			Chat:      replyMsg.Chat,
			Role:      replyMsg.Role,
			CreatedAt: replyMsg.CreatedAt,
			Sources:   toSourceDTOs(replyMsg.Sources),
		},
		Failed: failed,
	}, nil
}

// deriveTitle builds a session title from the first user message.
func deriveTitle(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return constant.DefaultSessionTitle
	}
	runes := []rune(trimmed)
	if len(runes) <= constant.SessionTitleMaxRunes {
		return trimmed
	}
	return string(runes[:constant.SessionTitleMaxRunes]) + "…"
}

func toSourceDTOs(refs []entity.SourceRef) []dto.SourceRefDTO {
	if len(refs) == 0 {
		return nil
	}
	result := make([]dto.SourceRefDTO, 0, len(refs))
	for _, ref := range refs {
		d := dto.SourceRefDTO{Name: ref.Name}
		if ref.Kind == entity.SourceInteractive {
			d.Path = ref.Path
			d.Interactive = true
			if id, err := resource.PathToResourceID(ref.Path); err == nil {
				d.ResourceId = id
			}
		}
		result = append(result, d)
	}
	return result
}
