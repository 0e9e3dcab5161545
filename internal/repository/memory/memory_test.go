package memory

import (
	"context"
	"testing"
	"time"

	"ai-chatdesk-be/internal/constant"
	"ai-chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

func TestSessionStoreSaveIsUpsert(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	session := &entity.ChatSession{Id: uuid.New(), Title: constant.DefaultSessionTitle, CreatedAt: time.Now()}
	if err := store.Save(ctx, session); err != nil {
		t.Fatal(err)
	}

	session.Title = "Renamed"
	if err := store.Save(ctx, session); err != nil {
		t.Fatal(err)
	}

	all, err := store.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("FindAll = %d sessions, want 1", len(all))
	}
	if all[0].Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", all[0].Title)
	}
}

func TestSessionStorePreservesCreationOrder(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	first := &entity.ChatSession{Id: uuid.New(), Title: "first", CreatedAt: time.Now()}
	second := &entity.ChatSession{Id: uuid.New(), Title: "second", CreatedAt: time.Now()}
	for _, s := range []*entity.ChatSession{first, second} {
		if err := store.Save(ctx, s); err != nil {
			t.Fatal(err)
		}
	}

	// Re-saving the first session must not move it to the back.
	first.Title = "first-renamed"
	if err := store.Save(ctx, first); err != nil {
		t.Fatal(err)
	}

	all, err := store.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].Id != first.Id || all[1].Id != second.Id {
		t.Errorf("creation order lost: %v", all)
	}
}

func TestSessionStoreDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	session := &entity.ChatSession{Id: uuid.New(), CreatedAt: time.Now()}
	if err := store.Save(ctx, session); err != nil {
		t.Fatal(err)
	}

	if err := store.Delete(ctx, session.Id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := store.Delete(ctx, session.Id); err != nil {
		t.Fatalf("second delete should succeed: %v", err)
	}
	if err := store.Delete(ctx, uuid.New()); err != nil {
		t.Fatalf("deleting unknown id should succeed: %v", err)
	}

	found, err := store.FindOne(ctx, session.Id)
	if err != nil {
		t.Fatal(err)
	}
	if found != nil {
		t.Error("deleted session still found")
	}
}

func TestMessageStoreAppendOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMessageStore()
	sessionId := uuid.New()

	for i, text := range []string{"one", "two", "three"} {
		msg := &entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: sessionId,
			Role:          constant.ChatMessageRoleUser,
			Chat:          text,
			CreatedAt:     time.Now().Add(time.Duration(i) * time.Millisecond),
		}
		if err := store.Create(ctx, msg); err != nil {
			t.Fatal(err)
		}
	}

	messages, err := store.FindBySessionId(ctx, sessionId)
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 3 {
		t.Fatalf("len = %d, want 3", len(messages))
	}
	for i, want := range []string{"one", "two", "three"} {
		if messages[i].Chat != want {
			t.Errorf("message[%d] = %q, want %q", i, messages[i].Chat, want)
		}
	}

	count, err := store.CountBySessionId(ctx, sessionId)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestDocumentIndexAllowsDuplicates(t *testing.T) {
	ctx := context.Background()
	index := NewDocumentIndex()

	for i := 0; i < 2; i++ {
		doc := &entity.IndexedDocument{
			Id:   uuid.New(),
			Name: "a.pdf",
			Path: "/docs/a.pdf",
			Type: constant.AttachmentTypeDocument,
			Date: time.Now(),
		}
		if err := index.Create(ctx, doc); err != nil {
			t.Fatal(err)
		}
	}

	all, err := index.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("re-upload should create a second entry, got %d", len(all))
	}
}

func TestDocumentIndexMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	index := NewDocumentIndex()

	for _, name := range []string{"old.pdf", "new.pdf"} {
		if err := index.Create(ctx, &entity.IndexedDocument{
			Id:   uuid.New(),
			Name: name,
			Path: "/docs/" + name,
			Type: constant.AttachmentTypeDocument,
			Date: time.Now(),
		}); err != nil {
			t.Fatal(err)
		}
	}

	all, err := index.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if all[0].Name != "new.pdf" || all[1].Name != "old.pdf" {
		t.Errorf("expected most-recent-first, got %v, %v", all[0].Name, all[1].Name)
	}
}
