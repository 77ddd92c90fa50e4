package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tailortalk/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// stubAgent returns a canned envelope.
type stubAgent struct {
	resp *models.ChatResponse
}

func (s *stubAgent) ProcessMessage(ctx context.Context, req models.ChatRequest) *models.ChatResponse {
	return s.resp
}

// fakeDraftStore records draft operations.
type fakeDraftStore struct {
	drafts map[string]*models.BookingData
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: make(map[string]*models.BookingData)}
}

func (s *fakeDraftStore) Get(ctx context.Context, sessionID string) (*models.BookingData, error) {
	return s.drafts[sessionID], nil
}

func (s *fakeDraftStore) Set(ctx context.Context, sessionID string, draft *models.BookingData) error {
	s.drafts[sessionID] = draft
	return nil
}

func (s *fakeDraftStore) Clear(ctx context.Context, sessionID string) error {
	delete(s.drafts, sessionID)
	return nil
}

func newChatRouter(agentResp *models.ChatResponse, drafts *fakeDraftStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChatHandler(&stubAgent{resp: agentResp}, drafts, zap.NewNop())
	r := gin.New()
	r.POST("/api/chat", h.HandleChat)
	return r
}

func postChat(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleChatReturnsEnvelope(t *testing.T) {
	drafts := newFakeDraftStore()
	router := newChatRouter(&models.ChatResponse{
		Message:        "Hello! Welcome to TailorTalk.",
		Intent:         models.IntentGreeting,
		SuggestedTimes: []string{},
	}, drafts)

	w := postChat(t, router, models.ChatRequest{Message: "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Intent != models.IntentGreeting {
		t.Errorf("intent = %q, want %q", resp.Intent, models.IntentGreeting)
	}
	if resp.Message == "" {
		t.Error("expected a non-empty message")
	}
	if len(drafts.drafts) != 0 {
		t.Errorf("no draft should be cached for a greeting, got %d", len(drafts.drafts))
	}
}

func TestHandleChatCachesDraftOnConfirmation(t *testing.T) {
	drafts := newFakeDraftStore()
	router := newChatRouter(&models.ChatResponse{
		Message: "Great! I can help you book a Haircut appointment.",
		Intent:  models.IntentBookingWithDetails,
		BookingData: &models.BookingData{
			ServiceType:   "Haircut",
			PreferredTime: "the requested time",
		},
		SuggestedTimes:       []string{},
		RequiresConfirmation: true,
	}, drafts)

	w := postChat(t, router, models.ChatRequest{Message: "book a haircut tomorrow", SessionID: "abc"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	draft := drafts.drafts["abc"]
	if draft == nil {
		t.Fatal("expected a cached draft for session abc")
	}
	if draft.ServiceType != "Haircut" {
		t.Errorf("draft service type = %q, want %q", draft.ServiceType, "Haircut")
	}
}

func TestHandleChatDefaultsSessionID(t *testing.T) {
	drafts := newFakeDraftStore()
	router := newChatRouter(&models.ChatResponse{
		Message:              "ok",
		Intent:               models.IntentBookingWithDetails,
		BookingData:          &models.BookingData{ServiceType: "Haircut", PreferredTime: "the requested time"},
		SuggestedTimes:       []string{},
		RequiresConfirmation: true,
	}, drafts)

	postChat(t, router, models.ChatRequest{Message: "book a haircut tomorrow"})
	if drafts.drafts["default"] == nil {
		t.Error(`expected the draft to be cached under the "default" session`)
	}
}

func TestHandleChatRejectsEmptyBody(t *testing.T) {
	router := newChatRouter(&models.ChatResponse{}, newFakeDraftStore())

	w := postChat(t, router, map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
