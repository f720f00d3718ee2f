package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/sandevgo/notebot/internal/config"
	"github.com/sandevgo/notebot/internal/core"
	"github.com/sandevgo/notebot/internal/service/interp"
	"github.com/sandevgo/notebot/internal/transport/telegram"
)

type fakeNotes struct {
	notes []core.Note
}

func (f *fakeNotes) Create(_ context.Context, ownerID int64, chatID, content string) error {
	f.notes = append(f.notes, core.Note{ID: int64(len(f.notes) + 1), OwnerID: ownerID, ChatID: chatID, Content: content})
	return nil
}

func (f *fakeNotes) ListAll(_ context.Context, ownerID int64) ([]core.Note, error) {
	var out []core.Note
	for _, n := range f.notes {
		if n.OwnerID == ownerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotes) Search(ctx context.Context, ownerID int64, query string) ([]core.Note, error) {
	all, _ := f.ListAll(ctx, ownerID)
	var out []core.Note
	for _, n := range all {
		if strings.Contains(strings.ToLower(n.Content), strings.ToLower(query)) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotes) DeleteAll(_ context.Context, ownerID int64) error {
	kept := f.notes[:0]
	for _, n := range f.notes {
		if n.OwnerID != ownerID {
			kept = append(kept, n)
		}
	}
	f.notes = kept
	return nil
}

type fakeMessageLog struct {
	entries []core.LoggedMessage
}

func (f *fakeMessageLog) Append(_ context.Context, msg core.LoggedMessage) error {
	f.entries = append(f.entries, msg)
	return nil
}

type fakeConfigs struct {
	byToken map[string]*core.BotConfig
	byOwner map[int64]*core.BotConfig
	saved   []core.BotConfig
}

func newFakeConfigs(cfgs ...*core.BotConfig) *fakeConfigs {
	f := &fakeConfigs{
		byToken: make(map[string]*core.BotConfig),
		byOwner: make(map[int64]*core.BotConfig),
	}
	for _, c := range cfgs {
		f.byToken[c.BotToken] = c
		f.byOwner[c.OwnerID] = c
	}
	return f
}

func (f *fakeConfigs) GetByOwner(_ context.Context, ownerID int64) (*core.BotConfig, error) {
	return f.byOwner[ownerID], nil
}

func (f *fakeConfigs) GetByToken(_ context.Context, token string) (*core.BotConfig, error) {
	return f.byToken[token], nil
}

func (f *fakeConfigs) Upsert(_ context.Context, ownerID int64, botToken, webhookURL string) error {
	cfg := &core.BotConfig{OwnerID: ownerID, BotToken: botToken, WebhookURL: webhookURL, Configured: true}
	f.byToken[botToken] = cfg
	f.byOwner[ownerID] = cfg
	f.saved = append(f.saved, *cfg)
	return nil
}

type testEnv struct {
	server  *Server
	notes   *fakeNotes
	msgLog  *fakeMessageLog
	configs *fakeConfigs
}

func newTestEnv(t *testing.T, tgBaseURL string, cfgs ...*core.BotConfig) *testEnv {
	t.Helper()

	notes := &fakeNotes{}
	msgLog := &fakeMessageLog{}
	configs := newFakeConfigs(cfgs...)

	server := NewServer(
		context.Background(),
		&config.ServerConfig{ListenAddr: ":0"},
		interp.New(notes, msgLog),
		configs,
		telegram.NewClient(tgBaseURL),
	)

	return &testEnv{server: server, notes: notes, msgLog: msgLog, configs: configs}
}

type webhookReply struct {
	Method string `json:"method"`
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

func postWebhook(t *testing.T, env *testEnv, token, body string) (int, webhookReply) {
	t.Helper()

	req := httptest.NewRequest("POST", "/webhook/"+token, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := env.server.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var reply webhookReply
	_ = json.Unmarshal(raw, &reply)
	return resp.StatusCode, reply
}

var ownerConfig = &core.BotConfig{OwnerID: 1, BotToken: "123:abc", WebhookURL: "https://example.com/webhook/123:abc", Configured: true}

func TestWebhook_UnknownToken(t *testing.T) {
	env := newTestEnv(t, "")

	status, _ := postWebhook(t, env, "nope", `{"update_id":1}`)
	if status != fiber.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
}

func TestWebhook_MalformedBody(t *testing.T) {
	env := newTestEnv(t, "", ownerConfig)

	for _, body := range []string{`{invalid json}`, `{"foo":"bar"}`} {
		status, _ := postWebhook(t, env, "123:abc", body)
		if status != fiber.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, status)
		}
	}
}

func TestWebhook_CommandRoundTrip(t *testing.T) {
	env := newTestEnv(t, "", ownerConfig)

	body := `{"update_id":1,"message":{"message_id":7,"date":1700000000,"chat":{"id":42,"type":"private"},"text":"/add Buy milk"}}`
	status, reply := postWebhook(t, env, "123:abc", body)

	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if reply.Method != "sendMessage" {
		t.Errorf("method = %q, want sendMessage", reply.Method)
	}
	if reply.ChatID != 42 {
		t.Errorf("chat_id = %d, want 42", reply.ChatID)
	}
	if reply.Text != interp.ReplyNoteAdded {
		t.Errorf("text = %q, want %q", reply.Text, interp.ReplyNoteAdded)
	}

	if len(env.notes.notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(env.notes.notes))
	}
	n := env.notes.notes[0]
	if n.OwnerID != 1 || n.ChatID != "42" || n.Content != "Buy milk" {
		t.Errorf("unexpected note: %+v", n)
	}
	if len(env.msgLog.entries) != 1 {
		t.Errorf("expected the raw message to be logged")
	}
}

func TestWebhook_MessageWithoutText(t *testing.T) {
	env := newTestEnv(t, "", ownerConfig)

	body := `{"update_id":1,"message":{"message_id":7,"date":1700000000,"chat":{"id":42,"type":"private"}}}`
	status, reply := postWebhook(t, env, "123:abc", body)

	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if reply.Text != interp.ReplyNoText {
		t.Errorf("text = %q, want %q", reply.Text, interp.ReplyNoText)
	}
	if len(env.notes.notes) != 0 {
		t.Error("text-less update must not create notes")
	}
}

func TestWebhook_UpdateWithoutMessage(t *testing.T) {
	env := newTestEnv(t, "", ownerConfig)

	status, reply := postWebhook(t, env, "123:abc", `{"update_id":5}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if reply.Method != "" {
		t.Errorf("no reply envelope expected, got method %q", reply.Method)
	}
}

func TestWebhook_FreeformSavesNote(t *testing.T) {
	env := newTestEnv(t, "", ownerConfig)

	body := `{"update_id":2,"message":{"message_id":8,"date":1700000000,"chat":{"id":42,"type":"private"},"text":"hello there"}}`
	status, reply := postWebhook(t, env, "123:abc", body)

	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if reply.Text != interp.ReplySaved {
		t.Errorf("text = %q, want %q", reply.Text, interp.ReplySaved)
	}
	if len(env.notes.notes) != 1 || env.notes.notes[0].Content != "hello there" {
		t.Errorf("freeform note not saved: %+v", env.notes.notes)
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, "")

	resp, err := env.server.app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}
