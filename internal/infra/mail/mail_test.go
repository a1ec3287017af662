package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo/config"

	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostmarkConfig() config.MailConfig {
	return config.MailConfig{
		Provider:            config.MailProviderPostmark,
		PostmarkServerToken: "server-token",
		SenderEmail:         "no-reply@todo.test",
		SupportEmail:        "support@todo.test",
		Timeout:             time.Second,
	}
}

func newTestPostmarkSender(t *testing.T, handler http.HandlerFunc) *postmarkSender {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sender, err := NewPostmarkSender(newPostmarkConfig())
	require.NoError(t, err)

	ps := sender.(*postmarkSender)
	ps.client.BaseURL = srv.URL
	ps.client.HTTPClient = srv.Client()

	return ps
}

func TestPostmarkSender_Send(t *testing.T) {
	var got postmark.Email
	sender := newTestPostmarkSender(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/email", r.URL.Path)
		assert.Equal(t, "server-token", r.Header.Get("X-Postmark-Server-Token"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"To":"ann@x.com","MessageID":"abc","ErrorCode":0,"Message":"OK"}`))
	})

	err := sender.Send(context.Background(), "ann@x.com", "Your OTP for Password Reset", "Your OTP is: 123456")
	require.NoError(t, err)

	assert.Equal(t, "no-reply@todo.test", got.From)
	assert.Equal(t, "support@todo.test", got.ReplyTo)
	assert.Equal(t, "ann@x.com", got.To)
	assert.Equal(t, "Your OTP for Password Reset", got.Subject)
	assert.Equal(t, "Your OTP is: 123456", got.TextBody)
	assert.Equal(t, resetMailTag, got.Tag)
}

func TestPostmarkSender_ProviderError(t *testing.T) {
	sender := newTestPostmarkSender(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ErrorCode":300,"Message":"Invalid email request"}`))
	})

	err := sender.Send(context.Background(), "ann@x.com", "s", "b")
	assert.ErrorIs(t, err, ErrSendFailed)
	assert.Contains(t, err.Error(), "300")
}

func TestPostmarkSender_Timeout(t *testing.T) {
	sender := newTestPostmarkSender(t, func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	sender.timeout = 50 * time.Millisecond

	err := sender.Send(context.Background(), "ann@x.com", "s", "b")
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestNewPostmarkSender_InvalidConfig(t *testing.T) {
	cfg := newPostmarkConfig()
	cfg.PostmarkServerToken = ""
	_, err := NewPostmarkSender(cfg)
	assert.Error(t, err)

	cfg = newPostmarkConfig()
	cfg.SenderEmail = ""
	_, err = NewPostmarkSender(cfg)
	assert.Error(t, err)
}

func TestLogSender_Send(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSender(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, sender.Send(context.Background(), "ann@x.com", "Your OTP for Password Reset", "Your OTP is: 123456"))
	assert.Contains(t, buf.String(), `"to":"ann@x.com"`)
	assert.Contains(t, buf.String(), "123456")
}

func TestNew_SelectsProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Mail = config.MailConfig{Provider: config.MailProviderLog}
	sender, err := New(Params{Config: cfg, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &logSender{}, sender)

	cfg.Mail = newPostmarkConfig()
	sender, err = New(Params{Config: cfg, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &postmarkSender{}, sender)

	cfg.Mail = config.MailConfig{Provider: "carrier-pigeon"}
	_, err = New(Params{Config: cfg, Logger: logger})
	assert.Error(t, err)
}
