package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"GO-dungeon/internal/game"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNew_WithoutAPIKey(t *testing.T) {
	m, err := New(context.Background(), Config{Model: "gemini-1.5-flash"})
	require.NoError(t, err)
	defer m.Close()

	chat, err := m.StartChat(context.Background(), nil)
	assert.Nil(t, chat)
	assert.ErrorIs(t, err, game.ErrConfiguration)
}

func TestToHistory(t *testing.T) {
	history := toHistory([]game.Message{
		{Role: game.RoleUser, Text: "Agisci come un Dungeon Master."},
		{Role: game.RoleNarrator, Text: "Certamente."},
	})

	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, []genai.Part{genai.Text("Agisci come un Dungeon Master.")}, history[0].Parts)
	assert.Equal(t, "model", history[1].Role)
	assert.Equal(t, []genai.Part{genai.Text("Certamente.")}, history[1].Parts)

	assert.Nil(t, toHistory(nil))
}

func TestGetText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role:  "model",
				Parts: []genai.Part{genai.Text("Ti trovi "), genai.Blob{MIMEType: "image/png"}, genai.Text("in una taverna.")},
			},
		}},
	}
	assert.Equal(t, "Ti trovi in una taverna.", getText(resp))

	assert.Empty(t, getText(nil))
	assert.Empty(t, getText(&genai.GenerateContentResponse{}))
	assert.Empty(t, getText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		config bool
	}{
		{"unauthorized", &googleapi.Error{Code: http.StatusUnauthorized}, true},
		{"forbidden", &googleapi.Error{Code: http.StatusForbidden}, true},
		{"invalid key", &googleapi.Error{Code: http.StatusBadRequest, Message: "API key not valid. Please pass a valid API key."}, true},
		{"bad request", &googleapi.Error{Code: http.StatusBadRequest, Message: "invalid argument"}, false},
		{"model not found", &googleapi.Error{Code: http.StatusNotFound, Message: "models/gemini-x is not found"}, false},
		{"wrapped quota", fmt.Errorf("send: %w", &googleapi.Error{Code: http.StatusTooManyRequests}), false},
		{"grpc unauthenticated", status.Error(codes.Unauthenticated, "missing key"), true},
		{"grpc unavailable", status.Error(codes.Unavailable, "try again"), false},
		{"network", errors.New("dial tcp: connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err)
			assert.ErrorIs(t, err, tt.err)
			if tt.config {
				assert.ErrorIs(t, err, game.ErrConfiguration)
				assert.NotErrorIs(t, err, game.ErrRemoteCall)
			} else {
				assert.ErrorIs(t, err, game.ErrRemoteCall)
				assert.NotErrorIs(t, err, game.ErrConfiguration)
			}
		})
	}
}
