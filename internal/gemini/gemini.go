// Package gemini plays the narrator on Google's generative language API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"GO-dungeon/internal/game"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Config selects the model and its sampling settings.
type Config struct {
	APIKey      string
	Model       string
	Temperature *float32
}

// Model implements game.Model. A Model built without an API key is still
// usable: every StartChat reports game.ErrConfiguration.
type Model struct {
	client *genai.Client
	cfg    Config
}

// New creates the Gemini client. Call Close when the application stops.
func New(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Model, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return &Model{cfg: cfg}, nil
	}
	opts = append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}
	return &Model{client: client, cfg: cfg}, nil
}

// Close releases the underlying client.
func (m *Model) Close() error {
	if m.client == nil {
		return nil
	}
	return m.client.Close()
}

// StartChat opens a chat session whose history is the seed.
func (m *Model) StartChat(_ context.Context, seed []game.Message) (game.Chat, error) {
	if m.client == nil {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", game.ErrConfiguration)
	}
	model := m.client.GenerativeModel(m.cfg.Model)
	if m.cfg.Temperature != nil {
		model.SetTemperature(*m.cfg.Temperature)
	}
	cs := model.StartChat()
	cs.History = toHistory(seed)
	return &chat{session: cs}, nil
}

type chat struct {
	session *genai.ChatSession
}

// SendMessage plays one exchange. genai appends the user turn to History
// before calling the API, so a failed or empty exchange is trimmed back off:
// History only ever holds completed user/model pairs.
func (c *chat) SendMessage(ctx context.Context, text string) (string, error) {
	n := len(c.session.History)
	resp, err := c.session.SendMessage(ctx, genai.Text(text))
	if err != nil {
		c.session.History = c.session.History[:n]
		return "", classify(err)
	}
	reply := getText(resp)
	if reply == "" {
		c.session.History = c.session.History[:n]
		return "", fmt.Errorf("%w: empty reply (%s)", game.ErrRemoteCall, finishReason(resp))
	}
	return reply, nil
}

func toHistory(seed []game.Message) []*genai.Content {
	if len(seed) == 0 {
		return nil
	}
	history := make([]*genai.Content, 0, len(seed))
	for _, msg := range seed {
		role := "user"
		if msg.Role == game.RoleNarrator {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}
	return history
}

func getText(resp *genai.GenerateContentResponse) string {
	var text string
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text += string(txt)
			}
		}
	}
	return text
}

func finishReason(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return "no candidates"
	}
	return fmt.Sprint(resp.Candidates[0].FinishReason)
}

// classify separates rejected credentials from every other failure.
func classify(err error) error {
	if isCredentialError(err) {
		return fmt.Errorf("%w: %w", game.ErrConfiguration, err)
	}
	return fmt.Errorf("%w: %w", game.ErrRemoteCall, err)
}

func isCredentialError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return true
		case http.StatusBadRequest:
			return strings.Contains(apiErr.Message, "API key") ||
				strings.Contains(apiErr.Body, "API_KEY_INVALID")
		}
		return false
	}
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unauthenticated, codes.PermissionDenied:
			return true
		case codes.InvalidArgument:
			return strings.Contains(st.Message(), "API key")
		}
	}
	return false
}
