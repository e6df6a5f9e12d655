package game

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Model creates chat sessions on a hosted language model. The seed is
// installed as history before any message is sent.
type Model interface {
	StartChat(ctx context.Context, seed []Message) (Chat, error)
}

// Chat is one remote dialogue context. The remote side owns the history; a
// failed SendMessage must leave it as it was.
type Chat interface {
	SendMessage(ctx context.Context, text string) (string, error)
}

// Entry is one transcript line handed to a Recorder. Seq is the message's
// index in the log, so a transcript has no gaps.
type Entry struct {
	SessionID string
	Seq       int
	Message
}

// Recorder receives every message that stays in the log, in log order.
// Under PolicyPreserve that includes a failed turn and its diagnostic.
type Recorder interface {
	Record(ctx context.Context, entries []Entry) error
}

// phase is the tagged variant behind View. Only playing carries a chat, so a
// turn can never be sent without one.
type phase interface{ view() View }

type menu struct{}

type playing struct {
	id   string
	chat Chat
}

type failed struct{ reason error }

func (menu) view() View    { return ViewMenu }
func (playing) view() View { return ViewPlaying }
func (failed) view() View  { return ViewError }

// Game is the session manager and turn processor of one adventure.
// It is safe for concurrent use; at most one model call runs at a time and
// extra requests are rejected with ErrBusy rather than queued.
type Game struct {
	model    Model
	prompts  Prompts
	policy   FailurePolicy
	logger   *zap.Logger
	metrics  *Metrics
	recorder Recorder
	newID    func() string

	mu       sync.Mutex
	phase    phase
	messages []Message
	loading  bool
	notice   string
}

// New returns a game sitting on the menu.
func New(model Model, opts ...Option) *Game {
	g := &Game{
		model:   model,
		prompts: DefaultPrompts,
		policy:  PolicyRollback,
		logger:  zap.NewNop(),
		newID:   defaultID,
		phase:   menu{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State returns a copy of the current state.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	msgs := make([]Message, len(g.messages))
	copy(msgs, g.messages)
	s := State{
		View:     g.phase.view(),
		Messages: msgs,
		Loading:  g.loading,
		Notice:   g.notice,
	}
	if p, ok := g.phase.(playing); ok {
		s.SessionID = p.id
	}
	return s
}

// Start creates a new remote session and plays the opening exchange. The
// opening reply becomes the only message in the log. On failure the game
// moves to ViewError with a single diagnostic narrator message, and a later
// Start may try again.
func (g *Game) Start(ctx context.Context) error {
	g.mu.Lock()
	if g.loading {
		g.mu.Unlock()
		return ErrBusy
	}
	if _, ok := g.phase.(playing); ok {
		g.mu.Unlock()
		return ErrAlreadyStarted
	}
	g.phase = menu{}
	g.loading = true
	g.messages = nil
	g.notice = ""
	g.mu.Unlock()

	id := g.newID()
	log := g.logger.With(zap.String("session_id", id))
	log.Info("Starting new adventure")

	chat, reply, err := g.open(ctx)
	g.metrics.sessionStarted(err)

	g.mu.Lock()
	g.loading = false
	if err != nil {
		g.phase = failed{reason: err}
		g.messages = []Message{{Role: RoleNarrator, Text: g.startDiagnostic(err)}}
		g.mu.Unlock()
		log.Error("Failed to start adventure", zap.Error(err))
		return err
	}
	g.phase = playing{id: id, chat: chat}
	opening := Message{Role: RoleNarrator, Text: reply}
	g.messages = []Message{opening}
	g.mu.Unlock()

	log.Info("Adventure started", zap.Int("reply_bytes", len(reply)))
	g.record(ctx, log, Entry{SessionID: id, Seq: 0, Message: opening})
	return nil
}

func (g *Game) open(ctx context.Context) (Chat, string, error) {
	chat, err := g.model.StartChat(ctx, g.prompts.seed())
	if err != nil {
		return nil, "", classify("create session", err)
	}
	if chat == nil {
		return nil, "", classify("create session", ErrRemoteCall)
	}
	reply, err := g.exchange(ctx, chat, g.prompts.Opening)
	if err != nil {
		return nil, "", classify("opening exchange", err)
	}
	return chat, reply, nil
}

func (g *Game) startDiagnostic(err error) string {
	if isConfiguration(err) {
		return g.prompts.CredentialFailure
	}
	return g.prompts.StartFailure
}

// Submit plays one turn: the utterance is echoed to the log, forwarded to the
// session, and the narrator's reply is appended. Empty input is ignored with
// ErrInvalidInput and submissions during another call fail with ErrBusy;
// neither touches the log. In ViewError the start failure is returned again.
func (g *Game) Submit(ctx context.Context, text string) (Message, error) {
	utterance := strings.TrimSpace(text)
	if utterance == "" {
		return Message{}, ErrInvalidInput
	}

	g.mu.Lock()
	if g.loading {
		g.mu.Unlock()
		return Message{}, ErrBusy
	}
	var session playing
	switch p := g.phase.(type) {
	case menu:
		g.mu.Unlock()
		return Message{}, ErrNotStarted
	case failed:
		g.mu.Unlock()
		return Message{}, p.reason
	case playing:
		session = p
	}
	seq := len(g.messages)
	user := Message{Role: RoleUser, Text: utterance}
	g.messages = append(g.messages, user)
	g.loading = true
	g.notice = ""
	g.mu.Unlock()

	log := g.logger.With(zap.String("session_id", session.id), zap.Int("seq", seq))
	log.Debug("Sending turn", zap.Int("utterance_bytes", len(utterance)))

	reply, err := g.exchange(ctx, session.chat, utterance)
	g.metrics.turnFinished(err)

	g.mu.Lock()
	g.loading = false
	if err != nil {
		err = classify("turn", err)
		var diagnostic Message
		switch g.policy {
		case PolicyPreserve:
			diagnostic = Message{Role: RoleNarrator, Text: g.prompts.TurnFailure}
			g.messages = append(g.messages, diagnostic)
		default:
			// Only one turn is ever in flight, so the log still ends with ours.
			g.messages = g.messages[:seq]
			g.notice = g.prompts.TurnFailure
		}
		g.mu.Unlock()
		log.Warn("Turn failed", zap.Stringer("policy", g.policy), zap.Error(err))
		if g.policy == PolicyPreserve {
			g.record(ctx, log,
				Entry{SessionID: session.id, Seq: seq, Message: user},
				Entry{SessionID: session.id, Seq: seq + 1, Message: diagnostic},
			)
		}
		return Message{}, err
	}
	narrator := Message{Role: RoleNarrator, Text: reply}
	g.messages = append(g.messages, narrator)
	g.mu.Unlock()

	g.record(ctx, log,
		Entry{SessionID: session.id, Seq: seq, Message: user},
		Entry{SessionID: session.id, Seq: seq + 1, Message: narrator},
	)
	return narrator, nil
}

func (g *Game) exchange(ctx context.Context, chat Chat, text string) (string, error) {
	g.metrics.callStarted()
	start := time.Now()
	reply, err := chat.SendMessage(ctx, text)
	g.metrics.callFinished(time.Since(start).Seconds())
	return reply, err
}

func (g *Game) record(ctx context.Context, log *zap.Logger, entries ...Entry) {
	if g.recorder == nil {
		return
	}
	if err := g.recorder.Record(ctx, entries); err != nil {
		log.Warn("Failed to record transcript", zap.Int("entries", len(entries)), zap.Error(err))
	}
}
