package game

// Role identifies who produced a message in the log.
type Role string

const (
	RoleUser     Role = "user"
	RoleNarrator Role = "narrator"
)

// Message is one entry of the conversation log. Messages are never mutated
// after they are appended.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// View is the screen the presentation layer should show.
type View string

const (
	ViewMenu    View = "MENU"
	ViewPlaying View = "PLAYING"
	ViewError   View = "ERROR"
)

// State is a snapshot of the game handed to the presentation layer.
type State struct {
	View      View      `json:"view"`
	Messages  []Message `json:"messages"`
	Loading   bool      `json:"loading"`
	Notice    string    `json:"notice,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
}
