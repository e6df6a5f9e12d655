package game

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration means the credential is missing or rejected.
	ErrConfiguration = errors.New("model credential missing or invalid")
	// ErrRemoteCall covers any other failure of the hosted model.
	ErrRemoteCall = errors.New("remote model call failed")

	ErrInvalidInput   = errors.New("empty utterance")
	ErrBusy           = errors.New("a turn is already in flight")
	ErrNotStarted     = errors.New("game not started")
	ErrAlreadyStarted = errors.New("game already started")
)

// classify makes sure every error coming back from a Model or Chat matches
// either ErrConfiguration or ErrRemoteCall.
func classify(op string, err error) error {
	if errors.Is(err, ErrConfiguration) || errors.Is(err, ErrRemoteCall) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrRemoteCall, err)
}

func isConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
