package web

import (
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// MessageType tags server messages.
type MessageType string

const (
	MessageTypeState MessageType = "state"
	MessageTypeError MessageType = "error"
)

// ClientMessage is a command sent by the browser.
//
//	{"action":"guess","text":"a"}
//	{"action":"restart"}
type ClientMessage struct {
	Action string `json:"action"`
	Text   string `json:"text,omitempty"`
}

// ServerMessage is sent after every command and once on connect.
type ServerMessage struct {
	Type      MessageType        `json:"type"`
	Outcome   hangman.Outcome    `json:"outcome"`
	Letter    string             `json:"letter,omitempty"`
	Positions []int              `json:"positions,omitempty"`
	View      *hangman.ViewState `json:"view,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func stateMessage(res hangman.GuessResult) *ServerMessage {
	view := res.View
	return &ServerMessage{
		Type:      MessageTypeState,
		Outcome:   res.Outcome,
		Letter:    res.Letter,
		Positions: res.Positions,
		View:      &view,
	}
}

func errorMessage(text string) *ServerMessage {
	return &ServerMessage{Type: MessageTypeError, Error: text}
}
