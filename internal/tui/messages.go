package tui

import (
	"github.com/mfadhilr/contekan/internal/service"
	"github.com/mfadhilr/contekan/models"
)

// NavigateTo switches the login flow router to another page. Payload, when
// set, is delivered to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult reports the outcome of a sign-in or registration attempt. A
// nil Err ends the login flow.
type AuthResult struct {
	Err error
}

type listLoadedMsg struct {
	err error
}

type snippetSavedMsg struct {
	snippet models.Snippet
	err     error
}

type deleteEventMsg struct {
	event service.DeleteEvent
}

type confirmDoneMsg struct {
	err error
}

type clearStatusMsg struct{}

type refreshViewMsg struct{}
