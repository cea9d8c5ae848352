package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/galley-app/galley-client/models"
)

// NavigateTo switches the root model to another page. An optional Payload is
// delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthDone reports the outcome of a login or register command.
type AuthDone struct {
	Result   models.AuthResult
	Register bool
	Username string
}

// RegisterSuccessNotice is shown on the menu after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}

type searchDoneMsg struct {
	result models.SearchResult
}

type popularTermsMsg struct {
	terms []string
}

// suggestionsMsg carries typeahead suggestions for the query text they were
// requested with; the search page drops the message when the input has moved
// on since.
type suggestionsMsg struct {
	text        string
	suggestions models.Suggestions
}

type categoriesMsg struct {
	categories []models.Category
}

// showRecipeMsg is the payload delivered when navigating to the detail page.
type showRecipeMsg struct {
	recipe models.Recipe
}

type factsMsg struct {
	facts models.InteractionFacts
}

type mutationDoneMsg struct {
	action string
	err    error
}

type copiedMsg struct {
	err error
}
