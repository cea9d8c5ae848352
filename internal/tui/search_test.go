package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/galley-app/galley-client/internal/mock"
	"github.com/galley-app/galley-client/models"
)

// typeText feeds text into the focused input rune by rune and returns the
// command produced by the last keystroke.
func typeText(t *testing.T, m *SearchModel, text string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, r := range text {
		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

// drainCmd runs a command, flattening batches into the messages they yield.
func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drainCmd(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestSearchModel_TypingQueryLoadsSuggestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSearch := mock.NewMockSearchService(ctrl)
	suggested := models.Suggestions{
		Recipes:     []models.RecipeSuggestion{{ID: "r1", Title: "Tomato soup"}},
		Ingredients: []string{"tomato"},
		Categories:  []models.Category{{ID: "c1", Name: "Soups"}},
	}
	mockSearch.EXPECT().Suggestions(gomock.Any(), "to").Return(suggested)

	m := NewSearchModel(context.Background(), mockSearch)
	cmd := typeText(t, m, "to")
	require.NotNil(t, cmd)

	var loaded *suggestionsMsg
	for _, msg := range drainCmd(cmd) {
		if sm, ok := msg.(suggestionsMsg); ok {
			loaded = &sm
		}
	}
	require.NotNil(t, loaded, "typing into the query field must request suggestions")
	m.Update(*loaded)

	assert.Equal(t, suggested, m.suggestions)
	view := m.View()
	assert.Contains(t, view, "Tomato soup")
	assert.Contains(t, view, "tomato")
	assert.Contains(t, view, "Soups")
}

func TestSearchModel_StaleSuggestionsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewSearchModel(context.Background(), mock.NewMockSearchService(ctrl))
	m.inputs[filterFieldQuery].SetValue("tomato")

	m.Update(suggestionsMsg{
		text:        "to",
		suggestions: models.Suggestions{Ingredients: []string{"basil"}},
	})

	assert.Empty(t, m.suggestions.Ingredients)
	assert.NotContains(t, m.View(), "basil")
}

func TestSearchModel_ClearedQueryClearsSuggestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewSearchModel(context.Background(), mock.NewMockSearchService(ctrl))
	m.inputs[filterFieldQuery].SetValue("to")
	m.Update(suggestionsMsg{
		text:        "to",
		suggestions: models.Suggestions{Ingredients: []string{"tomato"}},
	})
	require.Contains(t, m.View(), "tomato")

	m.inputs[filterFieldQuery].SetValue("")
	m.Update(suggestionsMsg{text: "", suggestions: models.Suggestions{}})

	assert.NotContains(t, m.View(), "tomato")
}

func TestSearchModel_ViewShowsSearchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewSearchModel(context.Background(), mock.NewMockSearchService(ctrl))
	m.result.Error = "search failed"

	assert.Contains(t, m.viewFilter(), renderError("search failed"))

	m.mode = modeResults
	assert.Contains(t, m.viewResults(), renderError("search failed"))
}
