package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/galley-app/galley-client/internal/service"
	"github.com/galley-app/galley-client/models"
)

// DetailModel shows one recipe with the viewer's interaction facts. Facts
// are fetched fresh on every visit; a stale like count is acceptable, a
// stale "you liked this" is not.
type DetailModel struct {
	ctx          context.Context
	interactions service.InteractionService
	shareBaseURL string

	recipe models.Recipe
	facts  models.InteractionFacts
	rating string
	status string
	errMsg string
}

func NewDetailModel(ctx context.Context, interactions service.InteractionService, shareBaseURL string) *DetailModel {
	return &DetailModel{
		ctx:          ctx,
		interactions: interactions,
		shareBaseURL: shareBaseURL,
	}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showRecipeMsg:
		m.recipe = msg.recipe
		m.facts = models.InteractionFacts{}
		m.rating = ""
		m.status = ""
		m.errMsg = ""
		return m, m.cmdLoadFacts()

	case factsMsg:
		m.facts = msg.facts
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeMutationError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.action
		return m, m.cmdLoadFacts()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "could not copy link"
		} else {
			m.status = "share link copied"
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *DetailModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Digit keys build a pending rating, submitted with enter.
	if s := msg.String(); len(s) == 1 && s >= "1" && s <= "5" {
		m.rating = s
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "search"} }
	case "l":
		if m.facts.Liked {
			return m, m.cmdMutate("unliked", m.interactions.Unlike)
		}
		return m, m.cmdMutate("liked", m.interactions.Like)
	case "b":
		if m.facts.Bookmarked {
			return m, m.cmdMutate("bookmark removed", m.interactions.RemoveBookmark)
		}
		return m, m.cmdMutate("bookmarked", m.interactions.Bookmark)
	case "enter":
		if m.rating == "" {
			return m, nil
		}
		rating := float64(m.rating[0] - '0')
		m.rating = ""
		return m, m.cmdRate(rating)
	case "c":
		return m, m.cmdCopyShareLink()
	}
	return m, nil
}

func (m *DetailModel) cmdLoadFacts() tea.Cmd {
	ctx, interactions, recipeID := m.ctx, m.interactions, m.recipe.ID
	return func() tea.Msg {
		return factsMsg{facts: interactions.Facts(ctx, recipeID)}
	}
}

func (m *DetailModel) cmdMutate(action string, call func(ctx context.Context, recipeID string) error) tea.Cmd {
	ctx, recipeID := m.ctx, m.recipe.ID
	return func() tea.Msg {
		return mutationDoneMsg{action: action, err: call(ctx, recipeID)}
	}
}

func (m *DetailModel) cmdRate(rating float64) tea.Cmd {
	ctx, interactions, recipeID := m.ctx, m.interactions, m.recipe.ID
	return func() tea.Msg {
		return mutationDoneMsg{
			action: fmt.Sprintf("rated %.0f", rating),
			err:    interactions.Rate(ctx, recipeID, rating),
		}
	}
}

func (m *DetailModel) cmdCopyShareLink() tea.Cmd {
	link := m.shareLink()
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(link)}
	}
}

func (m *DetailModel) shareLink() string {
	base := strings.TrimRight(m.shareBaseURL, "/")
	if base == "" {
		base = "https://galley.app"
	}
	return base + "/recipes/" + m.recipe.ID
}

func humanizeMutationError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrNotAuthenticated) {
		return "sign in to do that"
	}
	if errors.Is(err, service.ErrInvalidRating) {
		return service.ErrInvalidRating.Error()
	}
	return err.Error()
}

func (m *DetailModel) View() string {
	var b strings.Builder
	r := m.recipe

	b.WriteString(fitText(r.Title, 52))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("by %s │ %s\n\n", r.Author.Username, r.Category.Name))

	if r.Description != "" {
		b.WriteString(fitText(r.Description, 200))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("rating     │ %s (%.1f)\n", starRating(r.AverageRating), r.AverageRating))
	b.WriteString(fmt.Sprintf("likes      │ %d\n", r.TotalLikes))
	b.WriteString(fmt.Sprintf("prep       │ %s\n", minutes(r.PrepTime)))
	b.WriteString(fmt.Sprintf("cook       │ %s\n", minutes(r.CookTime)))
	if r.Difficulty != "" {
		b.WriteString(fmt.Sprintf("difficulty │ %s\n", r.Difficulty))
	}
	if r.IsPremium {
		b.WriteString(fmt.Sprintf("premium    │ $%.2f\n", r.Price))
	}

	b.WriteString("\nyou: ")
	marks := make([]string, 0, 4)
	if m.facts.Liked {
		marks = append(marks, "liked")
	}
	if m.facts.Bookmarked {
		marks = append(marks, "bookmarked")
	}
	if m.facts.Rating != nil {
		marks = append(marks, fmt.Sprintf("rated %.0f", *m.facts.Rating))
	}
	if m.facts.Purchased {
		marks = append(marks, "purchased")
	}
	if len(marks) == 0 {
		b.WriteString("-")
	} else {
		b.WriteString(strings.Join(marks, ", "))
	}
	b.WriteString("\n")

	if m.rating != "" {
		b.WriteString("\npending rating: ")
		b.WriteString(m.rating)
		b.WriteString(" (enter to submit)\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(renderStatus(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("RECIPE", strings.TrimRight(b.String(), "\n"),
		"l: like │ b: bookmark │ 1-5+enter: rate │ c: copy link │ esc: back")
}
