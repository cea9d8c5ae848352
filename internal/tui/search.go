package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/galley-app/galley-client/internal/query"
	"github.com/galley-app/galley-client/internal/service"
	"github.com/galley-app/galley-client/models"
)

type searchMode int

const (
	modeFilter searchMode = iota
	modeResults
)

const (
	filterFieldQuery = iota
	filterFieldMaxPrep
	filterFieldMinRating
	filterFieldCount
)

var sortModes = []models.SortMode{
	models.SortRelevance,
	models.SortNewest,
	models.SortPopular,
	models.SortRating,
	models.SortPrepTime,
}

var difficulties = []string{"", "easy", "medium", "hard"}

// SearchModel is the recipe browse page: a filter form and a paged result
// list. Composing and running the query stays in the search service; this
// model collects filter input and renders the outcome.
type SearchModel struct {
	ctx    context.Context
	search service.SearchService

	mode   searchMode
	inputs []textinput.Model
	focus  int

	categories  []models.Category
	categoryIdx int // 0 means any
	diffIdx     int
	sortIdx     int
	popular     []string
	suggestions models.Suggestions

	result    models.SearchResult
	offset    int
	cursor    int
	searching bool
}

func NewSearchModel(ctx context.Context, search service.SearchService) *SearchModel {
	queryInput := textinput.New()
	queryInput.Placeholder = "dish, ingredient..."
	queryInput.CharLimit = 200
	queryInput.Width = 40
	queryInput.Focus()

	maxPrepInput := textinput.New()
	maxPrepInput.Placeholder = "minutes"
	maxPrepInput.CharLimit = 4
	maxPrepInput.Width = 10

	minRatingInput := textinput.New()
	minRatingInput.Placeholder = "0-5"
	minRatingInput.CharLimit = 3
	minRatingInput.Width = 10

	return &SearchModel{
		ctx:    ctx,
		search: search,
		inputs: []textinput.Model{queryInput, maxPrepInput, minRatingInput},
	}
}

func (m *SearchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadCategories(), m.cmdLoadPopularTerms())
}

func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesMsg:
		m.categories = msg.categories
		return m, nil
	case popularTermsMsg:
		m.popular = msg.terms
		return m, nil
	case suggestionsMsg:
		// Stale responses for an input the user has already changed are
		// dropped.
		if msg.text != strings.TrimSpace(m.inputs[filterFieldQuery].Value()) {
			return m, nil
		}
		m.suggestions = msg.suggestions
		return m, nil
	case searchDoneMsg:
		m.searching = false
		m.result = msg.result
		m.cursor = 0
		m.mode = modeResults
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeFilter {
			return m.updateFilter(msg)
		}
		return m.updateResults(msg)
	}

	if m.mode == modeFilter {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *SearchModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "tab", "shift+tab":
		delta := 1
		if msg.String() == "shift+tab" {
			delta = -1
		}
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + delta + filterFieldCount) % filterFieldCount
		m.inputs[m.focus].Focus()
		return m, nil
	case "ctrl+t":
		m.categoryIdx = (m.categoryIdx + 1) % (len(m.categories) + 1)
		return m, nil
	case "ctrl+d":
		m.diffIdx = (m.diffIdx + 1) % len(difficulties)
		return m, nil
	case "ctrl+s":
		m.sortIdx = (m.sortIdx + 1) % len(sortModes)
		return m, nil
	case "enter":
		if m.searching {
			return m, nil
		}
		m.searching = true
		m.offset = 0
		return m, m.cmdSearch()
	}

	before := strings.TrimSpace(m.inputs[filterFieldQuery].Value())
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if text := strings.TrimSpace(m.inputs[filterFieldQuery].Value()); text != before {
		return m, tea.Batch(cmd, m.cmdLoadSuggestions(text))
	}
	return m, cmd
}

func (m *SearchModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeFilter
		return m, textinput.Blink
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.result.Recipes)-1 {
			m.cursor++
		}
	case "right", "n":
		if m.offset+query.DefaultLimit < m.result.Total && !m.searching {
			m.searching = true
			m.offset += query.DefaultLimit
			return m, m.cmdSearch()
		}
	case "left", "p":
		if m.offset > 0 && !m.searching {
			m.searching = true
			m.offset -= query.DefaultLimit
			if m.offset < 0 {
				m.offset = 0
			}
			return m, m.cmdSearch()
		}
	case "enter":
		if m.cursor < len(m.result.Recipes) {
			recipe := m.result.Recipes[m.cursor]
			return m, func() tea.Msg {
				return NavigateTo{Page: "detail", Payload: showRecipeMsg{recipe: recipe}}
			}
		}
	}
	return m, nil
}

func (m *SearchModel) filter() models.SearchFilter {
	f := models.SearchFilter{
		Query:  strings.TrimSpace(m.inputs[filterFieldQuery].Value()),
		SortBy: sortModes[m.sortIdx],
		Limit:  query.DefaultLimit,
		Offset: m.offset,
	}
	if m.categoryIdx > 0 && m.categoryIdx <= len(m.categories) {
		f.CategoryID = m.categories[m.categoryIdx-1].ID
	}
	f.Difficulty = difficulties[m.diffIdx]
	if v, err := strconv.Atoi(strings.TrimSpace(m.inputs[filterFieldMaxPrep].Value())); err == nil && v > 0 {
		f.MaxPrepTime = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[filterFieldMinRating].Value()), 64); err == nil && v > 0 {
		f.MinRating = v
	}
	return f
}

func (m *SearchModel) cmdSearch() tea.Cmd {
	ctx, search, filter := m.ctx, m.search, m.filter()
	return func() tea.Msg {
		return searchDoneMsg{result: search.Search(ctx, filter)}
	}
}

func (m *SearchModel) cmdLoadCategories() tea.Cmd {
	ctx, search := m.ctx, m.search
	return func() tea.Msg {
		return categoriesMsg{categories: search.Categories(ctx)}
	}
}

func (m *SearchModel) cmdLoadPopularTerms() tea.Cmd {
	ctx, search := m.ctx, m.search
	return func() tea.Msg {
		return popularTermsMsg{terms: search.PopularTerms(ctx)}
	}
}

func (m *SearchModel) cmdLoadSuggestions(text string) tea.Cmd {
	ctx, search := m.ctx, m.search
	return func() tea.Msg {
		return suggestionsMsg{text: text, suggestions: search.Suggestions(ctx, text)}
	}
}

// suggestionLine flattens the three suggestion sources into one short row
// under the query input.
func (m *SearchModel) suggestionLine() string {
	parts := make([]string, 0, 8)
	for _, r := range m.suggestions.Recipes {
		parts = append(parts, fitText(r.Title, 30))
	}
	parts = append(parts, m.suggestions.Ingredients...)
	for _, c := range m.suggestions.Categories {
		parts = append(parts, c.Name)
	}
	if len(parts) > 8 {
		parts = parts[:8]
	}
	return strings.Join(parts, ", ")
}

func (m *SearchModel) View() string {
	if m.mode == modeFilter {
		return m.viewFilter()
	}
	return m.viewResults()
}

func (m *SearchModel) viewFilter() string {
	var b strings.Builder

	b.WriteString("Query      │ [")
	b.WriteString(m.inputs[filterFieldQuery].View())
	b.WriteString("]\n")

	if line := m.suggestionLine(); line != "" {
		b.WriteString(helpStyle.Render("try: " + line))
		b.WriteString("\n")
	}

	category := "any"
	if m.categoryIdx > 0 && m.categoryIdx <= len(m.categories) {
		category = m.categories[m.categoryIdx-1].Name
	}
	b.WriteString("Category   │ ")
	b.WriteString(category)
	b.WriteString("\n")

	difficulty := difficulties[m.diffIdx]
	if difficulty == "" {
		difficulty = "any"
	}
	b.WriteString("Difficulty │ ")
	b.WriteString(difficulty)
	b.WriteString("\n")

	b.WriteString("Max prep   │ [")
	b.WriteString(m.inputs[filterFieldMaxPrep].View())
	b.WriteString("]\n")

	b.WriteString("Min rating │ [")
	b.WriteString(m.inputs[filterFieldMinRating].View())
	b.WriteString("]\n")

	b.WriteString("Sort by    │ ")
	b.WriteString(string(sortModes[m.sortIdx]))
	b.WriteString("\n")

	if len(m.popular) > 0 {
		b.WriteString("\npopular: ")
		b.WriteString(strings.Join(m.popular, ", "))
		b.WriteString("\n")
	}

	if m.searching {
		b.WriteString("\n[Searching...]\n")
	}
	if m.result.Error != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.result.Error))
		b.WriteString("\n")
	}

	return renderPage("SEARCH RECIPES", strings.TrimRight(b.String(), "\n"),
		"enter: search │ ctrl+t: category │ ctrl+d: difficulty │ ctrl+s: sort │ esc: menu")
}

func (m *SearchModel) viewResults() string {
	var b strings.Builder

	if m.result.Error != "" {
		b.WriteString(renderError(m.result.Error))
		return renderPage("RESULTS", b.String(), "esc: filters")
	}

	if len(m.result.Recipes) == 0 {
		b.WriteString("no recipes found")
		return renderPage("RESULTS", b.String(), "esc: filters")
	}

	page := m.offset/query.DefaultLimit + 1
	pages := (m.result.Total + query.DefaultLimit - 1) / query.DefaultLimit
	b.WriteString(fmt.Sprintf("%d recipes │ page %d/%d\n\n", m.result.Total, page, pages))

	for i, recipe := range m.result.Recipes {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		premium := " "
		if recipe.IsPremium {
			premium = "$"
		}
		b.WriteString(fmt.Sprintf("%s %s %-40s %s %4d♥ %s\n",
			cursor,
			premium,
			fitText(recipe.Title, 40),
			starRating(recipe.AverageRating),
			recipe.TotalLikes,
			minutes(recipe.PrepTime),
		))
	}

	if m.searching {
		b.WriteString("\n[Loading...]\n")
	}

	return renderPage("RESULTS", strings.TrimRight(b.String(), "\n"),
		"enter: open │ ←/→: page │ ↑/↓: move │ esc: filters")
}
