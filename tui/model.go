package tui

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gofish-bot/appstore/catalog"
	"github.com/gofish-bot/appstore/log"
	"github.com/gofish-bot/appstore/models"
	"github.com/gofish-bot/appstore/printer"
)

// Messages
type reloadedMsg catalog.ReloadResult

type descriptionMsg struct {
	id   int
	text string
}

type openedMsg struct{ err error }

type detail struct {
	id   int
	app  models.App
	text string
}

// Config wires the model to its collaborators.
type Config struct {
	Reloader *catalog.Reloader
	Client   *http.Client
	// Open hands a url to the desktop. Nil disables opening.
	Open func(url string) error
}

// Model is the catalog browser.
type Model struct {
	ctx      context.Context
	reloader *catalog.Reloader
	client   *http.Client
	open     func(string) error

	view    *catalog.View
	search  textinput.Model
	spinner spinner.Model

	loading bool
	err     error
	status  string

	cursor      int
	facetKind   models.FacetKind
	facetCursor map[models.FacetKind]int

	detail   *detail
	detailID int

	width  int
	height int
}

func NewModel(ctx context.Context, cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Search apps..."
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:         ctx,
		reloader:    cfg.Reloader,
		client:      cfg.Client,
		open:        cfg.Open,
		view:        catalog.NewView(),
		search:      ti,
		spinner:     s,
		facetCursor: map[models.FacetKind]int{},
		// Init starts the first reload on a copy of the model, so the
		// loading state has to exist before it.
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startReload())
}

// startReload supersedes any reload in flight. Its result is dropped on
// arrival if yet another reload has started since.
func (m *Model) startReload() tea.Cmd {
	m.loading = true
	_, results := m.reloader.Start(m.ctx)
	return func() tea.Msg {
		return reloadedMsg(<-results)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case reloadedMsg:
		if !m.reloader.Current(msg.Generation) {
			log.G(m.ctx).Debugf("Dropping stale reload %d", msg.Generation)
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.view.SetRecords(msg.Apps)
		m.clamp()
		m.status = fmt.Sprintf("Loaded %d apps", len(msg.Apps))
		return m, nil

	case descriptionMsg:
		if m.detail != nil && m.detail.id == msg.id {
			m.detail.text = msg.text
		}
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.reloader.Stop()
		return m, tea.Quit
	}

	if m.search.Focused() {
		switch key {
		case "esc", "enter":
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.view.SetSearch(m.search.Value())
		m.clamp()
		return m, cmd
	}

	if m.detail != nil {
		switch key {
		case "esc", "backspace", "q":
			m.detail = nil
		case "o":
			return m, m.openURL(m.detail.app.URL)
		}
		return m, nil
	}

	switch key {
	case "q":
		m.reloader.Stop()
		return m, tea.Quit
	case "/":
		cmd := m.search.Focus()
		return m, cmd
	case "r":
		m.status = ""
		cmd := m.startReload()
		return m, cmd
	case "down", "j":
		m.cursor++
		m.clamp()
	case "up", "k":
		m.cursor--
		m.clamp()
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = len(m.view.Visible()) - 1
		m.clamp()
	case "p":
		m.facetKind = models.Platform
	case "g":
		m.facetKind = models.Genre
	case "t":
		m.facetKind = models.Type
	case "tab":
		m.facetKind = models.FacetKinds[(int(m.facetKind)+1)%len(models.FacetKinds)]
	case "left", "h":
		m.moveFacet(-1)
	case "right", "l":
		m.moveFacet(1)
	case " ":
		m.toggleFacet()
	case "c":
		for _, value := range m.view.Selected(m.facetKind) {
			m.view.SelectFacet(m.facetKind, value, false)
		}
		m.clamp()
	case "enter":
		cmd := m.showDetail()
		return m, cmd
	case "o":
		if app, ok := m.selected(); ok {
			return m, m.openURL(app.URL)
		}
	}
	return m, nil
}

func (m *Model) clamp() {
	n := len(m.view.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) moveFacet(delta int) {
	values := m.view.Facets(m.facetKind)
	if len(values) == 0 {
		return
	}
	i := (m.facetCursor[m.facetKind] + delta) % len(values)
	if i < 0 {
		i += len(values)
	}
	m.facetCursor[m.facetKind] = i
}

func (m *Model) toggleFacet() {
	values := m.view.Facets(m.facetKind)
	i := m.facetCursor[m.facetKind]
	if i >= len(values) {
		return
	}
	m.view.ToggleFacet(m.facetKind, values[i])
	m.clamp()
}

func (m Model) selected() (models.App, bool) {
	visible := m.view.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return models.App{}, false
	}
	return visible[m.cursor], true
}

// showDetail opens the selected app and fetches its description. A result
// arriving after the detail was closed or replaced is ignored.
func (m *Model) showDetail() tea.Cmd {
	app, ok := m.selected()
	if !ok {
		return nil
	}
	m.detailID++
	d := &detail{id: m.detailID, app: app, text: printer.InitialDescription(app)}
	m.detail = d

	if strings.TrimSpace(app.DescriptionRef) == "" {
		return nil
	}
	ctx, client, current := log.WithField(m.ctx, "app", app.Name), m.client, d.text
	return func() tea.Msg {
		return descriptionMsg{
			id:   d.id,
			text: catalog.FetchDescription(ctx, client, app.DescriptionRef, current),
		}
	}
}

func (m Model) openURL(url string) tea.Cmd {
	if m.open == nil || strings.TrimSpace(url) == "" {
		return nil
	}
	open := m.open
	return func() tea.Msg {
		return openedMsg{err: open(url)}
	}
}
