package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"domainscout/internal/api"
	"domainscout/internal/clipboard"
)

const sourceRepo = "https://github.com/domainscout/domainscout"

// Checker is the slice of the API client the root view needs.
type Checker interface {
	Check(ctx context.Context, input string) (*api.CheckResult, error)
}

// Backend is everything the UI asks of the API.
type Backend interface {
	Checker
	Subscriber
}

type checkDoneMsg struct{ result *api.CheckResult }
type checkFailedMsg struct{ err error }
type pruneTickMsg struct{}

type focusArea int

const (
	focusQuery focusArea = iota
	focusResults
	focusForm
)

// Search is the root view: it owns the query input, the latest check
// result, the candidate rows built from it, and the notification form
// when the response permits sign-up.
type Search struct {
	client Backend
	clip   clipboard.Writer
	logger *zap.Logger
	tray   *Tray

	input    textinput.Model
	inFlight bool
	result   *api.CheckResult
	rows     []Row
	selected int
	form     *NotifyForm
	focus    focusArea
	width    int
}

func NewSearch(client Backend, clip clipboard.Writer, logger *zap.Logger) Search {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "example.com or a brand keyword"
	ti.CharLimit = 253
	ti.Width = 48
	ti.Focus()
	return Search{
		client: client,
		clip:   clip,
		logger: logger,
		tray:   NewTray(4 * time.Second),
		input:  ti,
	}
}

func (s Search) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, pruneTick())
}

func pruneTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return pruneTickMsg{} })
}

func (s Search) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case pruneTickMsg:
		s.tray.Prune()
		return s, pruneTick()

	case checkDoneMsg:
		return s.applyResult(msg.result), nil

	case checkFailedMsg:
		// Prior displayed state stays as it was; only the flag clears.
		s.inFlight = false
		s.logger.Warn("check_failed", zap.Error(msg.err))
		s.tray.Notify(ToastError, "Check failed", "Could not reach the domain service.")
		return s, nil

	case copyExpiredMsg:
		for i, r := range s.rows {
			s.rows[i], _ = r.Update(msg)
		}
		return s, nil

	case subscribeDoneMsg, subscribeFailedMsg:
		if s.form == nil {
			return s, nil
		}
		f, cmd := s.form.Update(msg)
		s.form = &f
		if f.Subscribed() && s.focus == focusForm {
			s = s.setFocus(focusQuery)
		}
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToFocused(msg)
}

func (s Search) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return s, tea.Quit
	case tea.KeyTab:
		return s.setFocus(s.nextFocus()), nil
	}

	switch s.focus {
	case focusQuery:
		if msg.Type == tea.KeyEnter {
			return s.submitCheck()
		}

	case focusResults:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
			return s, nil
		case "c", "enter":
			if s.selected >= 0 && s.selected < len(s.rows) {
				var cmd tea.Cmd
				s.rows[s.selected], cmd = s.rows[s.selected].Copy()
				return s, cmd
			}
			return s, nil
		}
		return s, nil

	case focusForm:
		if msg.Type == tea.KeyEnter && s.form != nil {
			f, cmd := s.form.Submit()
			s.form = &f
			return s, cmd
		}
	}

	return s.forwardToFocused(msg)
}

// submitCheck validates the query and issues the check. The in-flight
// flag guards against a second submission until the first settles.
func (s Search) submitCheck() (tea.Model, tea.Cmd) {
	if s.inFlight {
		return s, nil
	}
	query := strings.TrimSpace(s.input.Value())
	if query == "" {
		s.tray.Notify(ToastError, "Input required", "Type a domain or keyword first.")
		return s, nil
	}

	s.inFlight = true
	client := s.client
	return s, func() tea.Msg {
		res, err := client.Check(context.Background(), query)
		if err != nil {
			return checkFailedMsg{err: err}
		}
		return checkDoneMsg{result: res}
	}
}

// applyResult replaces the displayed result and rebuilds everything
// derived from it. The query input is deliberately left as typed.
func (s Search) applyResult(res *api.CheckResult) Search {
	s.inFlight = false
	s.result = res

	candidates := res.Candidates()
	s.rows = make([]Row, 0, len(candidates))
	for i, c := range candidates {
		s.rows = append(s.rows, NewRow(i, c, s.clip, s.tray))
	}
	s.selected = 0

	s.form = nil
	if res.AllowNotification && res.Domain != "" {
		f := NewNotifyForm(res.Domain, s.client, s.tray)
		s.form = &f
	}

	switch res.Kind() {
	case api.KindAvailable:
		s.tray.Notify(ToastSuccess, "Good news", ackMessage(res, res.Domain+" is available!"))
	case api.KindUnavailable:
		s.tray.Notify(ToastInfo, "Domain taken", ackMessage(res, res.Domain+" is not available."))
	case api.KindSuggestions:
		s.tray.Notify(ToastInfo, "Suggestions ready", ackMessage(res, "Here are some ideas."))
	}
	return s
}

func ackMessage(res *api.CheckResult, fallback string) string {
	if res.Message != "" {
		return res.Message
	}
	return fallback
}

func (s Search) nextFocus() focusArea {
	order := []focusArea{focusQuery}
	if len(s.rows) > 0 {
		order = append(order, focusResults)
	}
	if s.form != nil && !s.form.Subscribed() {
		order = append(order, focusForm)
	}
	for i, f := range order {
		if f == s.focus {
			return order[(i+1)%len(order)]
		}
	}
	return focusQuery
}

func (s Search) setFocus(target focusArea) Search {
	s.focus = target
	if target == focusQuery {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
	if s.form != nil {
		nf := *s.form
		if target == focusForm {
			nf = nf.Focus()
		} else {
			nf = nf.Blur()
		}
		s.form = &nf
	}
	return s
}

func (s Search) forwardToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch s.focus {
	case focusQuery:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	case focusForm:
		if s.form != nil {
			f, cmd := s.form.Update(msg)
			s.form = &f
			return s, cmd
		}
	}
	return s, nil
}

func (s Search) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("domainscout") + "\n\n")
	b.WriteString(s.input.View())
	if s.inFlight {
		b.WriteString("  " + faintStyle.Render("checking..."))
	}
	b.WriteString("\n")

	if body := renderResult(s.result, s.rows, s.rowCursor()); body != "" {
		b.WriteString("\n" + body + "\n")
	}
	if s.form != nil {
		b.WriteString("\n" + s.form.View() + "\n")
	}
	if toasts := s.tray.View(); toasts != "" {
		b.WriteString("\n" + toasts + "\n")
	}

	b.WriteString("\n" + faintStyle.Render("enter: check · tab: switch focus · esc: quit"))
	b.WriteString("\n" + faintStyle.Render("source: ") + linkStyle.Render(sourceRepo))
	return b.String()
}

// rowCursor hides the selection marker while focus is elsewhere.
func (s Search) rowCursor() int {
	if s.focus != focusResults {
		return -1
	}
	return s.selected
}
