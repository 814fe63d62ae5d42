package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"domainscout/internal/api"
)

func newTestSearch(b Backend) Search {
	return NewSearch(b, okClipboard(), zap.NewNop())
}

func pressEnter(t *testing.T, s Search) (Search, tea.Cmd) {
	t.Helper()
	m, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return m.(Search), cmd
}

func TestSearch_EmptyInputDoesNotCallBackend(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		b := &fakeBackend{}
		s := newTestSearch(b)
		s.input.SetValue(input)

		s, cmd := pressEnter(t, s)
		if cmd != nil {
			t.Fatalf("input %q should not produce a command", input)
		}
		if b.checks != 0 {
			t.Fatalf("input %q reached the network", input)
		}
		if !trayHas(s.tray, "Input required") {
			t.Fatalf("input %q produced no validation notice", input)
		}
	}
}

func TestSearch_EnterSubmitsAndInFlightGuards(t *testing.T) {
	b := &fakeBackend{checkRes: &api.CheckResult{Status: "available", Domain: "example.com"}}
	s := newTestSearch(b)
	s.input.SetValue("example.com")

	s, cmd := pressEnter(t, s)
	if cmd == nil {
		t.Fatal("valid input should produce a check command")
	}
	if !s.inFlight {
		t.Fatal("in-flight flag should be set while the check is out")
	}

	// A second submission while in flight is swallowed.
	s, second := pressEnter(t, s)
	if second != nil {
		t.Fatal("second submit while in flight must be ignored")
	}

	// Settle the first request.
	m, _ := s.Update(cmd())
	s = m.(Search)
	if s.inFlight {
		t.Fatal("flag should clear when the check settles")
	}
	if b.checks != 1 {
		t.Fatalf("want exactly one check call, got %d", b.checks)
	}
	if s.result == nil || s.result.Kind() != api.KindAvailable {
		t.Fatalf("result not applied: %+v", s.result)
	}
	// The query input stays as typed.
	if s.input.Value() != "example.com" {
		t.Fatalf("query input should not be cleared, got %q", s.input.Value())
	}
}

func TestSearch_CheckFailureKeepsPriorResult(t *testing.T) {
	b := &fakeBackend{checkRes: &api.CheckResult{Status: "available", Domain: "example.com"}}
	s := newTestSearch(b)
	s.input.SetValue("example.com")
	s, cmd := pressEnter(t, s)
	m, _ := s.Update(cmd())
	s = m.(Search)

	// Next check blows up; the displayed result must survive.
	b.checkErr = errors.New("connection refused")
	s, cmd = pressEnter(t, s)
	m, _ = s.Update(cmd())
	s = m.(Search)

	if s.inFlight {
		t.Fatal("flag should clear on failure")
	}
	if s.result == nil || s.result.Domain != "example.com" {
		t.Fatalf("prior result should be untouched, got %+v", s.result)
	}
	if !trayHas(s.tray, "Check failed") {
		t.Fatal("expected a generic failure notice")
	}
}

func TestSearch_UnavailableBuildsRowsAndForm(t *testing.T) {
	b := &fakeBackend{checkRes: &api.CheckResult{
		Status: "unavailable",
		Domain: "taken.com",
		Alternatives: []api.Candidate{
			{FQDN: "a.io", Available: true},
			{FQDN: "b.io", Available: false},
		},
		AllowNotification: true,
	}}
	s := newTestSearch(b)
	s.input.SetValue("taken.com")
	s, cmd := pressEnter(t, s)
	m, _ := s.Update(cmd())
	s = m.(Search)

	if len(s.rows) != 2 {
		t.Fatalf("want 2 candidate rows, got %d", len(s.rows))
	}
	if s.form == nil {
		t.Fatal("allow_notification should activate the form")
	}

	view := s.View()
	if !strings.Contains(view, "a.io") || !strings.Contains(view, "b.io") {
		t.Fatalf("rows missing from view: %q", view)
	}
	if !strings.Contains(view, "Notify me when taken.com") {
		t.Fatalf("form missing from view: %q", view)
	}
}

func TestSearch_NoFormWithoutPermission(t *testing.T) {
	b := &fakeBackend{checkRes: &api.CheckResult{
		Status:  "suggestions",
		Keyword: "acme",
		Results: []api.Candidate{{FQDN: "getacme.com", Available: true}},
	}}
	s := newTestSearch(b)
	s.input.SetValue("acme")
	s, cmd := pressEnter(t, s)
	m, _ := s.Update(cmd())
	s = m.(Search)

	if s.form != nil {
		t.Fatal("suggestions response must not activate the form")
	}
	if len(s.rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(s.rows))
	}
}

func TestSearch_UnknownKindRendersNoResult(t *testing.T) {
	b := &fakeBackend{checkRes: &api.CheckResult{Status: "weird"}}
	s := newTestSearch(b)
	s.input.SetValue("example.com")
	s, cmd := pressEnter(t, s)
	m, _ := s.Update(cmd())
	s = m.(Search)

	if out := renderResult(s.result, s.rows, -1); out != "" {
		t.Fatalf("unknown kind should render nothing, got %q", out)
	}
}

func TestSearch_ViewIsStableAcrossRenders(t *testing.T) {
	b := &fakeBackend{checkRes: &api.CheckResult{
		Status:       "unavailable",
		Domain:       "taken.com",
		Alternatives: []api.Candidate{{FQDN: "a.io", Available: true}},
	}}
	s := newTestSearch(b)
	s.input.SetValue("taken.com")
	s, cmd := pressEnter(t, s)
	m, _ := s.Update(cmd())
	s = m.(Search)

	if s.View() != s.View() {
		t.Fatal("rendering must not mutate state")
	}
}

func TestSearch_TabMovesFocusToForm(t *testing.T) {
	b := &fakeBackend{checkRes: &api.CheckResult{
		Status:            "unavailable",
		Domain:            "taken.com",
		AllowNotification: true,
	}}
	s := newTestSearch(b)
	s.input.SetValue("taken.com")
	s, cmd := pressEnter(t, s)
	m, _ := s.Update(cmd())
	s = m.(Search)

	// No rows here, so tab goes query -> form -> query.
	m, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = m.(Search)
	if s.focus != focusForm {
		t.Fatalf("want form focus, got %d", s.focus)
	}
	if s.input.Focused() {
		t.Fatal("query input should blur when the form takes focus")
	}

	m, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = m.(Search)
	if s.focus != focusQuery {
		t.Fatalf("want query focus, got %d", s.focus)
	}
}

func trayHas(tr *Tray, title string) bool {
	for _, it := range tr.items {
		if it.title == title {
			return true
		}
	}
	return false
}
