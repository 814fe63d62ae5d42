package ui

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type formPhase int

const (
	phaseEditing formPhase = iota
	phaseSubmitting
	phaseSubscribed // terminal
)

type subscribeDoneMsg struct{ message string }
type subscribeFailedMsg struct{ err error }

// Subscriber is the slice of the API client the form needs.
type Subscriber interface {
	Subscribe(ctx context.Context, domain, email string) (string, error)
}

// NotifyForm collects an email for one specific domain and submits a
// subscription. Phases: editing -> submitting -> subscribed (terminal),
// or back to editing on failure so the user can retry.
type NotifyForm struct {
	domain string
	client Subscriber
	notify Notifier
	input  textinput.Model
	phase  formPhase
}

func NewNotifyForm(domain string, client Subscriber, notify Notifier) NotifyForm {
	ti := textinput.New()
	ti.Placeholder = "you@example.com"
	ti.CharLimit = 254
	ti.Width = 40
	return NotifyForm{
		domain: domain,
		client: client,
		notify: notify,
		input:  ti,
	}
}

func (f NotifyForm) Subscribed() bool { return f.phase == phaseSubscribed }

func (f NotifyForm) Focus() NotifyForm {
	f.input.Focus()
	return f
}

func (f NotifyForm) Blur() NotifyForm {
	f.input.Blur()
	return f
}

func (f NotifyForm) Focused() bool { return f.input.Focused() }

// Submit validates the email and, if it passes, posts the subscription.
// Validation failures never reach the network.
func (f NotifyForm) Submit() (NotifyForm, tea.Cmd) {
	if f.phase != phaseEditing {
		return f, nil
	}
	email := strings.TrimSpace(f.input.Value())
	if email == "" {
		f.notify.Notify(ToastError, "Email required", "Enter an email address first.")
		return f, nil
	}
	if !emailPattern.MatchString(email) {
		f.notify.Notify(ToastError, "Invalid email", "That does not look like an email address.")
		return f, nil
	}

	f.phase = phaseSubmitting
	client, domain := f.client, f.domain
	return f, func() tea.Msg {
		msg, err := client.Subscribe(context.Background(), domain, email)
		if err != nil {
			return subscribeFailedMsg{err: err}
		}
		return subscribeDoneMsg{message: msg}
	}
}

func (f NotifyForm) Update(msg tea.Msg) (NotifyForm, tea.Cmd) {
	switch msg := msg.(type) {
	case subscribeDoneMsg:
		f.phase = phaseSubscribed
		f.input.SetValue("")
		f.input.Blur()
		detail := msg.message
		if detail == "" {
			detail = "We'll email you when " + f.domain + " frees up."
		}
		f.notify.Notify(ToastSuccess, "Subscribed", detail)
		return f, nil

	case subscribeFailedMsg:
		// Back to editing with the input intact so the user can retry.
		f.phase = phaseEditing
		f.notify.Notify(ToastError, "Subscription failed", "Could not save your request, please try again.")
		return f, nil
	}

	if f.phase == phaseEditing {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f NotifyForm) View() string {
	switch f.phase {
	case phaseSubscribed:
		return panelOKStyle.Render("You're on the list for " + f.domain + ".")
	case phaseSubmitting:
		return subtitleStyle.Render("Notify me when "+f.domain+" is available") +
			"\n" + faintStyle.Render("Submitting...")
	}
	return subtitleStyle.Render("Notify me when "+f.domain+" is available") +
		"\n" + f.input.View()
}
