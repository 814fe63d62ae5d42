package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"domainscout/internal/api"
	"domainscout/internal/clipboard"
)

// copiedWindow is how long the transient "copied" marker is shown
// before the row reverts to its copy hint.
const copiedWindow = 2 * time.Second

type copyExpiredMsg struct{ id int }

// Row renders one candidate domain with its availability badge, copy
// action, and (for available domains) a registrar link.
type Row struct {
	id        int
	candidate api.Candidate
	clip      clipboard.Writer
	notify    Notifier
	copied    bool
}

func NewRow(id int, c api.Candidate, clip clipboard.Writer, notify Notifier) Row {
	return Row{id: id, candidate: c, clip: clip, notify: notify}
}

func (r Row) FQDN() string { return r.candidate.FQDN }

// Copy writes the domain to the clipboard. Success shows a copied
// marker and schedules its reversal; failure reports through the sink
// and touches nothing else.
func (r Row) Copy() (Row, tea.Cmd) {
	if r.candidate.FQDN == "" {
		return r, nil
	}
	if err := r.clip.WriteText(r.candidate.FQDN); err != nil {
		r.notify.Notify(ToastError, "Copy failed", err.Error())
		return r, nil
	}
	r.copied = true
	id := r.id
	return r, tea.Tick(copiedWindow, func(time.Time) tea.Msg {
		return copyExpiredMsg{id: id}
	})
}

func (r Row) Update(msg tea.Msg) (Row, tea.Cmd) {
	if m, ok := msg.(copyExpiredMsg); ok && m.id == r.id {
		r.copied = false
	}
	return r, nil
}

func (r Row) View(selected bool) string {
	if r.candidate.FQDN == "" {
		return ""
	}

	cursor := "  "
	name := r.candidate.FQDN
	if selected {
		cursor = "> "
		name = selectedStyle.Render(name)
	}

	badge := badgeTaken.Render("[Taken]")
	if r.candidate.Available {
		badge = badgeAvailable.Render("[Available]")
	}

	line := cursor + name + " " + badge
	if r.copied {
		line += " " + faintStyle.Render("copied!")
	} else if selected {
		line += " " + faintStyle.Render("(c to copy)")
	}
	if r.candidate.Available {
		line += "\n    " + linkStyle.Render(api.RegistrarURL(r.candidate.FQDN))
	}
	return line
}
