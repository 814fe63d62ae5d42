package ui

import (
	"strings"

	"domainscout/internal/api"
)

// renderResult maps the latest check result to its display. It is a
// pure function of its inputs: rendering the same result and rows
// twice yields the same output.
//
// available: affirmative panel with a registrar link. unavailable:
// negative panel, then either the candidate grid or an explicit "no
// alternatives" line, never neither. suggestions: candidate grid
// headed by the keyword when present. Anything else renders nothing.
func renderResult(res *api.CheckResult, rows []Row, selected int) string {
	if res == nil {
		return ""
	}

	switch res.Kind() {
	case api.KindAvailable:
		msg := res.Message
		if msg == "" {
			msg = res.Domain + " is available!"
		}
		return panelOKStyle.Render(msg + "\n" + linkStyle.Render(api.RegistrarURL(res.Domain)))

	case api.KindUnavailable:
		msg := res.Message
		if msg == "" {
			msg = res.Domain + " is not available."
		}
		var b strings.Builder
		b.WriteString(panelBadStyle.Render(msg))
		if len(rows) == 0 {
			b.WriteString("\n" + faintStyle.Render("No alternatives found."))
			return b.String()
		}
		b.WriteString("\n" + subtitleStyle.Render("Alternatives"))
		writeRows(&b, rows, selected)
		return b.String()

	case api.KindSuggestions:
		head := "Suggestions"
		if res.Keyword != "" {
			head = "Suggestions for \"" + res.Keyword + "\""
		}
		var b strings.Builder
		b.WriteString(subtitleStyle.Render(head))
		if len(rows) == 0 {
			b.WriteString("\n" + faintStyle.Render("No suggestions found."))
			return b.String()
		}
		writeRows(&b, rows, selected)
		return b.String()
	}

	return ""
}

func writeRows(b *strings.Builder, rows []Row, selected int) {
	for i, r := range rows {
		v := r.View(i == selected)
		if v == "" {
			continue
		}
		b.WriteString("\n" + v)
	}
}
