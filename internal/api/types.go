package api

import (
	"encoding/json"
	"strings"
)

// Kind classifies a /check response.
type Kind string

const (
	KindAvailable   Kind = "available"
	KindUnavailable Kind = "unavailable"
	KindSuggestions Kind = "suggestions"
	KindUnknown     Kind = ""
)

// CheckResult is the /check response body. Exactly one kind is active
// per response; a response with an unrecognized status still decodes,
// but Kind reports KindUnknown and the UI shows nothing for it.
type CheckResult struct {
	Status            string      `json:"status"`
	Domain            string      `json:"domain,omitempty"`
	Keyword           string      `json:"keyword,omitempty"`
	Message           string      `json:"message,omitempty"`
	Alternatives      []Candidate `json:"alternatives,omitempty"`
	Results           []Candidate `json:"results,omitempty"`
	AllowNotification bool        `json:"allow_notification,omitempty"`
}

func (r *CheckResult) Kind() Kind {
	switch r.Status {
	case "available":
		return KindAvailable
	case "unavailable":
		return KindUnavailable
	case "suggestions":
		return KindSuggestions
	}
	return KindUnknown
}

// Candidates returns the candidate list belonging to the active kind:
// alternatives for an unavailable domain, results for keyword
// suggestions, nothing otherwise.
func (r *CheckResult) Candidates() []Candidate {
	switch r.Kind() {
	case KindUnavailable:
		return r.Alternatives
	case KindSuggestions:
		return r.Results
	}
	return nil
}

// Candidate is one suggested or alternative domain. On the wire it is
// either an object {"fqdn": ..., "available": ...} or, in the legacy
// form, a bare string.
type Candidate struct {
	FQDN      string `json:"fqdn"`
	Available bool   `json:"available"`

	bare bool // decoded from the legacy string form
}

func (c *Candidate) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Candidate{FQDN: s, bare: true}
		return nil
	}
	type plain Candidate
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*c = Candidate(p)
	return nil
}

// Bare reports whether the candidate arrived as a legacy bare string,
// i.e. without an explicit availability flag.
func (c Candidate) Bare() bool { return c.bare }

// normalizeCandidates resolves both wire shapes into one canonical
// form: FQDNs are trimmed, empty candidates dropped, and bare-string
// candidates get bareAvailable as their availability.
func normalizeCandidates(in []Candidate, bareAvailable bool) []Candidate {
	if len(in) == 0 {
		return in
	}
	out := make([]Candidate, 0, len(in))
	for _, c := range in {
		c.FQDN = strings.TrimSpace(c.FQDN)
		if c.FQDN == "" {
			continue
		}
		if c.bare {
			c.Available = bareAvailable
		}
		out = append(out, c)
	}
	return out
}
