package stubapi

import (
	"hash/fnv"
	"strings"
)

var (
	prefixes = []string{"get", "try", "go", "my", "join", "the"}
	suffixes = []string{"app", "hq", "site", "online", "tech", "co", "now"}
	tlds     = []string{".com", ".io", ".co", ".xyz", ".net"}
)

// availability is a deterministic stand-in for a registry lookup, so
// the front-end sees stable answers across runs.
func availability(domain string) bool {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(domain)))
	return h.Sum32()%3 == 0
}

// sanitizeWord keeps lowercase letters and digits only, matching what
// the real service does to brand keywords.
func sanitizeWord(w string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(w)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitDomain returns the base label and the dotted suffix of a
// full domain, e.g. "shop.example.co" -> ("shop", ".example.co").
func splitDomain(domain string) (base, suffix string) {
	if i := strings.Index(domain, "."); i >= 0 {
		return domain[:i], domain[i:]
	}
	return domain, ""
}

// alternativesFor proposes the same base label across the TLD list,
// skipping the TLD the caller already tried.
func alternativesFor(domain string) []candidateJSON {
	base, suffix := splitDomain(domain)
	out := make([]candidateJSON, 0, len(tlds))
	for _, tld := range tlds {
		if tld == suffix {
			continue
		}
		alt := base + tld
		out = append(out, candidateJSON{FQDN: alt, Available: availability(alt)})
	}
	return out
}

// ideasFor expands a brand keyword with the prefix/suffix tables. The
// TLD for each idea is picked deterministically from the idea itself.
func ideasFor(keyword string) []candidateJSON {
	k := sanitizeWord(keyword)
	if k == "" {
		return nil
	}

	names := make([]string, 0, len(prefixes)+2*len(suffixes)+1)
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	add(k)
	for _, pre := range prefixes {
		add(pre + k)
	}
	for _, suf := range suffixes {
		add(k + suf)
		add(k + "-" + suf)
	}

	out := make([]candidateJSON, 0, len(names))
	for _, name := range names {
		h := fnv.New32a()
		_, _ = h.Write([]byte(name))
		fqdn := name + tlds[h.Sum32()%uint32(len(tlds))]
		out = append(out, candidateJSON{FQDN: fqdn, Available: availability(fqdn)})
	}
	return out
}
