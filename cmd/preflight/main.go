// cmd/preflight/main.go
package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	base := strings.TrimSpace(os.Getenv("API_BASE"))
	logDir := strings.TrimSpace(os.Getenv("LOG_DIR"))

	if base == "" {
		warn("API_BASE empty — the TUI will use http://localhost:8000; run cmd/stub-api or set it.")
	} else {
		u, err := url.Parse(base)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			fail("API_BASE is not an http(s) URL: " + base)
		}
		ok("API_BASE=" + base)
	}

	if logDir == "" {
		logDir = "logs"
		warn("LOG_DIR empty — defaulting to ./logs")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fail("LOG_DIR not writable: " + err.Error())
	}
	probe := filepath.Join(logDir, ".preflight")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		fail("LOG_DIR not writable: " + err.Error())
	}
	_ = os.Remove(probe)
	ok("LOG_DIR writable: " + logDir)

	ok("preflight passed")
}
