package ui

import (
	"context"

	"domainscout/internal/api"
	"domainscout/internal/clipboard"
)

// recorder captures what the logic decided to report.
type recorder struct {
	notices []notice
}

type notice struct {
	kind   ToastKind
	title  string
	detail string
}

func (r *recorder) Notify(kind ToastKind, title, detail string) {
	r.notices = append(r.notices, notice{kind: kind, title: title, detail: detail})
}

func (r *recorder) has(title string) bool {
	for _, n := range r.notices {
		if n.title == title {
			return true
		}
	}
	return false
}

// fakeBackend scripts the API client for UI tests and counts calls so
// tests can prove no network request was issued.
type fakeBackend struct {
	checkRes *api.CheckResult
	checkErr error
	subMsg   string
	subErr   error

	checks int
	subs   int
}

func (f *fakeBackend) Check(_ context.Context, _ string) (*api.CheckResult, error) {
	f.checks++
	if f.checkErr != nil {
		return nil, f.checkErr
	}
	return f.checkRes, nil
}

func (f *fakeBackend) Subscribe(_ context.Context, _, _ string) (string, error) {
	f.subs++
	if f.subErr != nil {
		return "", f.subErr
	}
	return f.subMsg, nil
}

func okClipboard() clipboard.Writer {
	return clipboard.Func(func(string) error { return nil })
}
