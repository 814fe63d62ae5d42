// Package clipboard isolates the one OS side effect the UI performs,
// so components can take an interface and tests can script failures.
package clipboard

import "github.com/atotto/clipboard"

type Writer interface {
	WriteText(text string) error
}

// System writes to the real system clipboard.
type System struct{}

func (System) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// Func adapts a plain function to Writer.
type Func func(text string) error

func (f Func) WriteText(text string) error { return f(text) }
