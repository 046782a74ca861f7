package report

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	once    sync.Once
	printer *message.Printer
)

// Printer returns a printer for the user's locale, falling back to en-US.
func Printer() *message.Printer {
	once.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			locales = nil
		}
		printer = New(locales...)
	})
	return printer
}

// New returns a printer for the first locale that parses as a language tag.
func New(locales ...string) *message.Printer {
	for _, l := range locales {
		if tag, err := language.Parse(l); err == nil {
			return message.NewPrinter(tag)
		}
	}
	return message.NewPrinter(language.AmericanEnglish)
}

// Sprintf formats with locale-aware number grouping.
func Sprintf(format string, args ...any) string {
	return Printer().Sprintf(format, args...)
}

// BufferLength is the summary line printed after extraction.
func BufferLength(p *message.Printer, n int) string {
	return p.Sprintf("Generating file with buffer length: %d", n)
}
