package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// languages returns the user's preferred locales, falling back to en-US.
func languages() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("asmbunny: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(func() {
		printer = message.NewPrinter(message.MatchLanguage(languages()...))
	})

	return printer.Sprintf(key, args...)
}
