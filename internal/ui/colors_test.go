package ui

import (
	"strings"
	"testing"
)

func TestPalette(t *testing.T) {
	t.Run("NewPalette builds all styles", func(t *testing.T) {
		p := NewPalette("#ffffff", "#00ff00", "#ff0000", "#ffa500", "#626262")
		if p == nil {
			t.Fatal("expected palette to be created")
		}
	})

	t.Run("render helpers keep the text", func(t *testing.T) {
		helpers := map[string]func(string) string{
			"Title": Title,
			"OK":    OK,
			"Err":   Err,
			"Warn":  Warn,
			"Help":  Help,
		}

		for name, fn := range helpers {
			t.Run(name, func(t *testing.T) {
				if got := fn("message"); !strings.Contains(got, "message") {
					t.Errorf("expected text to survive styling, got %q", got)
				}
			})
		}
	})
}
