package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrefersURL(t *testing.T) {
	assert.Equal(t, "chrome.exe:https://example.com", Resolve("chrome.exe", "Example - Google Chrome", "https://example.com"))
	assert.Equal(t, "notepad.exe:notes.txt - Notepad", Resolve("notepad.exe", "notes.txt - Notepad", ""))
}

func TestDecomposeRoundTrip(t *testing.T) {
	cases := []struct {
		app, title, url string
		wantDetail      string
		wantURL         bool
	}{
		{"notepad.exe", "notes.txt - Notepad", "", "notes.txt - Notepad", false},
		{"chrome.exe", "Example - Google Chrome", "https://example.com", "https://example.com", true},
		{"firefox.exe", "Docs", "http://docs.local", "http://docs.local", true},
		// the detail itself may contain ':' (URLs always do), only the first one splits
		{"msedge.exe", "", "https://a:8080/b", "https://a:8080/b", true},
		{"game.exe", "", "", "", false},
	}
	for _, c := range cases {
		key := Resolve(c.app, c.title, c.url)
		app, detail, isURL := Decompose(key)
		assert.Equal(t, c.app, app, key)
		assert.Equal(t, c.wantDetail, detail, key)
		assert.Equal(t, c.wantURL, isURL, key)
	}
}

func TestDecomposeWithoutSeparator(t *testing.T) {
	app, detail, isURL := Decompose("bare")
	assert.Equal(t, "bare", app)
	assert.Equal(t, "Unknown", detail)
	assert.False(t, isURL)
}
