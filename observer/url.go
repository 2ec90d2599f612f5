package observer

import "strings"

var firefoxSuffixes = []string{" - Mozilla Firefox", " | Mozilla Firefox", " — Mozilla Firefox"}

// ExtractBrowserURL tries to pull a URL out of a browser window title.
// Best effort, heuristic: browsers only expose the URL through the title,
// and many pages don't. Empty string means no URL was found.
func ExtractBrowserURL(appName, windowTitle string) string {
	app := strings.ToLower(appName)
	switch {
	case strings.Contains(app, "chrome"), strings.Contains(app, "msedge"), strings.Contains(app, "brave"):
		return extractChromiumURL(windowTitle)
	case strings.Contains(app, "firefox"):
		return extractFirefoxURL(windowTitle)
	}
	return ""
}

// Chromium-family titles follow "Page Title - Browser Name"; some pages put
// the URL in the last segment.
func extractChromiumURL(windowTitle string) string {
	parts := strings.Split(windowTitle, " - ")
	if len(parts) < 2 {
		return ""
	}
	candidate := parts[len(parts)-1]
	if strings.HasPrefix(candidate, "http") || strings.Contains(candidate, "://") {
		return candidate
	}
	return ""
}

// Firefox titles end with a browser suffix; the leading part is sometimes
// the URL itself.
func extractFirefoxURL(windowTitle string) string {
	for _, suffix := range firefoxSuffixes {
		pos := strings.Index(windowTitle, suffix)
		if pos < 0 {
			continue
		}
		candidate := windowTitle[:pos]
		if strings.HasPrefix(candidate, "http") || strings.Contains(candidate, "://") {
			return candidate
		}
	}
	return ""
}
