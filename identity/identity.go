// Package identity builds and splits the canonical activity identifier.
// An identifier is "appName:detail" where detail is the resolved URL when
// the foreground app is a browser, and the raw window title otherwise.
// The separator is the first ':'; executable names never contain one.
package identity

import "strings"

const Separator = ":"

// Resolve combines an app name and either a URL (when non-empty) or the
// window title into a single identifier. Pure, no normalization: callers
// pass display-ready strings.
func Resolve(appName, windowTitle, url string) string {
	if url != "" {
		return appName + Separator + url
	}
	return appName + Separator + windowTitle
}

// Decompose splits an identifier on its first ':'. The detail part is a URL
// iff it starts with "http". An identifier without separator yields the
// whole string as app name and "Unknown" as detail.
func Decompose(key string) (appName, detail string, isURL bool) {
	app, rest, found := strings.Cut(key, Separator)
	if !found {
		return key, "Unknown", false
	}
	return app, rest, strings.HasPrefix(rest, "http")
}
