// Package icons resolves the Icon value of a desktop entry to icon files.
//
// Resolution is best effort: a missing icon, a missing environment variable
// or an unreadable directory all result in fewer (or no) candidates, never in
// an error.
//
// See https://specifications.freedesktop.org/icon-theme-spec/icon-theme-spec-latest.html
// Theme inheritance is not implemented, only the configured theme is searched.
package icons
