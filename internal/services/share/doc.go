// Package share builds the text a user shares after finding a route and
// hands it to a clipboard, falling back to plain output when the clipboard
// refuses it.
package share
