package utils

import "strings"

var unsafeFileChars = strings.NewReplacer("/", "-", "\\", "-", "\"", "", "\n", "", "\r", "")

// DocumentFilename is the download name of a rendered invoice:
// faktur-<number>.pdf. Path separators and quotes are dropped from the
// number so the name is usable in a Content-Disposition header.
func DocumentFilename(number string) string {
	return "faktur-" + unsafeFileChars.Replace(number) + ".pdf"
}
