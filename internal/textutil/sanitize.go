package textutil

import "strings"

// fileNameReplacer strips characters that are illegal in filenames on at
// least one supported filesystem.
var fileNameReplacer = strings.NewReplacer(
	"?", "",
	"|", "",
	":", "",
	"*", "",
	"/", "",
	"\\", "",
	"<", "",
	">", "",
	"\"", "",
)

// SanitizeFileName removes filesystem-unsafe characters from a name used as
// a path segment. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}
