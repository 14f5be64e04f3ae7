// Package dispositionFilename turns a Content-Disposition header into a file name that is safe to create.
package dispositionFilename

import (
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"

	"attachmentCrawler/domain/models"
)

// FromHeader picks the filename suggested by a Content-Disposition header.
// Headers that do not parse fall back to the text after the last '=', and
// headers without any '=' fall back to the last path segment of href.
// The result is always passed through Sanitize.
func FromHeader(header, href string) (string, error) {
	return Sanitize(suggested(header, href))
}

func suggested(header, href string) string {
	if _, params, err := mime.ParseMediaType(header); err == nil {
		if name, ok := params["filename"]; ok {
			return name
		}
	}
	if i := strings.LastIndex(header, "="); i >= 0 {
		return strings.Trim(strings.TrimSpace(header[i+1:]), `"`)
	}
	if u, err := url.Parse(href); err == nil {
		return path.Base(u.Path)
	}
	return ""
}

// Sanitize keeps only the final path segment of name and rejects names that
// would not create a regular file inside the output directory.
func Sanitize(name string) (string, error) {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q", models.ErrUnsafeFilename, name)
	}
	return name, nil
}
