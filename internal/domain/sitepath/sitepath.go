// Package sitepath computes links between pages of a generated documentation site.
package sitepath

import (
	"net/url"
	"path"
	"strings"
)

// IndexPage is the page a module link points at inside the module's site directory.
const IndexPage = "index.html"

// Relative returns to expressed relative to the directory from. Both may be absolute
// URLs or plain paths. Locations on another scheme or host, or a mix of an absolute URL
// and a plain path, cannot be related and to is returned unchanged. Identical
// locations yield "".
func Relative(to, from string) string {
	toURL, err := url.Parse(to)
	if err != nil {
		return to
	}
	fromURL, err := url.Parse(from)
	if err != nil {
		return to
	}

	if toURL.IsAbs() != fromURL.IsAbs() {
		return to
	}
	if toURL.IsAbs() && (!strings.EqualFold(toURL.Scheme, fromURL.Scheme) || !strings.EqualFold(toURL.Host, fromURL.Host)) {
		return to
	}
	return relativePath(toURL.Path, fromURL.Path)
}

// IndexLink appends the index page to href, inserting a separator unless href is
// empty or already ends in one.
func IndexLink(href string) string {
	if href == "" || strings.HasSuffix(href, "/") {
		return href + IndexPage
	}
	return href + "/" + IndexPage
}

// IsAbsolute reports whether href carries a URL scheme.
func IsAbsolute(href string) bool {
	u, err := url.Parse(href)
	return err == nil && u.IsAbs()
}

func relativePath(to, from string) string {
	toSegs := segments(to)
	fromSegs := segments(from)

	common := 0
	for common < len(toSegs) && common < len(fromSegs) && toSegs[common] == fromSegs[common] {
		common++
	}

	parts := make([]string, 0, len(fromSegs)-common+len(toSegs)-common)
	for range fromSegs[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, toSegs[common:]...)

	rel := strings.Join(parts, "/")
	if rel != "" && strings.HasSuffix(to, "/") {
		rel += "/"
	}
	return rel
}

func segments(p string) []string {
	cleaned := strings.Trim(path.Clean("/"+p), "/")
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, "/")
}
