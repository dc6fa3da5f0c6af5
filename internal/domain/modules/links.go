package modules

import (
	"net/url"
	"strings"
)

// IndexLinks builds package index search links for module coordinates. The group,
// artifact and version links narrow the same search query; the packaging link opens
// the artifact details page directly.
type IndexLinks struct {
	base string
}

// NewIndexLinks returns link builders rooted at the index base URL.
func NewIndexLinks(baseURL string) IndexLinks {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return IndexLinks{base: baseURL}
}

// Group links a search for every artifact of groupID.
func (l IndexLinks) Group(groupID string) string {
	return l.base + "#search|ga|1|g%3A%22" + escape(groupID) + "%22"
}

// Artifact narrows the group search to one artifact.
func (l IndexLinks) Artifact(groupID, artifactID string) string {
	return l.Group(groupID) + "%20AND%20a%3A%22" + escape(artifactID) + "%22"
}

// Version narrows the artifact search to one version.
func (l IndexLinks) Version(groupID, artifactID, version string) string {
	return l.Artifact(groupID, artifactID) + "%20AND%20v%3A%22" + escape(version) + "%22"
}

// Packaging links the details page of a fully specified artifact.
func (l IndexLinks) Packaging(groupID, artifactID, version, packaging string) string {
	return l.base + "#artifactdetails|" + escape(groupID) + "|" + escape(artifactID) + "|" +
		escape(version) + "|" + escape(packaging)
}

func escape(v string) string {
	return url.PathEscape(v)
}
