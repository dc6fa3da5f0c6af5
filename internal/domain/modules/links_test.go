package modules_test

import (
	"testing"

	"github.com/openkraft/projectinfo/internal/domain/modules"
	"github.com/stretchr/testify/assert"
)

func TestIndexLinks_ExactURLs(t *testing.T) {
	links := modules.NewIndexLinks("http://search.maven.org/")

	group := links.Group("org.example")
	artifact := links.Artifact("org.example", "core")
	version := links.Version("org.example", "core", "1.0")
	packaging := links.Packaging("org.example", "core", "1.0", "jar")

	assert.Equal(t, "http://search.maven.org/#search|ga|1|g%3A%22org.example%22", group)
	assert.Equal(t, "http://search.maven.org/#search|ga|1|g%3A%22org.example%22%20AND%20a%3A%22core%22", artifact)
	assert.Equal(t, "http://search.maven.org/#search|ga|1|g%3A%22org.example%22%20AND%20a%3A%22core%22%20AND%20v%3A%221.0%22", version)
	assert.Equal(t, "http://search.maven.org/#artifactdetails|org.example|core|1.0|jar", packaging)
}

func TestIndexLinks_PrefixChained(t *testing.T) {
	links := modules.NewIndexLinks("http://search.maven.org/")

	group := links.Group("g")
	artifact := links.Artifact("g", "a")
	version := links.Version("g", "a", "v")

	assert.Equal(t, group+"%20AND%20a%3A%22a%22", artifact)
	assert.Equal(t, artifact+"%20AND%20v%3A%22v%22", version)
	assert.NotContains(t, links.Packaging("g", "a", "v", "p"), "#search", "packaging link is built independently")
}

func TestIndexLinks_BaseWithoutTrailingSlash(t *testing.T) {
	links := modules.NewIndexLinks("https://search.example.org")
	assert.Equal(t, "https://search.example.org/#search|ga|1|g%3A%22g%22", links.Group("g"))
}

func TestIndexLinks_EscapesValues(t *testing.T) {
	links := modules.NewIndexLinks("http://search.maven.org/")
	assert.Equal(t, "http://search.maven.org/#search|ga|1|g%3A%22org.example%22%20AND%20a%3A%22core%22%20AND%20v%3A%221.0%20beta%22",
		links.Version("org.example", "core", "1.0 beta"))
	assert.Equal(t, "http://search.maven.org/#artifactdetails|a%2Fb|core|1.0|jar", links.Packaging("a/b", "core", "1.0", "jar"))
}
