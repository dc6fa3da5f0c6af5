// Package i18n provides the embedded report label catalogs.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/openkraft/projectinfo/internal/domain"
)

// BaseLocale is the source locale every other catalog falls back to.
const BaseLocale = domain.DefaultLocale

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the messages of every loaded locale. It implements domain.LabelCatalog.
type Bundle struct {
	locales map[string]map[string]string
	names   []string
	matcher language.Matcher
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// MustLoadEmbedded is LoadEmbedded for program start-up.
func MustLoadEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.addFile(p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := b.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := b.buildMatcher(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	if ns := strings.TrimSpace(file.Namespace); ns != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, ns, namespaceFromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", p)
	}

	messages, ok := b.locales[locale]
	if !ok {
		messages = map[string]string{}
		b.locales[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// buildMatcher orders the base locale first so it wins when nothing matches.
func (b *Bundle) buildMatcher() error {
	names := []string{BaseLocale}
	for _, locale := range b.Locales() {
		if locale != BaseLocale {
			names = append(names, locale)
		}
	}
	tags := make([]language.Tag, 0, len(names))
	for _, name := range names {
		tag, err := language.Parse(name)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}
	b.names = names
	b.matcher = language.NewMatcher(tags)
	return nil
}

// Locales returns the available locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// HasLocale reports whether the catalog for locale exists exactly.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Match returns the closest available locale, or BaseLocale.
func (b *Bundle) Match(locale string) string {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return BaseLocale
	}
	_, idx, confidence := b.matcher.Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return b.names[idx]
}

// Labels returns the label set for the closest matching locale. Missing keys fall
// back to the base locale, then to the key itself.
func (b *Bundle) Labels(locale string) domain.Labels {
	return labels{
		primary: b.locales[b.Match(locale)],
		base:    b.locales[BaseLocale],
	}
}

type labels struct {
	primary map[string]string
	base    map[string]string
}

func (l labels) Label(key string) string {
	if v, ok := l.primary[key]; ok {
		return v
	}
	if v, ok := l.base[key]; ok {
		return v
	}
	return key
}
