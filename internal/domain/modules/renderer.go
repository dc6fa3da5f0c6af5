// Package modules renders the project modules report: one table row per declared
// module, resolved from the reactor or from disk.
package modules

import (
	"fmt"

	"github.com/openkraft/projectinfo/internal/domain"
)

// Renderer drives a sink through the modules report of one project.
type Renderer struct {
	sink     domain.Sink
	labels   domain.Labels
	resolver *Resolver
	cfg      domain.ReportConfig
}

func NewRenderer(sink domain.Sink, labels domain.Labels, resolver *Resolver, cfg domain.ReportConfig) *Renderer {
	return &Renderer{
		sink:     sink,
		labels:   labels,
		resolver: resolver,
		cfg:      cfg,
	}
}

// CanGenerate reports whether a report should be produced for project at all.
func CanGenerate(project *domain.Project, cfg domain.ReportConfig) bool {
	return !cfg.SkipEmpty || project.HasModules()
}

// Render emits the report for project. Without modules it is a single paragraph;
// otherwise a table of the modules in declaration order, optionally followed by the
// project itself.
func (r *Renderer) Render(project *domain.Project) error {
	r.sink.StartSection(r.labels.Label(LabelTitle))

	if !project.HasModules() {
		r.sink.Paragraph(r.labels.Label(LabelNoList))
		r.sink.EndSection()
		return nil
	}

	r.sink.Paragraph(r.labels.Label(LabelIntro))
	r.sink.StartTable()
	r.sink.TableHeader(Header(r.labels, r.cfg))

	baseURL := project.SiteURL
	for _, ref := range project.Modules {
		module, err := r.resolver.Resolve(project, ref)
		if err != nil {
			return fmt.Errorf("resolving module %s: %w", ref, err)
		}
		r.addRow(module, baseURL)
	}

	if r.cfg.IncludeParent {
		r.addRow(project, baseURL)
	}

	r.sink.EndTable()
	r.sink.EndSection()
	return nil
}

func (r *Renderer) addRow(p *domain.Project, baseURL string) {
	if p.IsSample() {
		return
	}
	r.sink.TableRow(FormatRow(p, baseURL, r.cfg))
}
