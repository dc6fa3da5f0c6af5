package modules

import (
	"github.com/openkraft/projectinfo/internal/domain"
	"github.com/openkraft/projectinfo/internal/domain/sitepath"
)

// Label keys requested from the catalog.
const (
	LabelTitle             = "title"
	LabelNoList            = "nolist"
	LabelIntro             = "intro"
	LabelHeaderName        = "header.name"
	LabelHeaderGroupID     = "header.groupId"
	LabelHeaderArtifactID  = "header.artifactId"
	LabelHeaderVersion     = "header.version"
	LabelHeaderPackaging   = "header.packaging"
	LabelHeaderDescription = "header.description"
)

// LabelKeys lists every key the modules report looks up.
var LabelKeys = []string{
	LabelTitle, LabelNoList, LabelIntro,
	LabelHeaderName, LabelHeaderGroupID, LabelHeaderArtifactID,
	LabelHeaderVersion, LabelHeaderPackaging, LabelHeaderDescription,
}

// Header returns the localized table header: name and description, with the four
// coordinate columns in between when coordinates are reported.
func Header(labels domain.Labels, cfg domain.ReportConfig) []string {
	header := []string{labels.Label(LabelHeaderName)}
	if cfg.ReportCoordinates {
		header = append(header,
			labels.Label(LabelHeaderGroupID),
			labels.Label(LabelHeaderArtifactID),
			labels.Label(LabelHeaderVersion),
			labels.Label(LabelHeaderPackaging),
		)
	}
	return append(header, labels.Label(LabelHeaderDescription))
}

// FormatRow returns the cells of one table row for p. baseURL is the parent site URL
// the module link is made relative to; it may be empty.
func FormatRow(p *domain.Project, baseURL string, cfg domain.ReportConfig) []domain.Cell {
	row := []domain.Cell{domain.LinkedCell(p.DisplayName(), ModuleLink(p, baseURL))}

	if cfg.ReportCoordinates {
		if cfg.LinkCoordinates() {
			links := NewIndexLinks(cfg.IndexURL)
			row = append(row,
				coordinateCell(p.GroupID, links.Group(p.GroupID)),
				coordinateCell(p.ArtifactID, links.Artifact(p.GroupID, p.ArtifactID)),
				coordinateCell(p.Version, links.Version(p.GroupID, p.ArtifactID, p.Version)),
				coordinateCell(p.Packaging, links.Packaging(p.GroupID, p.ArtifactID, p.Version, p.Packaging)),
			)
		} else {
			row = append(row,
				domain.TextCell(p.GroupID),
				domain.TextCell(p.ArtifactID),
				domain.TextCell(p.Version),
				domain.TextCell(p.Packaging),
			)
		}
	}

	return append(row, domain.TextCell(p.Description))
}

// ModuleLink returns the link to the site index of p: its site URL, or its artifact id
// as a pseudo-path, made relative to baseURL when one is given.
func ModuleLink(p *domain.Project, baseURL string) string {
	href := p.SiteURL
	if href == "" {
		href = p.ArtifactID
	}
	if baseURL != "" {
		href = sitepath.Relative(href, baseURL)
	}

	href = sitepath.IndexLink(href)
	if sitepath.IsAbsolute(href) {
		return href
	}
	return "./" + href
}

// coordinateCell leaves missing coordinates unlinked.
func coordinateCell(value, link string) domain.Cell {
	if value == "" {
		return domain.TextCell(value)
	}
	return domain.LinkedCell(value, link)
}
