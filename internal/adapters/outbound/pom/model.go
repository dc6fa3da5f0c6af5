package pom

import (
	"encoding/xml"
	"strings"
)

// model mirrors the subset of a pom.xml the modules report reads.
type model struct {
	XMLName xml.Name

	Parent      *parentRef `xml:"parent"`
	GroupID     string     `xml:"groupId"`
	ArtifactID  string     `xml:"artifactId"`
	Version     string     `xml:"version"`
	Packaging   string     `xml:"packaging"`
	Name        string     `xml:"name"`
	Description string     `xml:"description"`

	Properties properties `xml:"properties"`
	Modules    []string   `xml:"modules>module"`

	DistributionManagement struct {
		Site struct {
			URL string `xml:"url"`
		} `xml:"site"`
	} `xml:"distributionManagement"`
}

type parentRef struct {
	GroupID      string `xml:"groupId"`
	ArtifactID   string `xml:"artifactId"`
	Version      string `xml:"version"`
	RelativePath string `xml:"relativePath"`
}

// properties decodes <properties> children into a name/value map.
type properties map[string]string

func (p *properties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	out := properties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			out[t.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			*p = out
			return nil
		}
	}
}

func (m *model) trim() {
	m.GroupID = strings.TrimSpace(m.GroupID)
	m.ArtifactID = strings.TrimSpace(m.ArtifactID)
	m.Version = strings.TrimSpace(m.Version)
	m.Packaging = strings.TrimSpace(m.Packaging)
	m.Name = strings.TrimSpace(m.Name)
	m.Description = strings.TrimSpace(m.Description)
	m.DistributionManagement.Site.URL = strings.TrimSpace(m.DistributionManagement.Site.URL)
	for i, mod := range m.Modules {
		m.Modules[i] = strings.TrimSpace(mod)
	}
	if m.Parent != nil {
		m.Parent.GroupID = strings.TrimSpace(m.Parent.GroupID)
		m.Parent.ArtifactID = strings.TrimSpace(m.Parent.ArtifactID)
		m.Parent.Version = strings.TrimSpace(m.Parent.Version)
		m.Parent.RelativePath = strings.TrimSpace(m.Parent.RelativePath)
	}
}
