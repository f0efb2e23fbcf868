package reader

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"github.com/viant/versioning/model"
	"golang.org/x/net/html/charset"
	"io"
	"strings"
)

const pomRoot = "project"

type pomProject struct {
	XMLName      xml.Name        `xml:"project"`
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Packaging    string          `xml:"packaging"`
	Name         string          `xml:"name"`
	Parent       *pomParent      `xml:"parent"`
	Modules      []string        `xml:"modules>module"`
	Properties   pomProperties   `xml:"properties"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomParent struct {
	GroupID      string `xml:"groupId"`
	ArtifactID   string `xml:"artifactId"`
	Version      string `xml:"version"`
	RelativePath string `xml:"relativePath"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
}

// pomProperties collects arbitrary <properties> children
type pomProperties map[string]string

func (p *pomProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	values := map[string]string{}
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch actual := token.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &actual); err != nil {
				return err
			}
			values[actual.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			*p = values
			return nil
		}
	}
}

// decodePOM decodes POM content; honorEncoding selects whether a declared encoding is applied
func decodePOM(source string, content []byte, options Options, honorEncoding bool) (*model.Model, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	if honorEncoding {
		decoder.CharsetReader = charset.NewReaderLabel
	} else {
		decoder.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
			return input, nil
		}
	}
	if !options.Strict {
		decoder.Strict = false
		decoder.AutoClose = xml.HTMLAutoClose
		decoder.Entity = xml.HTMLEntity
	}
	project := &pomProject{}
	if err := decoder.Decode(project); err != nil {
		return nil, pomParseError(source, err)
	}
	if options.Strict && strings.TrimSpace(project.ArtifactID) == "" {
		return nil, &ParseError{Source: source, Err: errors.New("missing artifactId")}
	}
	return project.model(source), nil
}

func pomParseError(source string, err error) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{Source: source, Line: syntaxErr.Line, Err: errors.New(syntaxErr.Msg)}
	}
	if errors.Is(err, io.EOF) {
		return &ParseError{Source: source, Err: fmt.Errorf("no <%s> element", pomRoot)}
	}
	return &ParseError{Source: source, Err: err}
}

func (p *pomProject) model(source string) *model.Model {
	ret := &model.Model{
		GroupID:    strings.TrimSpace(p.GroupID),
		ArtifactID: strings.TrimSpace(p.ArtifactID),
		Version:    strings.TrimSpace(p.Version),
		Packaging:  strings.TrimSpace(p.Packaging),
		Name:       strings.TrimSpace(p.Name),
		Properties: p.Properties,
		Location:   source,
		Format:     string(FormatPOM),
	}
	if p.Parent != nil {
		ret.Parent = &model.Parent{
			GroupID:      strings.TrimSpace(p.Parent.GroupID),
			ArtifactID:   strings.TrimSpace(p.Parent.ArtifactID),
			Version:      strings.TrimSpace(p.Parent.Version),
			RelativePath: strings.TrimSpace(p.Parent.RelativePath),
		}
	}
	for _, module := range p.Modules {
		if module = strings.TrimSpace(module); module != "" {
			ret.Modules = append(ret.Modules, module)
		}
	}
	for _, dependency := range p.Dependencies {
		ret.Dependencies = append(ret.Dependencies, &model.Dependency{
			GroupID:    strings.TrimSpace(dependency.GroupID),
			ArtifactID: strings.TrimSpace(dependency.ArtifactID),
			Version:    strings.TrimSpace(dependency.Version),
			Scope:      strings.TrimSpace(dependency.Scope),
		})
	}
	return ret
}
