package reader

import (
	"bytes"
	"errors"
	"github.com/viant/versioning/model"
	"gopkg.in/yaml.v3"
	"io"
	"regexp"
	"strconv"
)

var yamlLineExpr = regexp.MustCompile(`line (\d+)`)

// decodeYAML decodes a module.yaml descriptor sharing the POM shape
func decodeYAML(source string, content []byte, options Options) (*model.Model, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(options.Strict)
	ret := &model.Model{}
	if err := decoder.Decode(ret); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Source: source, Err: errors.New("empty descriptor")}
		}
		return nil, &ParseError{Source: source, Line: yamlLine(err), Err: err}
	}
	if options.Strict && ret.ArtifactID == "" {
		return nil, &ParseError{Source: source, Err: errors.New("missing artifactId")}
	}
	ret.Location = source
	ret.Format = string(FormatYAML)
	return ret, nil
}

func yamlLine(err error) int {
	match := yamlLineExpr.FindStringSubmatch(err.Error())
	if len(match) < 2 {
		return 0
	}
	line, _ := strconv.Atoi(match[1])
	return line
}
