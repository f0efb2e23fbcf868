package reader

import (
	"errors"
	"github.com/viant/versioning/model"
	"golang.org/x/mod/modfile"
	"path"
)

// decodeGoMod maps a go.mod file onto a descriptor: the module path splits into group and artifact.
// Go modules never declare their own version, so such descriptors are never rewritten.
func decodeGoMod(source string, content []byte, options Options) (*model.Model, error) {
	parse := modfile.ParseLax
	if options.Strict {
		parse = modfile.Parse
	}
	file, err := parse(source, content, nil)
	if err != nil {
		return nil, goModParseError(source, err)
	}
	if file.Module == nil {
		return nil, &ParseError{Source: source, Err: errors.New("missing module directive")}
	}
	modulePath := file.Module.Mod.Path
	ret := &model.Model{
		ArtifactID: path.Base(modulePath),
		Packaging:  "go",
		Name:       modulePath,
		Location:   source,
		Format:     string(FormatGoMod),
	}
	if group := path.Dir(modulePath); group != "." {
		ret.GroupID = group
	}
	if file.Go != nil {
		ret.Properties = map[string]string{"go.version": file.Go.Version}
	}
	for _, require := range file.Require {
		ret.Dependencies = append(ret.Dependencies, &model.Dependency{
			GroupID:    path.Dir(require.Mod.Path),
			ArtifactID: path.Base(require.Mod.Path),
			Version:    require.Mod.Version,
		})
	}
	return ret, nil
}

func goModParseError(source string, err error) error {
	var errs modfile.ErrorList
	if errors.As(err, &errs) && len(errs) > 0 {
		return &ParseError{Source: source, Line: errs[0].Pos.Line, Err: errs[0].Err}
	}
	return &ParseError{Source: source, Err: err}
}
