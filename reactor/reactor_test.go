package reactor

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/versioning/model"
	"github.com/viant/versioning/processor"
	"github.com/viant/versioning/reader"
	"github.com/viant/versioning/versioning"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, location, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
}

const rootPOM = `<project>
  <groupId>org.acme</groupId>
  <artifactId>root</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
  <modules>
    <module>core</module>
    <module>web</module>
    <module>core</module>
  </modules>
</project>`

const corePOM = `<project>
  <parent>
    <groupId>org.acme</groupId>
    <artifactId>root</artifactId>
    <version>1.0</version>
  </parent>
  <artifactId>core</artifactId>
</project>`

const webYAML = `groupId: org.acme
artifactId: web
version: "1.0"
modules:
  - client
`

const clientGoMod = `module github.com/acme/client

go 1.22
`

func newReactor(t *testing.T, parallelism int, definitions ...string) (*Reactor, *versioning.Session) {
	t.Helper()
	rules, err := versioning.NewRules(definitions...)
	require.NoError(t, err)
	session := versioning.NewSession(true, rules)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(processor.New(session, processor.WithLogger(logger)), WithParallelism(parallelism), WithLogger(logger)), session
}

func TestReactor_Run(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pom.xml"), rootPOM)
	writeFile(t, filepath.Join(root, "core", "pom.xml"), corePOM)
	writeFile(t, filepath.Join(root, "web", "module.yaml"), webYAML)
	writeFile(t, filepath.Join(root, "web", "client", "go.mod"), clientGoMod)

	for _, parallelism := range []int{1, 4} {
		reactor, session := newReactor(t, parallelism, "1.0=1.0-rc1")
		models, err := reactor.Run(context.Background(), root)
		require.NoError(t, err)

		var actual []string
		for _, m := range models {
			rel, err := filepath.Rel(root, m.Location)
			require.NoError(t, err)
			actual = append(actual, filepath.ToSlash(rel)+" "+m.String())
		}
		assert.EqualValues(t, []string{
			"core/pom.xml org.acme:core:[inherited]",
			"pom.xml org.acme:root:1.0-rc1",
			"web/client/go.mod github.com/acme:client:[inherited]",
			"web/module.yaml org.acme:web:1.0-rc1",
		}, actual)
		assert.EqualValues(t, []model.Identity{
			{GroupID: "org.acme", ArtifactID: "root"},
			{GroupID: "org.acme", ArtifactID: "web"},
		}, session.ChangedGAVs().Identities())
	}
}

func TestReactor_Run_Errors(t *testing.T) {
	var testCases = []struct {
		description string
		files       map[string]string
		rules       []string
		expectIOErr bool
	}{
		{
			description: "missing root descriptor",
			files:       map[string]string{"README.md": "docs"},
		},
		{
			description: "missing module descriptor",
			files: map[string]string{
				"pom.xml": `<project><groupId>g</groupId><artifactId>a</artifactId><version>1</version><modules><module>absent</module></modules></project>`,
			},
		},
		{
			description: "undefined property",
			files:       map[string]string{"pom.xml": `<project><groupId>g</groupId><artifactId>a</artifactId><version>1</version></project>`},
			rules:       []string{"*=${undefined}"},
			expectIOErr: true,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			root := t.TempDir()
			for name, content := range testCase.files {
				writeFile(t, filepath.Join(root, name), content)
			}
			reactor, _ := newReactor(t, 2, testCase.rules...)
			models, err := reactor.Run(context.Background(), root)
			require.Error(t, err)
			assert.Nil(t, models)
			if testCase.expectIOErr {
				var ioErr *reader.IOError
				assert.ErrorAs(t, err, &ioErr)
				assert.Contains(t, err.Error(), "undefined")
			}
		})
	}
}

func TestParent(t *testing.T) {
	assert.EqualValues(t, "mem://localhost/repo", parent("mem://localhost/repo/pom.xml"))
	assert.EqualValues(t, filepath.Join("repo", "core"), parent(filepath.Join("repo", "core", "pom.xml")))
}
