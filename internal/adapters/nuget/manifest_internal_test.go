package nuget

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/core/domain"
)

func TestParseManifest(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<package xmlns="http://schemas.microsoft.com/packaging/2011/08/nuspec.xsd">
  <metadata>
    <id>FubuMVC.Core</id>
    <version>1.0.0.0</version>
    <dependencies>
      <group>
        <dependency id="FubuCore" version="[1.0.0.0,2.0)" />
      </group>
      <group targetFramework="net40">
        <dependency id="Bottles" version="1.0.0.0" />
        <dependency id="fubucore" version="0.9.9.9" />
      </group>
    </dependencies>
  </metadata>
</package>`)

	deps, err := parseManifest(data)
	require.NoError(t, err)
	assert.Equal(t, []declaredDependency{
		{Name: "FubuCore", MinVersion: "1.0.0.0"},
		{Name: "Bottles", MinVersion: "1.0.0.0"},
	}, deps)

	_, err = parseManifest([]byte("<package"))
	assert.Error(t, err)
}

func TestMinBound(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"1.0":           "1.0",
		" 1.2.3.4 ":     "1.2.3.4",
		"[1.0]":         "1.0",
		"[1.0,2.0)":     "1.0",
		"(1.0,)":        "1.0",
		"(,2.0]":        "",
		"[ 1.5 , 2.0 ]": "1.5",
	}
	for in, want := range tests {
		assert.Equal(t, want, minBound(in), in)
	}
}

func TestSafeJoin(t *testing.T) {
	dest := filepath.Join("root", "Bottles")

	target, err := safeJoin(dest, "lib/net40/Bottles.dll")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "lib", "net40", "Bottles.dll"), target)

	for _, name := range []string{"", "/etc/passwd", "../escape.txt", "lib/../../escape.txt", "."} {
		_, err := safeJoin(dest, name)
		assert.True(t, errors.Is(err, domain.ErrUnsafeArchiveEntry), "%q: %v", name, err)
	}
}
