package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseIdentity(t *testing.T) {
	tests := []struct {
		input   string
		name    string
		version string
		pre     bool
	}{
		{input: "FubuCore.1.0.0.0", name: "FubuCore", version: "1.0.0.0"},
		{input: "FubuCore.0.9.9.82819", name: "FubuCore", version: "0.9.9.82819"},
		{input: "FubuNew.1.0.0.1-alpha", name: "FubuNew", version: "1.0.0.1-alpha", pre: true},
		{input: "ExtendHealth.Quoting.Imm.Data.2.2.0.275", name: "ExtendHealth.Quoting.Imm.Data", version: "2.2.0.275"},
		{input: "Foo.Bar2.1.0", name: "Foo.Bar2", version: "1.0"},
		{input: "log4net.1.2.10", name: "log4net", version: "1.2.10"},
		{input: "Foo_Bar.3.1.4-rc1", name: "Foo_Bar", version: "3.1.4-rc1", pre: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, err := domain.ParseIdentity(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.name, id.Name)
			assert.Equal(t, tt.version, id.Version.String())
			assert.Equal(t, tt.pre, id.IsPreRelease())
		})
	}
}

func TestParseIdentity_RoundTrip(t *testing.T) {
	names := []string{"Bottles", "Fubu.Mvc.Core", "x"}
	versions := []string{"1.0.0.0", "0.9.9.9", "2.10.3.400-beta", "1.0"}

	for _, name := range names {
		for _, version := range versions {
			id, err := domain.ParseIdentity(name + "." + version)
			require.NoError(t, err, "%s.%s", name, version)

			again, err := domain.ParseIdentity(id.FileStem())
			require.NoError(t, err)
			assert.Equal(t, name, again.Name)
			assert.True(t, again.Version.Equal(domain.MustParseVersion(version)))
			assert.Equal(t, version, again.Version.String())
		}
	}
}

func TestParseIdentity_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"NoVersionHere",
		"Foo.Bar",
		".1.0.0",
		"Foo1.0",
		"Foo.1a.0",
		"Foo.1",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := domain.ParseIdentity(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedIdentity), "got %v", err)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, input, zErr.Metadata()["input"])
		})
	}
}

func TestPackageIdentity_String(t *testing.T) {
	id, err := domain.ParseIdentity("FubuNew.1.0.0.1-alpha")
	require.NoError(t, err)

	assert.Equal(t, "Name: FubuNew, Version: 1.0.0.1-alpha, IsPreRelease: true", id.String())
	assert.Equal(t, "FubuNew.1.0.0.1-alpha", id.FileStem())
}
