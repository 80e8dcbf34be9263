package nuget

import (
	"encoding/xml"
	"strings"

	"go.trai.ch/zerr"
)

// manifest is the subset of a .nuspec document the resolver reads.
type manifest struct {
	Metadata struct {
		ID           string `xml:"id"`
		Version      string `xml:"version"`
		Dependencies struct {
			Direct []manifestDependency `xml:"dependency"`
			Groups []struct {
				TargetFramework string               `xml:"targetFramework,attr"`
				Dependencies    []manifestDependency `xml:"dependency"`
			} `xml:"group"`
		} `xml:"dependencies"`
	} `xml:"metadata"`
}

type manifestDependency struct {
	ID      string `xml:"id,attr"`
	Version string `xml:"version,attr"`
}

// declaredDependency is a dependency as written in a manifest.
type declaredDependency struct {
	Name       string
	MinVersion string
}

func parseManifest(data []byte) ([]declaredDependency, error) {
	var m manifest
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, zerr.Wrap(err, "failed to parse package manifest")
	}

	deps := m.Metadata.Dependencies.Direct
	for _, g := range m.Metadata.Dependencies.Groups {
		deps = append(deps, g.Dependencies...)
	}

	seen := make(map[string]struct{}, len(deps))
	out := make([]declaredDependency, 0, len(deps))
	for _, d := range deps {
		name := strings.TrimSpace(d.ID)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, declaredDependency{Name: name, MinVersion: minBound(d.Version)})
	}
	return out, nil
}

// minBound returns the lower bound of a version range: "1.0", "[1.0,2.0)" and
// "(1.0,)" all give "1.0". A range without a lower bound gives "".
func minBound(spec string) string {
	spec = strings.TrimSpace(spec)
	if spec == "" || (spec[0] != '[' && spec[0] != '(') {
		return spec
	}
	spec = strings.Trim(spec, "[]()")
	lower, _, _ := strings.Cut(spec, ",")
	return strings.TrimSpace(lower)
}
