package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Ripplefile represents the structure of the ripple.yaml solution file.
type Ripplefile struct {
	Name         string          `yaml:"name"`
	Packages     string          `yaml:"packages,omitempty"`
	Layout       string          `yaml:"layout,omitempty"`
	Feeds        []FeedDTO       `yaml:"feeds"`
	Dependencies []DependencyDTO `yaml:"dependencies,omitempty"`
	Projects     []ProjectDTO    `yaml:"projects,omitempty"`
}

// FeedDTO represents a feed definition in the solution file.
type FeedDTO struct {
	Path      string `yaml:"path"`
	Mode      string `yaml:"mode,omitempty"`
	Stability string `yaml:"stability,omitempty"`
}

// ProjectDTO represents a project and its dependencies.
type ProjectDTO struct {
	Name         string          `yaml:"name"`
	Dependencies []DependencyDTO `yaml:"dependencies,omitempty"`
}

// DependencyDTO represents a dependency. It may be written as a mapping or as a
// "Name" or "Name,Version" scalar.
type DependencyDTO struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version,omitempty"`
	Mode      string `yaml:"mode,omitempty"`
	Stability string `yaml:"stability,omitempty"`
}

type dependencyFields DependencyDTO

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DependencyDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		name, version, _ := strings.Cut(node.Value, ",")
		*d = DependencyDTO{Name: strings.TrimSpace(name), Version: strings.TrimSpace(version)}
		return nil
	}

	var fields dependencyFields
	if err := node.Decode(&fields); err != nil {
		return err
	}
	*d = DependencyDTO(fields)
	return nil
}

// MarshalYAML implements yaml.Marshaler. Dependencies without a mode or stability
// are written in the scalar form.
func (d DependencyDTO) MarshalYAML() (any, error) {
	if d.Mode != "" || d.Stability != "" {
		return dependencyFields(d), nil
	}
	if d.Version == "" {
		return d.Name, nil
	}
	return d.Name + "," + d.Version, nil
}
