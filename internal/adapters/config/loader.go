// Package config provides the solution file loader for ripple.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const filePerm = 0o644

var _ ports.SolutionLoader = (*Loader)(nil)

// Loader implements ports.SolutionLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the solution file at path. When path is a directory, the nearest
// ripple.yaml in it or one of its parents is used.
func (l *Loader) Load(path string) (*domain.Solution, error) {
	configPath, err := findConfiguration(path)
	if err != nil {
		return nil, err
	}
	if abs, err := filepath.Abs(configPath); err == nil {
		configPath = abs
	}

	var file Ripplefile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	solution, err := buildSolution(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if len(solution.Feeds) == 0 {
		l.Logger.Warn(fmt.Sprintf("%s declares no feeds, nothing can be resolved", configPath))
	}

	return solution, nil
}

// Save writes solution to path. Paths under the solution directory are stored relative to it.
func (l *Loader) Save(path string, solution *domain.Solution) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, domain.SolutionFileName)
	}

	file := toRipplefile(filepath.Dir(path), solution)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode solution file"), "path", path)
	}
	if err := enc.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode solution file"), "path", path)
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil { //nolint:gosec // Solution files are not secret
		return zerr.With(zerr.Wrap(err, "failed to write solution file"), "path", path)
	}
	return nil
}

func findConfiguration(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no such file or directory"), "path", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	currentDir := path
	for {
		candidate := filepath.Join(currentDir, domain.SolutionFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no solution file in directory or parents"), "cwd", path)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

func buildSolution(configPath string, file *Ripplefile) (*domain.Solution, error) {
	configDir := filepath.Dir(configPath)

	name := file.Name
	if name == "" {
		name = filepath.Base(configDir)
	}

	solution := domain.NewSolution(name)
	solution.File = configPath
	solution.Directory = configDir
	if file.Packages != "" {
		solution.PackagesDirectory = file.Packages
	}

	layout, err := domain.ParseLayoutMode(file.Layout)
	if err != nil {
		return nil, invalid(err)
	}
	solution.Layout = layout

	for _, dto := range file.Feeds {
		feed, err := toFeedSource(configDir, dto)
		if err != nil {
			return nil, err
		}
		solution.Feeds = append(solution.Feeds, feed)
	}

	deps, err := toDependencySet(file.Dependencies)
	if err != nil {
		return nil, err
	}
	solution.Dependencies = deps

	seen := make(map[string]string, len(file.Projects))
	for _, dto := range file.Projects {
		if dto.Name == "" {
			return nil, zerr.Wrap(domain.ErrInvalidSolution, "project without a name")
		}
		key := strings.ToLower(dto.Name)
		if first, ok := seen[key]; ok {
			err := zerr.Wrap(domain.ErrInvalidSolution, "duplicate project")
			err = zerr.With(err, "first_occurrence", first)
			return nil, zerr.With(err, "duplicate", dto.Name)
		}
		seen[key] = dto.Name

		projectDeps, err := toDependencySet(dto.Dependencies)
		if err != nil {
			return nil, zerr.With(err, "project", dto.Name)
		}
		solution.AddProject(&domain.Project{Name: dto.Name, Dependencies: projectDeps})
	}

	return solution, nil
}

func toFeedSource(configDir string, dto FeedDTO) (domain.FeedSource, error) {
	if dto.Path == "" {
		return domain.FeedSource{}, zerr.Wrap(domain.ErrInvalidSolution, "feed without a path")
	}

	kind := domain.FeedFixed
	switch strings.ToLower(dto.Mode) {
	case "", "fixed":
	case "float", "floating":
		kind = domain.FeedFloating
	default:
		return domain.FeedSource{}, zerr.With(zerr.Wrap(domain.ErrInvalidSolution, "unknown feed mode"), "mode", dto.Mode)
	}

	stability, err := domain.ParseStability(dto.Stability)
	if err != nil {
		return domain.FeedSource{}, invalid(err)
	}
	if stability == domain.StabilityUnspecified {
		stability = domain.StabilityReleasedOnly
	}

	return domain.FeedSource{
		Path:      resolvePath(configDir, dto.Path),
		Kind:      kind,
		Stability: stability,
	}, nil
}

func toDependencySet(dtos []DependencyDTO) (*domain.DependencySet, error) {
	set := domain.NewDependencySet()
	for _, dto := range dtos {
		dep, err := toDependency(dto)
		if err != nil {
			return nil, err
		}
		if set.Has(dep.Name) {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSolution, "duplicate dependency"), "dependency", dep.Name)
		}
		set.Put(dep)
	}
	return set, nil
}

// toDependency converts dto. Without an explicit mode, a versioned dependency is
// fixed and an unversioned one floats.
func toDependency(dto DependencyDTO) (domain.Dependency, error) {
	if dto.Name == "" {
		return domain.Dependency{}, zerr.Wrap(domain.ErrInvalidSolution, "dependency without a name")
	}

	dep := domain.NewDependency(dto.Name, dto.Version)
	if dto.Mode == "" && dto.Version == "" {
		dep.Mode = domain.ModeFloat
	} else {
		mode, err := domain.ParseUpdateMode(dto.Mode)
		if err != nil {
			return domain.Dependency{}, invalid(zerr.With(err, "dependency", dto.Name))
		}
		dep.Mode = mode
	}

	stability, err := domain.ParseStability(dto.Stability)
	if err != nil {
		return domain.Dependency{}, invalid(zerr.With(err, "dependency", dto.Name))
	}
	dep.Stability = stability

	if dep.HasVersion() {
		if _, err := dep.SemanticVersion(); err != nil {
			return domain.Dependency{}, invalid(err)
		}
	}
	return dep, nil
}

func invalid(err error) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidSolution, "invalid solution file"), "cause", err.Error())
}

func resolvePath(configDir, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(configDir, configured))
}

func relativePath(configDir, path string) string {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(configDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}

func toRipplefile(configDir string, solution *domain.Solution) Ripplefile {
	file := Ripplefile{
		Name:     solution.Name,
		Packages: solution.PackagesDirectory,
		Layout:   solution.Layout.String(),
	}

	for _, feed := range solution.Feeds {
		dto := FeedDTO{Path: relativePath(configDir, feed.Path), Stability: feed.Stability.String()}
		if feed.Kind == domain.FeedFloating {
			dto.Mode = feed.Kind.String()
		}
		file.Feeds = append(file.Feeds, dto)
	}

	file.Dependencies = fromDependencySet(solution.Dependencies)
	for _, project := range solution.Projects {
		file.Projects = append(file.Projects, ProjectDTO{
			Name:         project.Name,
			Dependencies: fromDependencySet(project.Dependencies),
		})
	}
	return file
}

func fromDependencySet(set *domain.DependencySet) []DependencyDTO {
	var out []DependencyDTO
	for _, dep := range set.All() {
		dto := DependencyDTO{Name: dep.Name, Version: dep.Version, Stability: dep.Stability.String()}
		// Only write the mode when it differs from what the version implies.
		if dep.IsFloat() == dep.HasVersion() {
			dto.Mode = dep.Mode.String()
		}
		out = append(out, dto)
	}
	return out
}
