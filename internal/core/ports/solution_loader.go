package ports

import "go.trai.ch/ripple/internal/core/domain"

// SolutionLoader defines the interface for reading and writing the solution file.
//
//go:generate go run go.uber.org/mock/mockgen -source=solution_loader.go -destination=mocks/mock_solution_loader.go -package=mocks
type SolutionLoader interface {
	// Load reads the solution file at path.
	Load(path string) (*domain.Solution, error)

	// Save writes solution to the file at path.
	Save(path string, solution *domain.Solution) error
}
