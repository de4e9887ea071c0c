package ports

// Parameters is a read-only view of the build parameters.
//
//go:generate go run go.uber.org/mock/mockgen -source=parameters.go -destination=mocks/mock_parameters.go -package=mocks
type Parameters interface {
	// Get returns the value configured for name, or fallback when name is unset.
	Get(name, fallback string) string
	// Lookup returns the value configured for name and whether it is set.
	Lookup(name string) (string, bool)
}

// ParameterLoader loads build parameters.
type ParameterLoader interface {
	// Load reads the parameters file at path. An empty path loads only
	// environment overrides.
	Load(path string) (Parameters, error)
}
