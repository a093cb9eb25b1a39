package catalog

import _ "embed"

//go:embed data/jokers.toml
var defaultJokersTOML []byte

//go:embed data/planets.toml
var defaultPlanetsTOML []byte

// Default loads the stock catalogue compiled into the binary.
func Default() (*Catalog, error) {
	return Load(defaultJokersTOML, defaultPlanetsTOML)
}
