package manifest

// File is the root of a parsed manifest.
type File struct {
	// Version of the manifest format. Only "1" is defined.
	Version string `yaml:"version"`
	// Types lists per-record configuration.
	Types []TypeConfig `yaml:"types"`
}

// TypeConfig configures the generated family of one record type.
type TypeConfig struct {
	// Name of the record struct, e.g. "Particle".
	Name string `yaml:"name"`
	// Annotations maps a variant key to verbatim comment lines placed
	// above the generated type declaration.
	Annotations map[string][]string `yaml:"annotations"`
	// Derives maps a variant key to the method sets to generate for it
	// (String, Equal, Clone).
	Derives map[string][]string `yaml:"derives"`
}

// ForType returns the configuration for a record type, or nil.
func (f *File) ForType(name string) *TypeConfig {
	for i := range f.Types {
		if f.Types[i].Name == name {
			return &f.Types[i]
		}
	}

	return nil
}
