package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"soagen/internal/names"
	"soagen/internal/schema"
)

// Config holds configuration for code generation.
type Config struct {
	// PackageName overrides the package of the generated files. Empty
	// means the package of the record type.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Suffix is appended to the snake_cased type name to form the
	// output filename.
	Suffix string
	// Header is the first comment line of every generated file.
	Header string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Suffix: "_soa",
		Header: "// Code generated by soagen. DO NOT EDIT.",
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "particle_soa.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generator renders record schemas into Go source files.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultConfig().Suffix
	}

	if config.Header == "" {
		config.Header = DefaultConfig().Header
	}

	return &Generator{config: config}
}

// sections are executed in order into every generated file.
var sections = []*template.Template{
	template.Must(template.New("header").Parse(headerTemplate)),
	template.Must(template.New("vec").Parse(vecTemplate)),
	template.Must(template.New("ref").Parse(refTemplate)),
	template.Must(template.New("ptr").Parse(ptrTemplate)),
	template.Must(template.New("slice").Parse(sliceTemplate)),
	template.Must(template.New("iter").Parse(iterTemplate)),
	template.Must(template.New("derive").Parse(deriveTemplate)),
	template.Must(template.New("assert").Parse(assertTemplate)),
}

// Generate renders one file per schema.
func (g *Generator) Generate(schemas []*schema.RecordSchema) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, s := range schemas {
		file, err := g.generateSchema(s)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", s.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateSchema(s *schema.RecordSchema) (*GeneratedFile, error) {
	pkgName := g.config.PackageName
	if pkgName == "" {
		pkgName = s.PkgName
	}

	data := buildFileData(s, pkgName, g.config.Header)
	filename := names.FileName(s.Name, g.config.Suffix)

	var buf bytes.Buffer
	for _, section := range sections {
		if err := section.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("rendering section %s: %w", section.Name(), err)
		}
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())

		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}

	return &GeneratedFile{Filename: filename, Content: formatted}, nil
}
