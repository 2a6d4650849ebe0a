// Command soagen generates a struct-of-arrays family for each
// requested record struct: an owning container, read and write views,
// proxies, raw handles and iterators, all kept length-consistent.
//
// It is meant to run under go:generate:
//
//	//go:generate go run soagen/cmd/soagen -types Point,Particle
//
// An optional YAML manifest attaches annotations and derives to the
// generated types.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"soagen/internal/analyze"
	"soagen/internal/gen"
	"soagen/internal/manifest"
	"soagen/internal/schema"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "soagen:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		typesFlag    = flag.String("types", "", "comma-separated record type names (required)")
		pkgFlag      = flag.String("pkg", ".", "package pattern holding the record types")
		manifestFlag = flag.String("manifest", "", "YAML manifest with annotations and derives")
		outputFlag   = flag.String("output", "", "output directory (default: the package directory)")
		suffixFlag   = flag.String("suffix", "_soa", "filename suffix for generated files")
		pkgNameFlag  = flag.String("pkgname", "", "package name override for generated files")
		debugFlag    = flag.Bool("debug", false, "dump the built schemas to stderr before generating")
	)

	flag.Parse()

	if *typesFlag == "" {
		flag.Usage()

		return fmt.Errorf("-types is required")
	}

	typeNames := strings.Split(*typesFlag, ",")
	for i := range typeNames {
		typeNames[i] = strings.TrimSpace(typeNames[i])
	}

	graph, err := analyze.NewAnalyzer().LoadPackages(*pkgFlag)
	if err != nil {
		return err
	}

	pkgPath, err := resolvePkgPath(graph)
	if err != nil {
		return err
	}

	schemas, diags := schema.Build(graph, pkgPath, typeNames)

	if *manifestFlag != "" {
		mf, err := manifest.LoadFile(*manifestFlag)
		if err != nil {
			return err
		}

		diags.Merge(manifest.Apply(schemas, mf))
	}

	for _, w := range diags.Warnings {
		fmt.Fprintln(os.Stderr, "soagen: warning:", w.String())
	}

	if err := diags.Error(); err != nil {
		return err
	}

	if *debugFlag {
		spew.Fdump(os.Stderr, schemas)
	}

	output := *outputFlag
	if output == "" {
		output = schemas[0].Dir
	}

	files, err := gen.NewGenerator(gen.Config{
		PackageName: *pkgNameFlag,
		OutputDir:   output,
		Suffix:      *suffixFlag,
	}).Generate(schemas)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, output); err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println("soagen: wrote", filepath.Join(output, f.Filename))
	}

	return nil
}

// resolvePkgPath expects the pattern to have matched exactly one
// package, so generated families land next to their record types.
func resolvePkgPath(graph *analyze.TypeGraph) (string, error) {
	if len(graph.Packages) == 1 {
		for path := range graph.Packages {
			return path, nil
		}
	}

	var paths []string
	for p := range graph.Packages {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	return "", fmt.Errorf("pattern matched %d packages: %s", len(paths), strings.Join(paths, ", "))
}
