package domain

// PackageContext carries everything needed to extract structured results
// for one package invocation: the captured runner output and the sources
// the test names can be resolved against. It is built once by the caller
// and never mutated during extraction.
type PackageContext struct {
	PackagePath string            // slash-separated import path of the package
	Stdout      []string          // interleaved stdout/stderr lines, in emission order
	SourceFiles map[string]string // file path -> full file content
}
