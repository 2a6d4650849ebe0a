package gen

// headerTemplate renders the file preamble. Standard library imports
// come first, then the runtime package and any packages referenced by
// field types.
const headerTemplate = `{{.Header}}

package {{.PackageName}}

import (
{{- range .StdImports}}
	"{{.}}"
{{- end}}
{{- range .Imports}}
{{- if .Alias}}
	{{.Alias}} "{{.Path}}"
{{- else}}
	"{{.Path}}"
{{- end}}
{{- end}}
)
`
