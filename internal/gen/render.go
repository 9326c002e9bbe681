package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"
	"unicode"

	"firestige.xyz/hdrkit/pkg/header"
)

// reserved holds the method names a generated type inherits from
// *header.Raw; a field accessor may not shadow them.
var reserved = map[string]bool{
	"Raw": true, "Schema": true, "Name": true, "Len": true, "AsSlice": true,
	"Bits": true, "SetBits": true, "Bytes": true, "SetBytes": true,
	"Get": true, "Set": true, "GetBytes": true, "SetBytesOf": true,
	"Copy": true, "Clone": true, "ToOwned": true,
	"Show": true, "Dump": true, "String": true,
}

type typeData struct {
	Type     string
	Var      string
	Size     int
	Fields   []fieldData
	Defaults []string
}

type fieldData struct {
	Name  string
	Ident string
	Start int
	End   int
	Width int
	Wide  bool
}

// Render returns gofmt-ed Go source declaring one typed header per schema.
// source names the declaration file in the generated-code banner.
func Render(pkg, source string, schemas []*header.Schema) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}

	types := make([]typeData, 0, len(schemas))
	owners := make(map[string]string)
	for _, s := range schemas {
		td, err := newTypeData(s)
		if err != nil {
			return nil, err
		}
		for _, d := range td.decls() {
			if prev, ok := owners[d.ident]; ok {
				return nil, fmt.Errorf("%w: %s is declared for both %s and %s",
					header.ErrInvalidSchema, d.ident, prev, d.owner)
			}
			owners[d.ident] = d.owner
		}
		types = append(types, td)
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package string
		Source  string
		Types   []typeData
	}{pkg, source, types})
	if err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return out, nil
}

func newTypeData(s *header.Schema) (typeData, error) {
	name := s.Name()
	if !token.IsExported(name) {
		return typeData{}, fmt.Errorf("%w: %s: header name must be exported", header.ErrInvalidSchema, name)
	}

	td := typeData{
		Type: name,
		Var:  strings.ToLower(name) + "Schema",
		Size: s.Size(),
	}

	// accessor method name -> field that defines it
	methods := make(map[string]string)
	for _, f := range s.Fields() {
		ident := exportName(f.Name)
		if !token.IsIdentifier(ident) {
			return typeData{}, fmt.Errorf("%w: %s: field %s has no accessor name",
				header.ErrInvalidSchema, name, f.Name)
		}
		for _, m := range []string{ident, "Set" + ident} {
			if reserved[m] {
				return typeData{}, fmt.Errorf("%w: %s: field %s collides with header method %s",
					header.ErrInvalidSchema, name, f.Name, m)
			}
			if prev, ok := methods[m]; ok {
				return typeData{}, fmt.Errorf("%w: %s: fields %s and %s both map to method %s",
					header.ErrInvalidSchema, name, prev, f.Name, m)
			}
			methods[m] = f.Name
		}

		td.Fields = append(td.Fields, fieldData{
			Name:  f.Name,
			Ident: ident,
			Start: f.Start,
			End:   f.End,
			Width: f.Size(),
			Wide:  f.Wide(),
		})
	}

	for _, b := range s.Defaults() {
		td.Defaults = append(td.Defaults, fmt.Sprintf("0x%02x", b))
	}
	return td, nil
}

type decl struct {
	ident string
	owner string
}

// decls lists the package-level identifiers the template emits for td.
func (td typeData) decls() []decl {
	owner := "header " + td.Type
	ds := []decl{
		{td.Type, owner},
		{td.Type + "Size", owner},
		{td.Var, owner},
		{td.Type + "Schema", owner},
		{"New" + td.Type, owner},
		{td.Type + "FromBytes", owner},
	}
	for _, f := range td.Fields {
		fo := owner + " field " + f.Name
		for _, suffix := range []string{"LSB", "MSB", "Size"} {
			ds = append(ds, decl{td.Type + f.Ident + suffix, fo})
		}
	}
	return ds
}

// exportName turns snake_case into CamelCase: frag_startset becomes
// FragStartset.
func exportName(s string) string {
	var sb strings.Builder
	upper := true
	for _, r := range s {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// chunk splits defaults into rows of eight for readability.
func chunk(items []string) [][]string {
	var rows [][]string
	for len(items) > 8 {
		rows = append(rows, items[:8])
		items = items[8:]
	}
	if len(items) > 0 {
		rows = append(rows, items)
	}
	return rows
}

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"chunk": chunk,
	"join":  strings.Join,
	"div":   func(a, b int) int { return a / b },
}).Parse(`// Code generated by hdrkit generate from {{.Source}}; DO NOT EDIT.

package {{.Package}}

import "firestige.xyz/hdrkit/pkg/header"
{{range .Types}}{{$t := .}}
// {{.Type}} is a {{.Size}} byte header.
type {{.Type}} struct {
	*header.Raw
}

const (
	{{.Type}}Size = {{.Size}}
{{range .Fields}}
	{{$t.Type}}{{.Ident}}LSB = {{.Start}}
	{{$t.Type}}{{.Ident}}MSB = {{.End}}
	{{$t.Type}}{{.Ident}}Size = {{.Width}}
{{end}})

var {{.Var}} = header.MustSchema("{{.Type}}", {{.Type}}Size, []header.Field{
{{- range .Fields}}
	{Name: "{{.Name}}", Start: {{$t.Type}}{{.Ident}}LSB, End: {{$t.Type}}{{.Ident}}MSB},
{{- end}}
}, []byte{
{{- range chunk .Defaults}}
	{{join . ", "}},
{{- end}}
})

func init() {
	header.Register({{.Var}}, func() header.Header { return New{{.Type}}() })
}

// {{.Type}}Schema returns the {{.Type}} schema.
func {{.Type}}Schema() *header.Schema {
	return {{.Var}}
}

// New{{.Type}} returns a header holding the {{.Type}} defaults.
func New{{.Type}}() *{{.Type}} {
	return &{{.Type}}{Raw: header.NewRaw({{.Var}})}
}

// {{.Type}}FromBytes copies b into a new {{.Type}} header.
func {{.Type}}FromBytes(b []byte) (*{{.Type}}, error) {
	r, err := header.FromBytes({{.Var}}, b)
	if err != nil {
		return nil, err
	}
	return &{{.Type}}{Raw: r}, nil
}
{{range .Fields}}{{if .Wide}}
// {{.Ident}} returns bits {{.Start}}-{{.End}} as {{div .Width 8}} bytes.
func (h *{{$t.Type}}) {{.Ident}}() []byte {
	return h.Bytes({{$t.Type}}{{.Ident}}MSB, {{$t.Type}}{{.Ident}}LSB)
}

// Set{{.Ident}} writes bits {{.Start}}-{{.End}}; v must hold {{div .Width 8}} bytes.
func (h *{{$t.Type}}) Set{{.Ident}}(v []byte) {
	h.SetBytes({{$t.Type}}{{.Ident}}MSB, {{$t.Type}}{{.Ident}}LSB, v)
}
{{else}}
// {{.Ident}} returns bits {{.Start}}-{{.End}}.
func (h *{{$t.Type}}) {{.Ident}}() uint64 {
	return h.Bits({{$t.Type}}{{.Ident}}MSB, {{$t.Type}}{{.Ident}}LSB)
}

// Set{{.Ident}} writes the low {{.Width}} bits of v to bits {{.Start}}-{{.End}}.
func (h *{{$t.Type}}) Set{{.Ident}}(v uint64) {
	h.SetBits({{$t.Type}}{{.Ident}}MSB, {{$t.Type}}{{.Ident}}LSB, v)
}
{{end}}{{end}}
func (h *{{.Type}}) Clone() header.Header {
	return &{{.Type}}{Raw: h.Copy()}
}

func (h *{{.Type}}) ToOwned() header.Header {
	return h
}
{{end}}`))
