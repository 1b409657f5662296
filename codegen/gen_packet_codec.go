//go:build ignore
// +build ignore

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"text/template"
)

// Field represents a single field in a packet struct
type Field struct {
	Name      string // The Struct field name (e.g., "RoomID")
	FieldType string // The wire type (e.g., "UnsignedInt", "PrefixedArray", "Optional")
	GoType    string // Go type expression, needed to instantiate ReadStruct
	WriteFn   string
	ReadFn    string
}

// GeneratedStruct represents a struct found in the source code marked for generation
type GeneratedStruct struct {
	Name              string
	Fields            []Field
	GenRead, GenWrite bool

	RegServerbound, RegClientbound bool
	Encrypted, Unreliable          bool
	Category                       string
	PacketID                       string
}

// IsPacket reports whether the struct has a hand-written ID method.
func (s GeneratedStruct) IsPacket() bool {
	return s.PacketID != ""
}

type File struct {
	Name    string
	Structs []GeneratedStruct
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run gen_packet_codec.go -- path/to/dir")
		os.Exit(1)
	}

	targetDir := os.Args[len(os.Args)-1] // Take the last argument as the directory
	fset := token.NewFileSet()
	var parsedFiles []File
	var pkgName string

	filePaths, _ := filepath.Glob(filepath.Join(targetDir, "*.go"))

	for _, filePath := range filePaths {
		// Skip generated files and tests to avoid double parsing
		base := filepath.Base(filePath)
		if strings.HasPrefix(base, "zz_generated") || strings.HasSuffix(base, "_test.go") {
			continue
		}

		node, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
		if err != nil {
			panic(err)
		}

		if pkgName == "" {
			pkgName = node.Name.Name
		}

		var fileStructs []GeneratedStruct

		// Pre-scan for ID() methods to map StructName -> ID
		structIDs := make(map[string]string)
		for _, decl := range node.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			// Look for func (Receiver) ID() ID { return X }
			if !ok || fn.Name.Name != "ID" || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}

			var recvName string
			recvType := fn.Recv.List[0].Type
			if star, ok := recvType.(*ast.StarExpr); ok {
				if ident, ok := star.X.(*ast.Ident); ok {
					recvName = ident.Name
				}
			} else if ident, ok := recvType.(*ast.Ident); ok {
				recvName = ident.Name
			}

			if recvName == "" {
				continue
			}

			if fn.Body != nil {
				for _, stmt := range fn.Body.List {
					if ret, ok := stmt.(*ast.ReturnStmt); ok && len(ret.Results) > 0 {
						if lit, ok := ret.Results[0].(*ast.BasicLit); ok {
							structIDs[recvName] = lit.Value
						}
					}
				}
			}
		}

		for _, decl := range node.Decls {
			gen, ok := decl.(*ast.GenDecl)

			// filter for only type declarations with comments
			if !ok || gen.Tok != token.TYPE || gen.Doc == nil {
				continue
			}

			var isGen bool
			var s GeneratedStruct

			// Options look like @gen:r,w,regclient,encrypted,cat=RoomJoin
			for _, comment := range gen.Doc.List {
				text := comment.Text
				if !strings.Contains(text, "@gen:") {
					continue
				}
				isGen = true
				parts := strings.Split(text, "@gen:")
				for _, opt := range strings.Split(strings.TrimSpace(parts[1]), ",") {
					opt = strings.TrimSpace(opt)
					switch {
					case opt == "r":
						s.GenRead = true
					case opt == "w":
						s.GenWrite = true
					case opt == "regserver":
						s.RegServerbound = true
					case opt == "regclient":
						s.RegClientbound = true
					case opt == "encrypted":
						s.Encrypted = true
					case opt == "unreliable":
						s.Unreliable = true
					case strings.HasPrefix(opt, "cat="):
						s.Category = strings.TrimPrefix(opt, "cat=")
					}
				}
				break
			}

			if !isGen {
				continue
			}

			for _, spec := range gen.Specs {
				tspec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				structType, ok := tspec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				var fields []Field
				for _, field := range structType.Fields.List {
					for _, name := range field.Names {
						rawTag := ""
						if field.Tag != nil {
							rawTag = field.Tag.Value
							if len(rawTag) > 1 && rawTag[0] == '`' && rawTag[len(rawTag)-1] == '`' {
								rawTag = rawTag[1 : len(rawTag)-1]
							}
						}

						parsedTag := reflect.StructTag(rawTag)
						fieldType := parsedTag.Get("field")
						if fieldType == "" {
							continue // Skip fields without the "field" tag
						}

						writeFn := parsedTag.Get("write")
						readFn := parsedTag.Get("read")

						innerType := parsedTag.Get("inner")
						if innerType == "Struct" {
							elem := types.ExprString(elemType(field.Type))
							writeFn = "WriteStruct[" + elem + "]"
							readFn = "ReadStruct[" + elem + "]"
						} else if len(innerType) > 0 {
							writeFn = "Write" + innerType
							readFn = "Read" + innerType
						}

						fields = append(fields, Field{
							Name:      name.Name,
							FieldType: fieldType,
							GoType:    types.ExprString(field.Type),
							WriteFn:   writeFn,
							ReadFn:    readFn,
						})
					}
				}

				gs := s
				gs.Name = tspec.Name.Name
				gs.Fields = fields
				gs.PacketID = structIDs[tspec.Name.Name]
				if gs.Category == "" {
					gs.Category = "None"
				}
				fileStructs = append(fileStructs, gs)
			}
		}
		if len(fileStructs) > 0 {
			parsedFiles = append(parsedFiles, File{
				Name:    filepath.Base(filePath),
				Structs: fileStructs,
			})
		}
	}

	const tmpl = `// Code generated by gen_packet_codec.go; DO NOT EDIT.

package {{.PkgName}}

import (
	"io"
)

// ServerboundRegistry holds every packet a server decodes.
var ServerboundRegistry = Registry{
{{- range .Files}}
{{- range .Structs}}
{{- if .RegServerbound}}
	{{.PacketID}}: func() Packet { return &{{.Name}}{} },
{{- end}}
{{- end}}
{{- end}}
}

// ClientboundRegistry holds every packet a client decodes.
var ClientboundRegistry = Registry{
{{- range .Files}}
{{- range .Structs}}
{{- if .RegClientbound}}
	{{.PacketID}}: func() Packet { return &{{.Name}}{} },
{{- end}}
{{- end}}
{{- end}}
}
{{range .Files}}
// Source: {{.Name}}
{{range .Structs}}
{{- if .IsPacket}}
func (p {{.Name}}) Flags() Flags {
	return Flags{Encrypted: {{.Encrypted}}, Unreliable: {{.Unreliable}}}
}

func (p {{.Name}}) Category() Category {
	return Category{{.Category}}
}
{{end}}
{{- if .GenWrite}}
func (p {{.Name}}) Encode(w io.Writer) (err error) {
{{- range .Fields}}
	{{- if .WriteFn}}
	if err = Write{{.FieldType}}(w, p.{{.Name}}, {{.WriteFn}}); err != nil {
		return
	}
	{{- else}}
	if err = Write{{.FieldType}}(w, p.{{.Name}}); err != nil {
		return
	}
	{{- end}}
{{- end}}
	return
}
{{end}}
{{- if .GenRead}}
func (p *{{.Name}}) Decode(r *Reader) (err error) {
{{- range .Fields}}
	{{- if .ReadFn}}
	if p.{{.Name}}, err = Read{{.FieldType}}(r, {{.ReadFn}}); err != nil {
		return
	}
	{{- else if eq .FieldType "Struct"}}
	if p.{{.Name}}, err = ReadStruct[{{.GoType}}](r); err != nil {
		return
	}
	{{- else}}
	if p.{{.Name}}, err = Read{{.FieldType}}(r); err != nil {
		return
	}
	{{- end}}
{{- end}}
	return
}
{{end}}
{{- end}}
{{- end}}`

	t := template.Must(template.New("code").Parse(tmpl))
	data := struct {
		PkgName string
		Files   []File
	}{
		PkgName: pkgName,
		Files:   parsedFiles,
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		panic(fmt.Errorf("formatting generated code: %w\n%s", err, buf.Bytes()))
	}

	// Output next to the source files
	outFile := filepath.Join(targetDir, "zz_generated_codec.go")
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		panic(err)
	}

	fmt.Printf("Generated %s for package %s\n", outFile, pkgName)
}

// elemType unwraps []T and Optional[T] to T.
func elemType(e ast.Expr) ast.Expr {
	switch t := e.(type) {
	case *ast.ArrayType:
		return t.Elt
	case *ast.IndexExpr:
		return t.Index
	}
	return e
}
