// Command tagsgen writes the per-tag builder accessors of package styled.
//
//	go run ./internal/tagsgen -out styled.tags.gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"text/template"

	styled "github.com/itsatony/go-styled"
)

const defaultOutput = "styled.tags.gen.go"

var accessorsTemplate = template.Must(template.New("accessors").Parse(`// Code generated by tagsgen; DO NOT EDIT.

package styled
{{range .}}
// {{.Name}} returns a builder for <{{.Tag}}> elements.
func (f *Factory) {{.Name}}() Builder { return f.Tag("{{.Tag}}") }

// {{.Name}} returns a builder for <{{.Tag}}> elements from the default factory.
func {{.Name}}() Builder { return Tag("{{.Tag}}") }
{{end}}`))

type accessor struct {
	Tag  string
	Name string
}

func main() {
	out := flag.String("out", defaultOutput, "output file")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintln(os.Stderr, "tagsgen:", err)
		os.Exit(1)
	}
}

func run(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return generate(f, styled.KnownTags())
}

func generate(w io.Writer, tags []string) error {
	accessors := make([]accessor, len(tags))
	for i, tag := range tags {
		accessors[i] = accessor{Tag: tag, Name: styled.AccessorName(tag)}
	}

	var buf bytes.Buffer
	if err := accessorsTemplate.Execute(&buf, accessors); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}
