// Command fixjsondemo is a runnable walkthrough of the two parser entry
// points, reconstructing the original library's example1.c scenario as one
// subcommand and a structobject array as a second, mirroring the teacher's
// convention of shipping small runnable examples alongside the library.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solvire/fixjson"
	"github.com/solvire/fixjson/internal/debugdump"
)

// fixtureAttr is the YAML-facing description of one schema attribute, used
// only to drive the walkthrough's printed explanation of what each field
// means; the actual Go fixjson.AttrSchema values below are what the parser
// runs against.
type fixtureAttr struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Note string `yaml:"note"`
}

type fixture struct {
	Attrs []fixtureAttr `yaml:"attrs"`
}

const basicFixtureYAML = `
attrs:
  - name: count
    kind: integer
    note: defaults to -1 if absent
  - name: flag1
    kind: boolean
    note: defaults to false if absent
  - name: flag2
    kind: boolean
    note: defaults to true if absent
`

func main() {
	dump := flag.Bool("dump", false, "render the parsed destination struct as JSON after a successful parse")
	flag.Parse()

	cmd := "basic"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	switch cmd {
	case "basic":
		runBasic(*dump)
	case "structarray":
		runStructArray(*dump)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q (want \"basic\" or \"structarray\")\n", cmd)
		os.Exit(2)
	}
}

// runBasic reconstructs original_source/example1.c: an object with one
// integer and two boolean attributes, each with a default distinct from
// its value in the sample document, so a reader can see which attributes
// were actually present.
func runBasic(dump bool) {
	var f fixture
	if err := yaml.Unmarshal([]byte(basicFixtureYAML), &f); err != nil {
		fmt.Fprintln(os.Stderr, "loading fixture:", err)
		os.Exit(1)
	}
	for _, a := range f.Attrs {
		fmt.Printf("# %s (%s): %s\n", a.Name, a.Kind, a.Note)
	}

	count := []int64{0}
	flag1 := []bool{false}
	flag2 := []bool{false}

	schema := &fixjson.ObjectSchema{
		Attrs: []fixjson.AttrSchema{
			{Name: "count", Kind: fixjson.KindInteger, Int: count, Default: fixjson.Default{Int: -1}},
			{Name: "flag1", Kind: fixjson.KindBoolean, Bool: flag1, Default: fixjson.Default{Bool: false}},
			{Name: "flag2", Kind: fixjson.KindBoolean, Bool: flag2, Default: fixjson.Default{Bool: true}},
		},
	}

	doc := []byte(`{"count":3,"flag1":true}`)
	n, err := fixjson.ParseObject(doc, schema)
	if err != nil {
		pe := err.(*fixjson.ParseError)
		fmt.Fprintf(os.Stderr, "parse failed: %s (attribute %q, offset %d)\n", fixjson.StatusText(pe.Status), pe.Attr, pe.Offset)
		os.Exit(1)
	}

	fmt.Printf("parsed %d bytes: count=%d flag1=%v flag2=%v\n", n, count[0], flag1[0], flag2[0])
	if dump {
		result := struct {
			Count int64 `json:"count"`
			Flag1 bool  `json:"flag1"`
			Flag2 bool  `json:"flag2"`
		}{count[0], flag1[0], flag2[0]}
		if err := debugdump.Dump(os.Stdout, result); err != nil {
			fmt.Fprintln(os.Stderr, "dump:", err)
		}
	}
}

// runStructArray exercises the ArrayStructObject destination mode: an
// array of objects decoded straight into a Go slice of structs, addressed
// by offset rather than through a parallel-array destination per field.
func runStructArray(dump bool) {
	type sample struct {
		ID    int64
		Value float64
	}
	samples := make([]sample, 4)
	base, stride := fixjson.StructSlice(samples)

	elem := &fixjson.ObjectSchema{
		Attrs: []fixjson.AttrSchema{
			{Name: "id", Kind: fixjson.KindInteger, Offset: fixjson.OffsetOf(func(s *sample) *int64 { return &s.ID })},
			{Name: "value", Kind: fixjson.KindReal, Offset: fixjson.OffsetOf(func(s *sample) *float64 { return &s.Value })},
		},
	}

	var count int
	arr := fixjson.NewArraySchema(fixjson.KindStructObject).
		WithMode(fixjson.ArrayStructObject).
		WithElem(elem).
		WithMax(len(samples)).
		WithCount(&count)
	arr.Base = base
	arr.Stride = stride

	doc := []byte(`[{"id":1,"value":2.5},{"id":2,"value":-3.25}]`)
	n, err := fixjson.ParseArray(doc, arr)
	if err != nil {
		pe := err.(*fixjson.ParseError)
		fmt.Fprintf(os.Stderr, "parse failed: %s (offset %d)\n", fixjson.StatusText(pe.Status), pe.Offset)
		os.Exit(1)
	}

	fmt.Printf("parsed %d bytes, %d elements\n", n, count)
	for _, s := range samples[:count] {
		fmt.Printf("  id=%d value=%g\n", s.ID, s.Value)
	}
	if dump {
		if err := debugdump.Dump(os.Stdout, samples[:count]); err != nil {
			fmt.Fprintln(os.Stderr, "dump:", err)
		}
	}
}
