package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"

	"hackasm/pkg/asm"
	"hackasm/pkg/parser"
	"hackasm/pkg/term"
)

const testSource = `// R0 = 2 + 3
@2
D=A
@3
D=D+A
@sum
M=D
(END)
@END
0;JMP
`

var (
	legacyTables = flag.Bool("legacy-tables", false, "use the legacy comp and jump tables")
	strict       = flag.Bool("strict", false, "fail on addresses that do not fit in 15 bits")
	showIgnored  = flag.Bool("show-ignored", false, "include ignorable lines in the classification dump")
)

type dumpOptions struct {
	color       bool
	showIgnored bool
	asmOpts     []asm.Option
}

func main() {
	flag.Parse()
	defer glog.Flush()

	src := testSource
	name := "<builtin>"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
		data, err := os.ReadFile(name)
		if err != nil {
			glog.Fatalf("Failed to read input: %s", err)
		}
		src = string(data)
	}

	opts := dumpOptions{
		color:       term.IsTerminal(os.Stdout),
		showIgnored: *showIgnored,
		asmOpts:     []asm.Option{asm.WithLegacyTables(*legacyTables), asm.WithStrict(*strict)},
	}
	if err := dump(os.Stdout, name, src, opts); err != nil {
		glog.Exitf("assembly failed: %v", err)
	}
}

func dump(w io.Writer, name, src string, opts dumpOptions) error {
	printer := pp.New()
	printer.SetColoringEnabled(opts.color)

	fmt.Fprintf(w, "Source (%s):\n%s\n", name, src)

	// Classify
	fmt.Fprintln(w, "Lines")
	for i, raw := range strings.Split(src, "\n") {
		line := parser.Parse(strings.TrimSuffix(raw, "\r"), i+1)
		if line.Kind == parser.Ignorable && !opts.showIgnored {
			continue
		}
		printer.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	// Assemble
	a := asm.NewAssembler(opts.asmOpts...)
	prog, err := a.Assemble(src)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Symbols")
	fmt.Fprint(w, a.Symbols())
	printer.Fprintln(w, prog.SourceMap)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Listing")
	fmt.Fprint(w, prog.Listing())
	return nil
}
