package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"hackasm/pkg/asm"
	"hackasm/pkg/config"
	"hackasm/pkg/term"
	"hackasm/pkg/utils"
)

type runOptions struct {
	out          string
	legacyTables bool
	strict       bool
	dumpSymbols  bool
}

func main() {
	defer glog.Flush()

	cmd := newRootCmd(config.FromEnv())
	if err := cmd.Execute(); err != nil {
		glog.Flush()
		var ue *utils.UsageError
		if errors.As(err, &ue) {
			fmt.Fprintf(os.Stderr, "Usage: %s\n\t-%v\n", cmd.UseLine(), err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := runOptions{
		legacyTables: cfg.LegacyTables,
		strict:       cfg.Strict,
	}

	cmd := &cobra.Command{
		Use:   "hackasm [flags] <file.asm>",
		Short: "Assembler for the Hack computer",
		Long: `Hackasm translates a Hack assembly source file into Hack machine code.

The output is written next to the source with a .hack extension: one
16-character line of 0s and 1s per instruction. Lines holding a // comment
are ignored as a whole, even when they also contain an instruction.

Defaults can be set with HACKASM_LEGACY_TABLES, HACKASM_STRICT,
HACKASM_OUT_EXT and HACKASM_VERBOSITY.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &utils.UsageError{Msg: fmt.Sprintf("expected one %s file, got %d arguments", utils.SourceExt, len(args))}
			}
			return utils.CheckSourcePath(args[0])
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd, cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.out == "" {
				opts.out = utils.OutputPath(args[0], cfg.OutExt)
			}
			return run(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file path (default: input with "+cfg.OutExt+" extension)")
	cmd.Flags().BoolVar(&opts.legacyTables, "legacy-tables", opts.legacyTables, "use the legacy encoding (!A as -A, JGE as JGT)")
	cmd.Flags().BoolVar(&opts.strict, "strict", opts.strict, "fail on addresses that do not fit in 15 bits instead of truncating them")
	cmd.Flags().BoolVar(&opts.dumpSymbols, "dump-symbols", false, "print the final symbol table")
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &utils.UsageError{Msg: err.Error()}
	})

	return cmd
}

// setupLogging sends glog output to stderr unless the command line says
// otherwise, and applies the configured verbosity when -v was not given.
func setupLogging(cmd *cobra.Command, cfg config.Config) error {
	flags := cmd.Flags()
	if !flags.Changed("logtostderr") && !flags.Changed("log_dir") {
		if err := flag.Set("logtostderr", "true"); err != nil {
			return err
		}
	}
	if !flags.Changed("v") && cfg.Verbosity > 0 {
		if err := flag.Set("v", strconv.Itoa(cfg.Verbosity)); err != nil {
			return err
		}
	}
	// glog expects the go flag set to be parsed; pflag has already filled it.
	return flag.CommandLine.Parse(nil)
}

func run(w io.Writer, inPath string, opts runOptions) error {
	start := time.Now()

	fullPath, _, err := utils.GetPathInfo(inPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Assembling %s\n", fullPath)
	glog.V(1).Infof("options: legacy-tables=%t strict=%t out=%s", opts.legacyTables, opts.strict, opts.out)

	prog, err := asm.AssembleFile(inPath, opts.out,
		asm.WithLegacyTables(opts.legacyTables),
		asm.WithStrict(opts.strict),
	)
	if err != nil {
		return err
	}

	if opts.dumpSymbols {
		printer := pp.New()
		printer.SetColoringEnabled(w == io.Writer(os.Stdout) && term.IsTerminal(os.Stdout))
		printer.Fprintln(w, prog.Symbols)
	}

	fmt.Fprintf(w, "assembled %d instructions -> %s\n", len(prog.Instructions), opts.out)
	fmt.Fprintf(w, "Assembly completed in %s\n", time.Since(start).Round(time.Microsecond))
	return nil
}
