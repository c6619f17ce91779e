package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raymyers/ydc/pkg/lexer"
	"github.com/raymyers/ydc/pkg/toolchain"
	"github.com/raymyers/ydc/pkg/transpile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var version = "0.1.0"

// Dump flags
var (
	dTokens bool
	dC      bool
)

// Build options
var (
	outputName   string
	compilerName string
	cflags       []string
	verbose      bool
)

// sourceExt is the conventional extension of reversed-C sources
const sourceExt = ".ydc"

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	// Normalize CompCert-style single-dash flags to double-dash for pflag compatibility
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// dumpFlagNames lists the dump flags that also accept single-dash style
var dumpFlagNames = []string{"dtokens", "dc"}

// normalizeFlags converts single-dash dump flags like -dc to --dc
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, flagName := range dumpFlagNames {
			if arg == "-"+flagName {
				result[i] = "--" + flagName
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

// wordSepNormalize lets --c_flags and --c-flags name the same flag
func wordSepNormalize(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ydc [file]",
		Short: "ydc translates reversed-C sources to C and compiles them",
		Long: `ydc reads a source file written in reversed-C, where declarations
read value-first ("5 = x int ;") and calls read arguments-first
("(a , b) add ;"), translates it to C and builds an executable with
the system C compiler.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			filename := args[0]

			// Handle -dtokens: dump the token stream
			if dTokens {
				return doTokens(filename, out, errOut)
			}

			// Handle -dc: translate and dump the C source
			if dC {
				return doEmitC(filename, out, errOut)
			}

			return doBuild(filename, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetGlobalNormalizationFunc(wordSepNormalize)

	// Add dump flags
	rootCmd.Flags().BoolVarP(&dTokens, "dtokens", "", false, "Dump the token stream")
	rootCmd.Flags().BoolVarP(&dC, "dc", "", false, "Dump the translated C source")

	// Add build flags
	rootCmd.Flags().StringVarP(&outputName, "output", "o", "", "Name of the executable to build")
	rootCmd.Flags().StringVar(&compilerName, "cc", "", "C compiler to use (default $"+toolchain.EnvCompiler+", then cc, gcc, clang)")
	rootCmd.Flags().StringArrayVar(&cflags, "c-flags", nil, "Extra argument for the C compiler")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report each phase")

	return rootCmd
}

// logf reports progress when --verbose is set
func logf(w io.Writer, format string, args ...any) {
	if verbose {
		fmt.Fprintf(w, "ydc: "+format+"\n", args...)
	}
}

func readSource(filename string, errOut io.Writer) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(errOut, "ydc: error reading %s: %v\n", filename, err)
		return "", err
	}
	return string(content), nil
}

// translateFile reads and translates a source file, reporting lexical
// warnings and grammar violations on errOut
func translateFile(filename string, errOut io.Writer) (*transpile.Result, error) {
	content, err := readSource(filename, errOut)
	if err != nil {
		return nil, err
	}

	logf(errOut, "tokenizing %s", filename)
	logf(errOut, "translating %s", filename)
	res, err := transpile.Translate(content)
	for _, w := range res.Warnings {
		fmt.Fprintf(errOut, "%s: warning: %s\n", filename, w)
	}
	if err != nil {
		diags := transpile.Diagnostics(err)
		for _, d := range diags {
			fmt.Fprintf(errOut, "%s: %s\n", filename, d)
		}
		return nil, fmt.Errorf("translation failed with %d errors: %w", len(diags), err)
	}
	return res, nil
}

// doTokens writes one line per token, and any lexical anomalies to errOut
func doTokens(filename string, out, errOut io.Writer) error {
	content, err := readSource(filename, errOut)
	if err != nil {
		return err
	}

	logf(errOut, "tokenizing %s", filename)
	tokens, diags := lexer.Tokenize(content)
	for _, tok := range tokens {
		fmt.Fprintf(out, "%-12s %s\n", tok.Type, tok.Literal)
	}
	for _, d := range diags {
		fmt.Fprintf(errOut, "%s: %s\n", filename, d)
	}
	return nil
}

// doEmitC translates the file, writes the .c file and prints it
func doEmitC(filename string, out, errOut io.Writer) error {
	res, err := translateFile(filename, errOut)
	if err != nil {
		return err
	}

	cFile := cOutputFilename(filename)
	if err := toolchain.WriteSource(cFile, res.Output); err != nil {
		fmt.Fprintf(errOut, "ydc: %v\n", err)
		return err
	}

	// Also print to stdout for convenience
	fmt.Fprint(out, res.Output)
	return nil
}

// doBuild translates the file, writes the .c file and compiles it
func doBuild(filename string, errOut io.Writer) error {
	res, err := translateFile(filename, errOut)
	if err != nil {
		return err
	}

	cFile := cOutputFilename(filename)
	if err := toolchain.WriteSource(cFile, res.Output); err != nil {
		fmt.Fprintf(errOut, "ydc: %v\n", err)
		return err
	}

	exe := executableFilename(filename)
	logf(errOut, "compiling %s", cFile)
	err = toolchain.Compile(cFile, exe, &toolchain.Options{
		Compiler:  compilerName,
		ExtraArgs: cflags,
	})
	if err != nil {
		if errors.Is(err, toolchain.ErrNoCompiler) {
			fmt.Fprintf(errOut, "ydc: %v; set --cc or $%s\n", err, toolchain.EnvCompiler)
		} else {
			fmt.Fprintf(errOut, "ydc: compilation failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(errOut, "ydc: compiled %s -> %s\n", filename, exe)
	return nil
}

// cOutputFilename returns the C file written for a source file
// input.ydc -> input.c
func cOutputFilename(filename string) string {
	if strings.HasSuffix(filename, sourceExt) {
		return filename[:len(filename)-len(sourceExt)] + ".c"
	}
	return filename + ".c"
}

// executableFilename returns the executable built for a source file
// input.ydc -> input, unless -o was given
func executableFilename(filename string) string {
	if outputName != "" {
		return outputName
	}
	if strings.HasSuffix(filename, sourceExt) {
		return filename[:len(filename)-len(sourceExt)]
	}
	return filename + ".out"
}
