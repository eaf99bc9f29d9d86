package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/podtools"
	"github.com/erraggy/podtools/converter"
	"github.com/erraggy/podtools/differ"
	"github.com/erraggy/podtools/fixer"
	"github.com/erraggy/podtools/internal/cliutil"
	"github.com/erraggy/podtools/internal/mcpserver"
	"github.com/erraggy/podtools/internal/naming"
	"github.com/erraggy/podtools/walker"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("podtools v%s\n", podtools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "build":
		if err := handleBuild(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "outline":
		if err := handleOutline(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "dump":
		if err := handleDump(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "diff":
		if err := handleDiff(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// listModeFlag validates a -list-mode flag value. Empty keeps the default.
func listModeFlag(value string) (fixer.ListMode, error) {
	if value == "" {
		return "", nil
	}
	mode := fixer.ListMode(value)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid list mode %q (valid: %s, %s)", value, fixer.ListModePerItem, fixer.ListModeMerged)
	}
	return mode, nil
}

// convertFile runs the conversion pipeline on a dump file.
func convertFile(path string, mode fixer.ListMode, normalize bool) (*converter.Result, error) {
	opts := []converter.Option{
		converter.WithFilePath(path),
		converter.WithNormalize(normalize),
	}
	if mode != "" {
		opts = append(opts, converter.WithListMode(mode))
	}
	return converter.ConvertWithOptions(opts...)
}

// buildFlags contains flags for the build command
type buildFlags struct {
	listMode    string
	noNormalize bool
}

func setupBuildFlags() (*flag.FlagSet, *buildFlags) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	flags := &buildFlags{}

	fs.StringVar(&flags.listMode, "list-mode", "", "list normalization mode: per-item or merged")
	fs.BoolVar(&flags.noNormalize, "no-normalize", false, "skip the list normalization pass")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: podtools build [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Convert a parser dump into a normalized documentation tree.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  podtools build doc.pod.json\n")
		_, _ = fmt.Fprintf(output, "  podtools build --list-mode merged doc.pod.yaml\n")
	}

	return fs, flags
}

func handleBuild(args []string) error {
	fs, flags := setupBuildFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("build command requires exactly one file path")
	}

	mode, err := listModeFlag(flags.listMode)
	if err != nil {
		return err
	}

	result, err := convertFile(fs.Arg(0), mode, !flags.noNormalize)
	if err != nil {
		return fmt.Errorf("building tree: %w", err)
	}

	out := os.Stdout
	cliutil.Writef(out, "Documentation Tree Builder\n")
	cliutil.Writef(out, "==========================\n\n")
	cliutil.Writef(out, "podtools version: %s\n", podtools.Version())
	cliutil.Writef(out, "Source: %s (%s)\n", result.SourcePath, result.SourceFormat)
	cliutil.Writef(out, "Nodes: %d\n", result.Stats.NodeCount)
	cliutil.Writef(out, "Max Depth: %d\n", result.Stats.MaxDepth)
	cliutil.Writef(out, "List Mode: %s\n", result.ListMode)
	cliutil.Writef(out, "Build Time: %v\n\n", result.BuildTime)

	if len(result.Fixes) > 0 {
		cliutil.Writef(out, "Fixes (%d):\n", len(result.Fixes))
		for _, fix := range result.Fixes {
			cliutil.Writef(out, "  [%s] %s: %s\n", fix.Type, fix.Path, fix.Description)
		}
		cliutil.Writef(out, "\n")
	}

	if len(result.Issues) > 0 {
		cliutil.Writef(out, "Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			cliutil.Writef(out, "  %s\n", issue.String())
		}
		cliutil.Writef(out, "\n")
	}

	cliutil.Writef(out, "Build completed successfully!\n")
	return nil
}

// outlineFlags contains flags for the outline command
type outlineFlags struct {
	listMode string
	raw      bool
}

func setupOutlineFlags() (*flag.FlagSet, *outlineFlags) {
	fs := flag.NewFlagSet("outline", flag.ContinueOnError)
	flags := &outlineFlags{}

	fs.StringVar(&flags.listMode, "list-mode", "", "list normalization mode: per-item or merged")
	fs.BoolVar(&flags.raw, "raw", false, "keep section names verbatim instead of title-casing")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: podtools outline [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Print the heading outline of a document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  podtools outline doc.pod.json\n")
		_, _ = fmt.Fprintf(output, "  podtools outline --raw doc.pod.yaml\n")
	}

	return fs, flags
}

func handleOutline(args []string) error {
	fs, flags := setupOutlineFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("outline command requires exactly one file path")
	}

	mode, err := listModeFlag(flags.listMode)
	if err != nil {
		return err
	}

	result, err := convertFile(fs.Arg(0), mode, true)
	if err != nil {
		return fmt.Errorf("building tree: %w", err)
	}

	entries, err := walker.Outline(result.Tree)
	if err != nil {
		return fmt.Errorf("building outline: %w", err)
	}
	if !flags.raw {
		retitleOutline(entries)
	}

	cliutil.Writef(os.Stdout, "%s", walker.FormatOutline(entries))
	return nil
}

// retitleOutline rewrites semantic all-caps entry titles in display form.
func retitleOutline(entries []*walker.OutlineEntry) {
	for _, e := range entries {
		e.Heading.Text = naming.DisplayTitle(e.Heading.Text)
		retitleOutline(e.Children)
	}
}

// dumpFlags contains flags for the dump command
type dumpFlags struct {
	listMode string
	colored  bool
}

func setupDumpFlags() (*flag.FlagSet, *dumpFlags) {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	flags := &dumpFlags{}

	fs.StringVar(&flags.listMode, "list-mode", "", "list normalization mode: per-item or merged")
	fs.BoolVar(&flags.colored, "color", false, "colorize output by node kind")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: podtools dump [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Print the stable tree dump of a document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  podtools dump doc.pod.json\n")
		_, _ = fmt.Fprintf(output, "  podtools dump --color doc.pod.yaml\n")
	}

	return fs, flags
}

func handleDump(args []string) error {
	fs, flags := setupDumpFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("dump command requires exactly one file path")
	}

	mode, err := listModeFlag(flags.listMode)
	if err != nil {
		return err
	}

	result, err := convertFile(fs.Arg(0), mode, true)
	if err != nil {
		return fmt.Errorf("building tree: %w", err)
	}

	if flags.colored {
		return writeColorDump(os.Stdout, result.Tree)
	}
	return result.Tree.Dump(os.Stdout)
}

// diffFlags contains flags for the diff command
type diffFlags struct {
	listMode string
	patch    bool
}

func setupDiffFlags() (*flag.FlagSet, *diffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	flags := &diffFlags{}

	fs.StringVar(&flags.listMode, "list-mode", "", "list normalization mode applied to both sides")
	fs.BoolVar(&flags.patch, "patch", false, "print a text patch instead of a change list")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: podtools diff [flags] <source> <target>\n\n")
		_, _ = fmt.Fprintf(output, "Compare two documents and report tree-level changes.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  podtools diff doc-v1.json doc-v2.json\n")
		_, _ = fmt.Fprintf(output, "  podtools diff --patch doc-v1.yaml doc-v2.yaml\n")
	}

	return fs, flags
}

func handleDiff(args []string) error {
	fs, flags := setupDiffFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff command requires exactly two file paths")
	}

	mode, err := listModeFlag(flags.listMode)
	if err != nil {
		return err
	}

	sourcePath, targetPath := fs.Arg(0), fs.Arg(1)
	opts := []differ.Option{
		differ.WithSourceFilePath(sourcePath),
		differ.WithTargetFilePath(targetPath),
	}
	if mode != "" {
		opts = append(opts, differ.WithListMode(mode))
	}

	result, err := differ.DiffWithOptions(opts...)
	if err != nil {
		return err
	}

	out := os.Stdout
	cliutil.Writef(out, "Documentation Tree Diff\n")
	cliutil.Writef(out, "=======================\n\n")
	cliutil.Writef(out, "podtools version: %s\n", podtools.Version())
	cliutil.Writef(out, "Source: %s (%d nodes)\n", sourcePath, result.SourceStats.NodeCount)
	cliutil.Writef(out, "Target: %s (%d nodes)\n\n", targetPath, result.TargetStats.NodeCount)

	if result.Equal {
		cliutil.Writef(out, "✓ No differences found - documents are identical\n")
		return nil
	}

	if flags.patch {
		cliutil.Writef(out, "%s", result.Patch)
	} else {
		cliutil.Writef(out, "Changes (+%d -%d):\n", result.AddedCount, result.RemovedCount)
		cliutil.Writef(out, "%s", differ.FormatChanges(result.Changes))
	}

	os.Exit(1)
	return nil
}

func printUsage() {
	fmt.Println(`podtools - Documentation Tree Tools

Usage:
  podtools <command> [options]

Commands:
  build       Convert a parser dump into a normalized documentation tree
  outline     Print the heading outline of a document
  dump        Print the stable tree dump of a document
  diff        Compare two documents and report tree-level changes
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  podtools build doc.pod.json
  podtools build --list-mode merged doc.pod.yaml
  podtools outline doc.pod.json
  podtools dump --color doc.pod.json
  podtools diff doc-v1.json doc-v2.json

Run 'podtools <command> --help' for more information on a command.`)
}
