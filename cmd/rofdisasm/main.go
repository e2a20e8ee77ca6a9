// Command rofdisasm disassembles OS-9/6809 relocatable object files
// into 6809 assembly text.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/spf13/cobra"

	"github.com/osnine-tools/rofdisasm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	individual bool
	rawDump    bool
	globals    bool
	outPath    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "rofdisasm [files...]",
		Short: "Disassemble OS-9/6809 relocatable object files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&opts.individual, "individual", "i", false, "write one .asm file per input, named after it")
	cmd.Flags().BoolVarP(&opts.rawDump, "raw", "r", false, "dump the raw ROF header instead of disassembling")
	cmd.Flags().BoolVarP(&opts.globals, "globals", "g", false, "list global symbols instead of disassembling")
	cmd.Flags().StringVarP(&opts.outPath, "output", "o", "", "write combined output to this path instead of stdout")

	return cmd
}

func run(ctx context.Context, opts *options, paths []string, stdout io.Writer) error {
	var combined io.Writer = stdout
	if opts.outPath != "" && !opts.individual {
		f, err := os.Create(opts.outPath)
		if err != nil {
			return fmt.Errorf("rofdisasm: %w", err)
		}
		defer f.Close()
		combined = f
	}

	failed := 0
	for _, path := range paths {
		if err := disassembleFile(ctx, opts, path, combined); err != nil {
			slog.Error("rofdisasm: "+err.Error(), "file", path)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("rofdisasm: %d of %d files failed", failed, len(paths))
	}
	return nil
}

func disassembleFile(ctx context.Context, opts *options, path string, fallback io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return err
	}
	defer m.Unmap()

	r := bytes.NewReader(m)

	var out io.Writer = fallback
	var asmFile *os.File
	if opts.individual {
		asmPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".asm"
		f, err := os.Create(asmPath)
		if err != nil {
			return err
		}
		defer f.Close()
		asmFile = f
		out = f
	}

	for {
		mod, err := rofdisasm.LoadROF(r, path)
		if err != nil {
			if errors.Is(err, rofdisasm.ErrNoMore) {
				break
			}
			return err
		}

		for _, w := range mod.Warnings {
			slog.Warn(w, "file", path, "module", mod.Name)
		}

		if opts.globals {
			printGlobals(out, mod)
			continue
		}
		if opts.rawDump {
			printRawHeader(out, mod)
			continue
		}

		d := rofdisasm.NewDisassembler(mod, out)
		if err := d.Run(ctx); err != nil {
			return err
		}
	}

	if asmFile != nil {
		return asmFile.Close()
	}
	return nil
}

func printGlobals(w io.Writer, mod *rofdisasm.Module) {
	for _, ref := range mod.References.All() {
		if ref.Type == rofdisasm.RefGlobal && ref.Symbol != "" {
			fmt.Fprintf(w, "%-16s $%04X\n", ref.Symbol, ref.Offset)
		}
	}
}

func printRawHeader(w io.Writer, mod *rofdisasm.Module) {
	fmt.Fprintf(w, "module    %s\n", mod.Name)
	fmt.Fprintf(w, "edition   %d\n", mod.Edition)
	fmt.Fprintf(w, "created   %s\n", mod.Created.Time().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "code      %d bytes\n", mod.SizeObjectCode)
	fmt.Fprintf(w, "init data %d bytes\n", mod.SizeInitData)
	fmt.Fprintf(w, "bss       %d bytes\n", mod.SizeUninitData)
	fmt.Fprintf(w, "entry     $%04X\n", mod.ExecEntry)
}
