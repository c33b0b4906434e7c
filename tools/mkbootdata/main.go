// Command mkbootdata renders the boot stage data and instruction sequences
// into the NASM includes and linker symbols used by the rt0 stubs.
package main

import (
	"flag"
	"fmt"
	"os"
	"reflect"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"gopherboot/kernel/boot"
	"gopherboot/multiboot"
	"gopherboot/tools/internal/cli"
)

func runTool() error {
	layoutFile := flag.String("layout", "arch/x86_64/bootlayout.yaml", "the boot layout description")
	dataOut := flag.String("data-out", "arch/x86_64/asm/boot_data.inc", "where to write the boot data include")
	seqOut := flag.String("seq-out", "arch/x86_64/asm/boot_sequence.inc", "where to write the boot sequence include")
	ldOut := flag.String("ld-out", "arch/x86_64/script/boot_layout.ld", "where to write the linker symbols")
	checkImagePath := flag.String("check-image", "", "verify that the kernel image at this path carries a multiboot2 header and exit")
	dumpDefault := flag.Bool("dump-default", false, "print the built-in layout as YAML and exit")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "mkbootdata: generate the boot stage data for the rt0 stubs\n\n")
		fmt.Fprint(os.Stderr, "Usage: mkbootdata [options]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, err := cli.NewLogger("mkbootdata", *verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	switch {
	case *dumpDefault:
		data, err := encodeConfig(boot.DefaultLayout(), multiboot.DefaultHeader)
		if err != nil {
			return err
		}
		return cli.WriteOutput("-", data)
	case *checkImagePath != "":
		return checkImage(*checkImagePath, logger)
	}

	cfg, err := loadConfig(*layoutFile)
	if err != nil {
		return err
	}

	layout, err := cfg.Layout()
	if err != nil {
		return fmt.Errorf("%s: %w", *layoutFile, err)
	}

	if !reflect.DeepEqual(layout, boot.DefaultLayout()) {
		logger.Warn("layout differs from boot.DefaultLayout; the kernel-side tests do not cover it", zap.String("layout", *layoutFile))
	}
	if cfg.Header() != multiboot.DefaultHeader {
		logger.Warn("multiboot header differs from multiboot.DefaultHeader", zap.Uint32("console_flags", uint32(cfg.Header().ConsoleFlags)))
	}

	data, items, err := renderData(layout, cfg.Header())
	if err != nil {
		return err
	}

	seq, err := renderSequence(layout)
	if err != nil {
		return err
	}

	first, last := items[0], items[len(items)-1]
	logger.Debug("boot data placement",
		zap.String("base", fmt.Sprintf("0x%x", first.addr)),
		zap.String("size", humanize.IBytes(uint64(last.addr+last.size-first.addr))),
	)

	outputs := []struct {
		path string
		data []byte
	}{
		{*dataOut, data},
		{*seqOut, seq},
		{*ldOut, renderLinkerSymbols(layout, items)},
	}
	for _, out := range outputs {
		if err = cli.WriteOutput(out.path, out.data); err != nil {
			return err
		}
		logger.Info("wrote", zap.String("out", out.path), zap.String("size", humanize.Bytes(uint64(len(out.data)))))
	}

	return nil
}

func main() {
	if err := runTool(); err != nil {
		cli.Exit(err)
	}
}
