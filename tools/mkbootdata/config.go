package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"gopherboot/kernel/boot"
	"gopherboot/kernel/mm/vmm"
	"gopherboot/multiboot"
)

// layoutConfig mirrors arch/x86_64/bootlayout.yaml.
type layoutConfig struct {
	KernelBase uint64 `yaml:"kernel_base"`
	GDT        uint64 `yaml:"gdt"`

	Tables struct {
		L4         uint64 `yaml:"l4"`
		IdentityL3 uint64 `yaml:"identity_l3"`
		IdentityL2 uint64 `yaml:"identity_l2"`
		StackL3    uint64 `yaml:"stack_l3"`
		StackL2    uint64 `yaml:"stack_l2"`
		StackL1    uint64 `yaml:"stack_l1"`
	} `yaml:"tables"`

	StackFrames []uint64 `yaml:"stack_frames"`

	Multiboot struct {
		ConsoleRequired  bool `yaml:"console_required"`
		EGATextSupported bool `yaml:"ega_text_supported"`
	} `yaml:"multiboot"`
}

func loadConfig(path string) (*layoutConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return decodeConfig(f)
}

func decodeConfig(r io.Reader) (*layoutConfig, error) {
	var cfg layoutConfig

	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}

	if got := len(cfg.StackFrames); got != vmm.StackPages {
		return nil, fmt.Errorf("expected %d stack frames; got %d", vmm.StackPages, got)
	}

	return &cfg, nil
}

// Layout converts the configuration into a boot.Layout and validates it.
func (cfg *layoutConfig) Layout() (boot.Layout, error) {
	layout := boot.Layout{
		KernelBase: uintptr(cfg.KernelBase),
		GDT:        uintptr(cfg.GDT),
		Tables: vmm.BootLayout{
			L4:         uintptr(cfg.Tables.L4),
			IdentityL3: uintptr(cfg.Tables.IdentityL3),
			IdentityL2: uintptr(cfg.Tables.IdentityL2),
			StackL3:    uintptr(cfg.Tables.StackL3),
			StackL2:    uintptr(cfg.Tables.StackL2),
			StackL1:    uintptr(cfg.Tables.StackL1),
		},
	}
	for i, frame := range cfg.StackFrames {
		layout.Tables.StackFrames[i] = uintptr(frame)
	}

	if err := layout.Validate(); err != nil {
		return layout, err
	}

	return layout, nil
}

// Header returns the multiboot header requested by the configuration.
func (cfg *layoutConfig) Header() multiboot.Header {
	h := multiboot.Header{Architecture: multiboot.ArchitectureI386}
	if cfg.Multiboot.ConsoleRequired {
		h.ConsoleFlags |= multiboot.ConsoleRequired
	}
	if cfg.Multiboot.EGATextSupported {
		h.ConsoleFlags |= multiboot.ConsoleEGATextSupported
	}

	return h
}

// encodeConfig renders a layout back into its YAML form.
func encodeConfig(layout boot.Layout, h multiboot.Header) ([]byte, error) {
	var cfg layoutConfig

	cfg.KernelBase = uint64(layout.KernelBase)
	cfg.GDT = uint64(layout.GDT)
	cfg.Tables.L4 = uint64(layout.Tables.L4)
	cfg.Tables.IdentityL3 = uint64(layout.Tables.IdentityL3)
	cfg.Tables.IdentityL2 = uint64(layout.Tables.IdentityL2)
	cfg.Tables.StackL3 = uint64(layout.Tables.StackL3)
	cfg.Tables.StackL2 = uint64(layout.Tables.StackL2)
	cfg.Tables.StackL1 = uint64(layout.Tables.StackL1)
	for _, frame := range layout.Tables.StackFrames {
		cfg.StackFrames = append(cfg.StackFrames, uint64(frame))
	}
	cfg.Multiboot.ConsoleRequired = h.ConsoleFlags&multiboot.ConsoleRequired != 0
	cfg.Multiboot.EGATextSupported = h.ConsoleFlags&multiboot.ConsoleEGATextSupported != 0

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
