package main

import (
	"os"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"gopherboot/multiboot"
)

// checkImage verifies that a loader scanning the kernel image at path finds
// the multiboot2 header.
func checkImage(path string, logger *zap.Logger) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	offset, kerr := multiboot.FindHeader(image)
	if kerr != nil {
		return kerr
	}

	logger.Info("found multiboot2 header",
		zap.String("image", path),
		zap.String("size", humanize.Bytes(uint64(len(image)))),
		zap.Int("offset", offset),
	)

	return nil
}
