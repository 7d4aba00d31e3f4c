package canvas

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for output paths with an unsupported extension
var ErrUnknownFormat = errors.New("unknown image format")

// Formats lists the file extensions WriteFile understands
var Formats = []string{".ppm", ".png", ".bmp", ".tif", ".tiff"}

// Encode writes the canvas in the format named by ext (with or without the dot)
func (c *Canvas) Encode(w io.Writer, ext string) error {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	switch ext {
	case ".ppm":
		return c.ToPPM(w)
	case ".png":
		return png.Encode(w, c.ToImage())
	case ".bmp":
		return bmp.Encode(w, c.ToImage())
	case ".tif", ".tiff":
		return tiff.Encode(w, c.ToImage(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// WriteFile saves the canvas, choosing the encoder from the file extension
func (c *Canvas) WriteFile(path string) error {
	ext := filepath.Ext(path)
	if ext == "" {
		return fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	if !slices.Contains(Formats, strings.ToLower(ext)) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := c.Encode(file, ext); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}
