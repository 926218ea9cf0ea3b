package input

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/nodetree/internal/ctxlog"
	"github.com/vk/nodetree/internal/fsutil"
	"github.com/vk/nodetree/internal/node"
)

// Extensions lists the file extensions recognised when loading a directory.
var Extensions = []string{".json", ".yaml", ".yml", ".hcl"}

// Decoder turns one raw document into a validated node list.
type Decoder interface {
	// Decode parses src. name identifies the document in error messages.
	Decode(ctx context.Context, name string, src []byte) (node.List, error)
}

// Format names a supported document format.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatJSON, FormatYAML, FormatHCL:
		return f, nil
	case "":
		return FormatAuto, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (expected auto, json, yaml or hcl)", ErrUnsupportedFormat, s)
	}
}

// DetectFormat picks a format from a file extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl":
		return FormatHCL
	default:
		return FormatJSON
	}
}

// DecoderFor returns the decoder for a concrete format.
func DecoderFor(f Format) (Decoder, error) {
	switch f {
	case FormatJSON:
		return NewJSONDecoder(), nil
	case FormatYAML:
		return NewYAMLDecoder(), nil
	case FormatHCL:
		return NewHCLDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// Read decodes a whole document from r. With FormatAuto the format is
// detected from name.
func Read(ctx context.Context, r io.Reader, name string, format Format) (node.List, error) {
	if format == FormatAuto {
		format = DetectFormat(name)
	}
	ctxlog.FromContext(ctx).Debug("Reading node document.", "source", name, "format", string(format))

	dec, err := DecoderFor(format)
	if err != nil {
		return nil, err
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return dec.Decode(ctx, name, src)
}

// Load decodes the document at path. If path is a directory, every file
// under it with one of Extensions is decoded in lexical path order and the
// node lists are concatenated.
func Load(ctx context.Context, path string, format Format) (node.List, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	if !info.IsDir() {
		return loadFile(ctx, path, format)
	}

	files, err := fsutil.FindFilesByExtension(path, Extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no node documents found in %s", path)
	}
	ctxlog.FromContext(ctx).Debug("Loading node documents from directory.", "path", path, "file_count", len(files))

	var all node.List
	for _, file := range files {
		nodes, err := loadFile(ctx, file, format)
		if err != nil {
			return nil, err
		}
		all = append(all, nodes...)
	}
	return all, nil
}

func loadFile(ctx context.Context, path string, format Format) (node.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return Read(ctx, f, path, format)
}
