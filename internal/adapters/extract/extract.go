// Package extract turns local files of various formats into plain text.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bnema/argo-agent-cli/internal/domain"
	"github.com/bnema/argo-agent-cli/internal/ports"
)

// supportedExtensions is the allow-list applied during directory traversal.
// Direct file references bypass it entirely.
var supportedExtensions = []string{
	".txt", ".csv", ".json", ".xml", ".html", ".htm",
	".py", ".js", ".java", ".c", ".cpp", ".h", ".hpp", ".cs",
	".rb", ".php", ".go", ".rs", ".swift", ".kt", ".scala",
	".sh", ".bash", ".zsh", ".fish",
	".md", ".markdown", ".rst",
	".ini", ".cfg", ".conf", ".yaml", ".yml", ".toml", ".env", ".gitignore",
	".pdf", ".docx", ".xlsx", ".xls", ".pptx", ".ppt",
}

// SupportedExtensions returns the traversal allow-list.
func SupportedExtensions() []string {
	out := make([]string, len(supportedExtensions))
	copy(out, supportedExtensions)
	return out
}

// IsSupportedPath reports whether the path's extension (case-insensitive) is
// in the allow-list.
func IsSupportedPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range supportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Reader dispatches to a per-format reader based on file extension. Unknown
// extensions fall back to the plain-text reader; formats in the allow-list
// without a Go reader report ErrUnsupportedFormat so callers can skip them.
type Reader struct {
	logger *slog.Logger
}

var _ ports.Extractor = (*Reader)(nil)

func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

func (r *Reader) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return readDocx(path)
	case ".xlsx":
		return readXlsx(path)
	case ".pptx":
		return readPptx(path)
	case ".md", ".markdown":
		return readMarkdown(path)
	case ".pdf", ".xls", ".ppt":
		// No reader; flagged rather than read as raw bytes so the
		// aggregator skips them instead of polluting the context.
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
	default:
		return readText(path)
	}
}
