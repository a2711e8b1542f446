package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	SourceExt = ".asm"
	BinaryExt = ".hack"
)

// UsageError reports a missing or malformed command line argument.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// CheckSourcePath accepts only paths that carry the .asm extension.
func CheckSourcePath(path string) error {
	if path == "" {
		return &UsageError{Msg: "enter an " + SourceExt + " file"}
	}
	if filepath.Ext(path) != SourceExt {
		return &UsageError{Msg: fmt.Sprintf("can only use a file with %s extension, got %q", SourceExt, path)}
	}
	return nil
}

// OutputPath swaps the extension of inPath for ext.
func OutputPath(inPath, ext string) string {
	if ext == "" {
		ext = BinaryExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	cur := filepath.Ext(inPath)
	if cur == "" {
		return inPath + ext
	}
	return strings.TrimSuffix(inPath, cur) + ext
}
