package utils

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/oshokin/ymusic-grabber/internal/constants"
)

// forbiddenFilenameChars are rejected by Windows in file names. Control characters are handled separately.
const forbiddenFilenameChars = `<>:"/\|?*`

// utf8BOM is prepended to text files by some Windows editors.
const utf8BOM = "\ufeff"

// SanitizeFilename makes name usable as a file name on Windows and Unix-like systems.
// Forbidden and control characters become "_", device names such as "CON" or "lpt1"
// get a "_" prefix and trailing dots are dropped.
func SanitizeFilename(name string) string {
	if name == "" {
		return ""
	}

	result := strings.Map(func(r rune) rune {
		if r < ' ' || strings.ContainsRune(forbiddenFilenameChars, r) {
			return '_'
		}

		return r
	}, name)

	if isDeviceName(strings.TrimSuffix(result, filepath.Ext(result))) {
		result = "_" + result
	}

	result = strings.TrimRight(result, ".")
	if result == "" {
		return "_"
	}

	return result
}

func isDeviceName(base string) bool {
	base = strings.ToUpper(base)

	switch base {
	case "CON", "PRN", "AUX", "NUL":
		return true
	}

	if len(base) == 4 && (strings.HasPrefix(base, "COM") || strings.HasPrefix(base, "LPT")) {
		return base[3] >= '1' && base[3] <= '9'
	}

	return false
}

// SetTrackExtension gives a track file name the extension of its codec.
// A media extension already present is replaced. Any other dotted tail,
// as in "Mr. Brightside", is part of the title and is kept.
func SetTrackExtension(filename, extension string) string {
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	current := filepath.Ext(filename)
	if strings.EqualFold(current, extension) {
		return filename
	}

	if isMediaExtension(current) {
		filename = strings.TrimSuffix(filename, current)
	}

	return filename + extension
}

func isMediaExtension(extension string) bool {
	switch strings.ToLower(extension) {
	case constants.ExtensionMP3, constants.ExtensionAAC, constants.ExtensionFLAC, constants.ExtensionBin:
		return true
	default:
		return false
	}
}

// IsFileExist reports whether a regular file exists at path.
func IsFileExist(path string) (bool, error) {
	info, err := os.Stat(path)

	switch {
	case err == nil:
		return info.Mode().IsRegular(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// ReadUniqueLinesFromFile reads a reference list: one entry per line, blank lines skipped,
// duplicates dropped and the first occurrence order kept.
func ReadUniqueLinesFromFile(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	var (
		seen    = make(map[string]struct{})
		lines   []string
		scanner = bufio.NewScanner(file)
		first   = true
	)

	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if _, ok := seen[line]; ok {
			continue
		}

		seen[line] = struct{}{}
		lines = append(lines, line)
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
