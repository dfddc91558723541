package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	DefaultFilePermissions os.FileMode = 0o644

	// DefaultFolderPermissions sets the default permissions for regular folders: (rwxr-xr-x).
	DefaultFolderPermissions os.FileMode = 0o755
)

// File extension constants.
const (
	ExtensionMP3  = ".mp3"
	ExtensionAAC  = ".aac"
	ExtensionFLAC = ".flac"
	ExtensionBin  = ".bin"
	ExtensionPart = ".part"
)

// ExtensionForCodec returns the file extension matching an encoding name reported by the service.
func ExtensionForCodec(codec string) string {
	switch codec {
	case "mp3":
		return ExtensionMP3
	case "aac", "he-aac":
		return ExtensionAAC
	case "flac":
		return ExtensionFLAC
	default:
		return ExtensionBin
	}
}
