package utils

import (
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Mount points where videos usually live on NAS shares or USB disks.
// ffprobe reads the moov atom over the wire there, which can take far longer
// than on a local disk.
var networkMountPrefixes = []string{
	"/mnt/",     // Linux NFS/SMB mounts
	"/media/",   // Linux removable/network media
	"/Volumes/", // macOS shares
}

// Path fragments that name a remote filesystem, e.g. /srv/smb-export
var networkFSMarkers = []string{"nfs", "cifs", "smb", "webdav", "ftp", "sftp"}

// NetworkTimeoutFactor scales the probe timeout for sources on network drives
const NetworkTimeoutFactor = 2

// IsNetworkDrive guesses whether a source folder is on a network mount
func IsNetworkDrive(path string) bool {
	// UNC paths must be checked before filepath.Abs mangles them
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, `\\`) {
		return true
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	if slices.ContainsFunc(networkMountPrefixes, func(p string) bool { return strings.HasPrefix(abs, p) }) {
		return true
	}
	lower := strings.ToLower(abs)
	return slices.ContainsFunc(networkFSMarkers, func(m string) bool { return strings.Contains(lower, m) })
}

// ProbeTimeoutFor returns the probe timeout to use for files in source.
// Only the default timeout is scaled; an explicit one is kept as given.
// The second result reports whether the timeout was raised.
func ProbeTimeoutFor(source string, timeout, defaultTimeout time.Duration) (time.Duration, bool) {
	if source == "" || timeout != defaultTimeout || !IsNetworkDrive(source) {
		return timeout, false
	}
	return timeout * NetworkTimeoutFactor, true
}
