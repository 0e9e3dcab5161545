package resource

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Scheme is the internal addressing scheme for local file resources. The
// UI dereferences these ids for previews instead of touching the
// filesystem directly.
const Scheme = "localfile"

var driveLetterRe = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// IsAbsPath accepts POSIX-absolute paths and Windows drive-letter paths
// in either separator form. Relative paths are never valid resource
// targets.
func IsAbsPath(path string) bool {
	return strings.HasPrefix(path, "/") || driveLetterRe.MatchString(path)
}

// PathToResourceID encodes an absolute local path as a resource id.
//
// A drive-letter path puts the letter in the authority slot, where a URI
// host would normally sit: `C:\docs\a.pdf` -> `localfile://C/docs/a.pdf`.
// Without that, the drive letter would parse as a URI scheme. POSIX paths
// keep the authority empty: `/home/u/a.pdf` -> `localfile:///home/u/a.pdf`.
func PathToResourceID(path string) (string, error) {
	if !IsAbsPath(path) {
		return "", fmt.Errorf("path %q is not absolute", path)
	}

	u := url.URL{Scheme: Scheme}
	if driveLetterRe.MatchString(path) {
		u.Host = path[:1]
		u.Path = strings.ReplaceAll(path[2:], `\`, "/")
		if !strings.HasPrefix(u.Path, "/") {
			u.Path = "/" + u.Path
		}
	} else {
		u.Path = path
	}
	return u.String(), nil
}

// ResourceIDToPath is the inverse of PathToResourceID. Drive-letter paths
// come back in forward-slash form; POSIX paths come back verbatim.
func ResourceIDToPath(id string) (string, error) {
	u, err := url.Parse(id)
	if err != nil {
		return "", fmt.Errorf("parse resource id: %w", err)
	}
	if u.Scheme != Scheme {
		return "", fmt.Errorf("unexpected scheme %q in resource id", u.Scheme)
	}

	if u.Host != "" {
		// The authority carries a drive letter, not a host.
		if len(u.Host) != 1 || !regexp.MustCompile(`^[A-Za-z]$`).MatchString(u.Host) {
			return "", fmt.Errorf("invalid drive letter %q in resource id", u.Host)
		}
		return u.Host + ":" + u.Path, nil
	}

	if !strings.HasPrefix(u.Path, "/") {
		return "", fmt.Errorf("resource id %q does not address an absolute path", id)
	}
	return u.Path, nil
}
