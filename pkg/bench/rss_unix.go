//go:build unix

package bench

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// maxRSSBytes returns ru_maxrss for the calling process, normalized to bytes.
// Darwin reports bytes; Linux and the BSDs report kilobytes.
func maxRSSBytes() int64 {
	var ru unix.Rusage

	err := unix.Getrusage(unix.RUSAGE_SELF, &ru)
	if err != nil {
		return 0
	}

	maxRSS := int64(ru.Maxrss)

	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return maxRSS
	}

	return maxRSS * 1024
}
