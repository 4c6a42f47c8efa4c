package common

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Now returns the current unix timestamp in seconds
func Now() int64 {
	return time.Now().Unix()
}

// NowStr returns the current unix timestamp as decimal string
func NowStr() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}

// NowMilli returns the current unix timestamp in milliseconds
func NowMilli() int64 {
	return time.Now().UnixNano() / 1e6
}

// NowMilliStr returns the current millisecond timestamp as decimal string
func NowMilliStr() string {
	return strconv.FormatInt(time.Now().UnixNano()/1e6, 10)
}

// FileExist checks if a file exists at path.
func FileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CurrentDir returns the current working directory.
func CurrentDir() (string, error) {
	return os.Getwd()
}

// AbsolutePath returns datadir + filename, or filename if it is absolute.
func AbsolutePath(datadir, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(datadir, filename)
}
