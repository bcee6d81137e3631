package message

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
)

// Version is a protocol version pair. It is immutable by convention:
// equality and rendering derive from the two numbers alone.
type Version struct {
	Major, Minor uint
}

var (
	Version10 = Version{1, 0}
	Version11 = Version{1, 1}
	Version2  = Version{2, 0}
)

// ParseVersion parses an http version literal (e.g. "HTTP/1.1") into [Version].
func ParseVersion(b []byte) (Version, error) {
	prefix := []byte("HTTP/")
	if !bytes.HasPrefix(b, prefix) {
		return Version{}, errors.Errorf("http version prefix not found: %s", b)
	}

	// Get major and minor version.
	first, second, found := bytes.Cut(b[len(prefix):], []byte{'.'})
	if !found {
		return Version{}, errors.Errorf("dot seperator not found on version: %s", b)
	}

	major, err1 := strconv.ParseUint(string(first), 10, 64)
	minor, err2 := strconv.ParseUint(string(second), 10, 64)
	if err1 != nil || err2 != nil {
		return Version{}, errors.Errorf("http version is not convertable to int: %s", b)
	}

	return Version{Major: uint(major), Minor: uint(minor)}, nil
}

func (ver Version) Text() []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write([]byte("HTTP/"))
	buf.Write([]byte(strconv.FormatUint(uint64(ver.Major), 10)))
	buf.Write([]byte{'.'})
	buf.Write([]byte(strconv.FormatUint(uint64(ver.Minor), 10)))
	return buf.Bytes()
}

func (ver Version) String() string { return string(ver.Text()) }
