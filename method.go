package method

import (
	"errors"
	"fmt"
	"strings"

	"github.com/indigo-web/utils/uf"
)

// Method is an HTTP request method. The zero value is Unknown, which is
// deliberately not a valid method on its own.
type Method uint8

const (
	Unknown Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value,
// however Unknown method is not included. So in order to index the List, you must
// subtract 1 first.
var List = []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH}

// ErrUnknownMethod is returned on an attempt to parse a string that doesn't spell
// any of the known methods, whatever the casing.
var ErrUnknownMethod = errors.New("unknown method")

var lut = [...]string{
	GET:     "GET",
	HEAD:    "HEAD",
	POST:    "POST",
	PUT:     "PUT",
	DELETE:  "DELETE",
	CONNECT: "CONNECT",
	OPTIONS: "OPTIONS",
	TRACE:   "TRACE",
	PATCH:   "PATCH",
}

// String returns the canonical uppercase spelling of the method, which is also its
// wire form. Unknown and out-of-range values are rendered as UNKNOWN.
func (m Method) String() string {
	if m == Unknown || int(m) >= len(lut) {
		return "UNKNOWN"
	}

	return lut[m]
}

var methods = newMethodsMap(List)

func newMethodsMap(list []Method) map[string]Method {
	mmap := make(map[string]Method, len(list))
	for _, method := range list {
		mmap[method.String()] = method
	}

	return mmap
}

// Parse matches the string against the known methods case-insensitively. Canonical
// uppercase input, which is what actually appears on the wire, is matched without
// allocations.
func Parse(str string) (Method, error) {
	if method, found := methods[str]; found {
		return method, nil
	}

	if method, found := methods[strings.ToUpper(str)]; found {
		return method, nil
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownMethod, str)
}

// FromBytes parses a method token straight out of a request line, not copying
// the slice.
func FromBytes(raw []byte) (Method, error) {
	return Parse(uf.B2S(raw))
}

// IsSafe reports whether the method is defined as safe by RFC 9110 section 9.2.1,
// i.e. essentially read-only.
func (m Method) IsSafe() bool {
	switch m {
	case GET, HEAD, OPTIONS, TRACE:
		return true
	default:
		return false
	}
}

// IsIdempotent reports whether repeating the request has the same intended effect
// as making it once (RFC 9110 section 9.2.2).
func (m Method) IsIdempotent() bool {
	return m.IsSafe() || m == PUT || m == DELETE
}
