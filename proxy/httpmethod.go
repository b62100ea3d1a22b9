package proxy

import (
	"fmt"
	"strings"
)

// HttpMethod is an enum of the standard Http Methods. ANY matches every
// method and is only meaningful on a Route.
type HttpMethod int

const (
	GET HttpMethod = iota
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH
	ANY
)

var methodNames = [...]string{
	GET:     "GET",
	HEAD:    "HEAD",
	POST:    "POST",
	PUT:     "PUT",
	DELETE:  "DELETE",
	CONNECT: "CONNECT",
	OPTIONS: "OPTIONS",
	TRACE:   "TRACE",
	PATCH:   "PATCH",
	ANY:     "ANY",
}

func (m HttpMethod) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("HttpMethod(%d)", int(m))
	}

	return methodNames[m]
}

// Matches reports whether the request method name is served by m.
func (m HttpMethod) Matches(method string) bool {
	return m == ANY || strings.EqualFold(m.String(), method)
}
