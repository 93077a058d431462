package env

import (
	"net"
	"regexp"
	"strconv"
)

var keyspacePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{0,47}$`)

// IsValidHostPort accepts "host:port" with a port in 1..65535.
func IsValidHostPort(address string) bool {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return false
	}
	n, err := strconv.Atoi(port)
	return err == nil && n > 0 && n <= 65535
}

// IsValidKeyspace reports whether name is an unquoted CQL keyspace identifier.
func IsValidKeyspace(name string) bool {
	return keyspacePattern.MatchString(name)
}
