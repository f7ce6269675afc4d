// Package user resolves the login name of the person running taskdeck.
package user

import (
	"os"
	"os/user"
	"strings"
)

// DefaultUsername returns the OS login name, used as the taskdeck username
// when none is given. It tries, in order:
// 1. user.Current()
// 2. the USER environment variable
// and returns "" when neither is set.
func DefaultUsername() string {
	if u, err := user.Current(); err == nil {
		if name := Clean(u.Username); name != "" {
			return name
		}
	}
	return Clean(os.Getenv("USER"))
}

// Clean drops a Windows domain prefix ("CORP\ada") and surrounding space
func Clean(name string) string {
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSpace(name)
}
