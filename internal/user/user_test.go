package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "ada", "ada"},
		{"domain prefix", `CORP\ada`, "ada"},
		{"whitespace", "  ada \n", "ada"},
		{"empty", "", ""},
		{"only domain", `CORP\`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestDefaultUsername(t *testing.T) {
	name := DefaultUsername()

	assert.Equal(t, Clean(name), name, "result is already clean")
	assert.NotContains(t, name, `\`)
}
