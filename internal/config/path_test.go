package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("GAUGE_DATA", "/srv/gauge")
	t.Setenv("GAUGE_DIR", "gauge")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "tilde only", path: "~", want: "/home/tester"},
		{name: "tilde prefix", path: "~/gauge.db", want: filepath.Join("/home/tester", "gauge.db")},
		{name: "env var", path: "$GAUGE_DATA/gauge.db", want: "/srv/gauge/gauge.db"},
		{name: "tilde slash", path: "~/", want: "/home/tester"},
		{name: "tilde then env var", path: "~/$GAUGE_DIR/gauge.db", want: "/home/tester/gauge/gauge.db"},
		{name: "other user left alone", path: "~other/gauge.db", want: "~other/gauge.db"},
		{name: "absolute", path: "/var/lib/gauge.db", want: "/var/lib/gauge.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}
