package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "separate value",
			args:     []string{"-a", ":8080", "-x", "junk"},
			allowed:  []string{"-a"},
			expected: []string{"-a", ":8080"},
		},
		{
			name:     "equals form",
			args:     []string{"--config=conf.json", "-d=dsn"},
			allowed:  []string{"--config"},
			expected: []string{"--config=conf.json"},
		},
		{
			name:     "flag without value",
			args:     []string{"-v", "-a", ":9090"},
			allowed:  []string{"-v"},
			expected: []string{"-v"},
		},
		{
			name:     "nothing allowed",
			args:     []string{"-a", "1", "-b", "2"},
			allowed:  []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-config", "conf.json"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"testbin"}
	assert.Equal(t, "", JsonConfigFlags())
}
