package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	tests := []struct {
		flag string
		want Environment
	}{
		{"development", Development},
		{"test", Test},
		{"TEST", Test},
		{"production", Production},
		{" prod ", Production},
		{"staging", Development},
		{"", Development},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, EnvFlagToEnvironment(tt.flag))
		})
	}
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "development", Development.String())
	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "production", Production.String())
}
