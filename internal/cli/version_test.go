package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "1.2.0"
	defer func() { version = originalVersion }()

	stdout, _, err := execute(t, "", "version")

	assert.NoError(t, err)
	assert.Contains(t, stdout, "kpi version 1.2.0")
}
