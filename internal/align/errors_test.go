package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError_Error(t *testing.T) {
	err := newConfigError("contig %q bad", "x")
	assert.Equal(t, `contig "x" bad`, err.Error())
}

func TestInvariantError_Error(t *testing.T) {
	err := newInvariantError("tag %d unexpected", 42)
	assert.Equal(t, "tag 42 unexpected", err.Error())
}
