package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitWithWriter(t *testing.T) {
	t.Cleanup(func() { Init(false) })

	var buf bytes.Buffer
	InitWithWriter(true, &buf)
	assert.True(t, Enabled())

	Debug("emitting file", "path", "models/User.model.ts")
	assert.Contains(t, buf.String(), "emitting file")
	assert.Contains(t, buf.String(), "path=models/User.model.ts")
}

func TestDisabledDiscardsEverything(t *testing.T) {
	t.Cleanup(func() { Init(false) })

	var buf bytes.Buffer
	InitWithWriter(false, &buf)
	assert.False(t, Enabled())

	Debug("hidden")
	Error("also hidden")
	With("phase", "init").Info("hidden too")
	assert.Empty(t, buf.String())
}
