package lvfold_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvfold"
	"github.com/stretchr/testify/assert"
)

// TestLogger_DefaultIsSilent verifies the default logger drops records.
func TestLogger_DefaultIsSilent(t *testing.T) {
	lvfold.SetLogger(nil)
	assert.False(t, lvfold.Logger().Enabled(context.Background(), slog.LevelError), "default logger must be disabled")
}

// TestLogger_SetLogger verifies an installed logger receives records.
func TestLogger_SetLogger(t *testing.T) {
	var buf bytes.Buffer
	lvfold.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer lvfold.SetLogger(nil)

	lvfold.Logger().Warn("audit", "facet", 3)
	assert.Contains(t, buf.String(), "facet=3")
}
