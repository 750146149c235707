package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintLines(t *testing.T) {
	var buf bytes.Buffer

	PrintHeader(&buf, "Asset tree:")
	PrintSuccess(&buf, "Sprites", "12")
	PrintWarning(&buf, "root.empty", "no sprites")
	PrintError(&buf, "root", "collision")

	out := buf.String()
	assert.Contains(t, out, "\nAsset tree:\n")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Sprites")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "! ")
	assert.Contains(t, out, "root.empty")
	assert.Contains(t, out, "✘")
	assert.Contains(t, out, "collision")
}
