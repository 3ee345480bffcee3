package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeSymbol is a small hand-rolled Symbol used to test the renderers
// without depending on the qrcode package.
type fakeSymbol struct {
	size    int32
	modules [][]bool // modules[y][x]
}

func (f fakeSymbol) Size() int32 { return f.size }

func (f fakeSymbol) GetModule(x, y int32) bool {
	if x < 0 || x >= f.size || y < 0 || y >= f.size {
		return false
	}
	return f.modules[y][x]
}

func checkerboard(size int32) fakeSymbol {
	modules := make([][]bool, size)
	for y := range modules {
		modules[y] = make([]bool, size)
		for x := range modules[y] {
			modules[y][x] = (int32(x)+int32(y))%2 == 0
		}
	}
	return fakeSymbol{size: size, modules: modules}
}

func Test_WritePNGRejectsInvalidScale(t *testing.T) {
	sym := checkerboard(4)
	var buf bytes.Buffer
	err := WritePNG(&buf, sym, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidScale)
}

func Test_WritePNGDimensions(t *testing.T) {
	sym := checkerboard(4)
	var buf bytes.Buffer
	err := WritePNG(&buf, sym, 2, 3)
	assert.NoError(t, err)

	img, err := png.Decode(&buf)
	assert.NoError(t, err)

	wantDim := (4 + 2*2) * 3
	bounds := img.Bounds()
	assert.Equal(t, wantDim, bounds.Dx())
	assert.Equal(t, wantDim, bounds.Dy())
}

func Test_WriteTerminalLineCount(t *testing.T) {
	sym := checkerboard(4)
	var buf bytes.Buffer
	err := WriteTerminal(&buf, sym, 2)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// (size + 2*border) module rows, two rows per terminal line, rounded up
	wantLines := (4 + 2*2 + 1) / 2
	assert.Len(t, lines, wantLines)
}

func Test_WriteTerminalRejectsNegativeBorder(t *testing.T) {
	sym := checkerboard(4)
	var buf bytes.Buffer
	err := WriteTerminal(&buf, sym, -1)
	assert.Error(t, err)
}
