package screenshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCapture(dir string) *Capture {
	c := New(dir, "touchcone")
	c.now = func() time.Time { return time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC) }
	return c
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "touchcone_2024-05-17_09-30-00.png", fixedCapture("").Filename())
	assert.Equal(t, filepath.Join("shots", "touchcone_2024-05-17_09-30-00.png"), fixedCapture("shots").Filename())
}

func TestFromPixelsFlips(t *testing.T) {
	// 1x2 image: bottom row red, top row blue (GL order is bottom-up).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromPixels(pixels, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, []byte{0, 0, 255, 255}, img.Pix[0:4], "top row")
	assert.Equal(t, []byte{255, 0, 0, 255}, img.Pix[4:8], "bottom row")
}

func TestFromPixelsSizeMismatch(t *testing.T) {
	_, err := FromPixels(make([]byte, 7), 1, 2)
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	c := fixedCapture(dir)

	pixels := make([]byte, 4*3*2)
	for i := range pixels {
		pixels[i] = 128
	}

	path, err := c.Save(pixels, 4, 3)
	require.Error(t, err, "size mismatch must fail before touching disk")
	assert.Empty(t, path)

	path, err = c.Save(pixels, 3, 2)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
}
