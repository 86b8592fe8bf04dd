// Package convert decodes Wallpaper-Engine-style TEXV0005 texture containers
// into RGBA images, and fronts raylib's image loader for everything else.
package convert

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"shaderview/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mauserzjeh/dxt"
	"github.com/pierrec/lz4/v4"
)

// LoadImageFile decodes the image at path into CPU pixel data. `.tex`
// containers go through the TEXV0005 decoder; every other extension is
// handed to raylib's codec. The caller owns the returned image and must
// unload it after uploading.
func LoadImageFile(path string) (*rl.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".tex") {
		img, err := DecodeTex(path)
		if err != nil {
			return nil, err
		}
		return rl.NewImageFromImage(img), nil
	}

	img := rl.LoadImage(path)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("unsupported or corrupt image data in %s", path)
	}
	return img, nil
}

// texReader reads little-endian container fields and remembers the first
// error, so header parsing can be written as a flat sequence of reads.
type texReader struct {
	r   io.Reader
	err error
}

func (t *texReader) u32() uint32 {
	if t.err != nil {
		return 0
	}
	var v uint32
	t.err = binary.Read(t.r, binary.LittleEndian, &v)
	return v
}

func (t *texReader) str(n int) string {
	if t.err != nil {
		return ""
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(t.r, b); err != nil {
		t.err = err
		return ""
	}
	return string(bytes.Trim(b, "\x00"))
}

func (t *texReader) skip(n int64) {
	if t.err != nil {
		return
	}
	_, t.err = io.CopyN(io.Discard, t.r, n)
}

// DecodeTex decodes the first mipmap of the first image in a TEXV0005
// container. Payloads may be LZ4 block compressed and carry raw RGBA, DXT1,
// DXT5, R8 or RG88 pixel data; everything is normalized to RGBA.
func DecodeTex(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t := &texReader{r: f}

	magic := t.str(8)
	t.skip(1)
	t.str(8)
	t.skip(1)
	if t.err != nil {
		return nil, fmt.Errorf("reading header: %w", t.err)
	}
	if magic != "TEXV0005" {
		return nil, fmt.Errorf("invalid magic %q", magic)
	}

	format := t.u32()
	t.skip(4) // flags
	t.u32()   // texture width
	t.u32()   // texture height
	imgW := t.u32()
	imgH := t.u32()
	t.u32()

	containerMagic := t.str(8)
	t.skip(1)
	imageCount := t.u32()
	if containerMagic == "TEXB0003" {
		t.u32()
	}
	if t.err != nil {
		return nil, fmt.Errorf("reading container header: %w", t.err)
	}

	utils.Debug("Tex: %s format=%d container=%s target=%dx%d", path, format, containerMagic, imgW, imgH)

	for i := uint32(0); i < imageCount; i++ {
		mipmapCount := t.u32()
		for j := uint32(0); j < mipmapCount; j++ {
			mipW := t.u32()
			mipH := t.u32()
			var isLZ4 bool
			var decompressedSize uint32
			if containerMagic != "TEXB0001" {
				isLZ4 = t.u32() == 1
				decompressedSize = t.u32()
			}
			dataSize := t.u32()
			if t.err != nil {
				return nil, fmt.Errorf("reading mipmap header: %w", t.err)
			}

			data := make([]byte, dataSize)
			if _, err := io.ReadFull(f, data); err != nil {
				return nil, fmt.Errorf("reading mipmap payload: %w", err)
			}

			if i != 0 || j != 0 {
				continue
			}

			if isLZ4 {
				utils.Debug("Tex: decompressing LZ4 block %d -> %d", dataSize, decompressedSize)
				decoded := make([]byte, decompressedSize)
				if _, err := lz4.UncompressBlock(data, decoded); err != nil {
					return nil, fmt.Errorf("lz4 block: %w", err)
				}
				data = decoded
			}

			pix, err := decodePayload(data, format, mipW, mipH)
			if err != nil {
				return nil, err
			}

			rgba := &image.RGBA{
				Pix:    pix,
				Stride: int(mipW) * 4,
				Rect:   image.Rect(0, 0, int(mipW), int(mipH)),
			}
			if imgW > 0 && imgH > 0 && (imgW < mipW || imgH < mipH) {
				return rgba.SubImage(image.Rect(0, 0, int(imgW), int(imgH))), nil
			}
			return rgba, nil
		}
	}

	return nil, fmt.Errorf("no image payload in %s", path)
}

func decodePayload(data []byte, format, w, h uint32) ([]byte, error) {
	blocksW := (w + 3) / 4
	blocksH := (h + 3) / 4

	sizeDXT1 := int(blocksW * blocksH * 8)
	sizeDXT5 := int(blocksW * blocksH * 16)
	sizeRGBA := int(w * h * 4)

	switch {
	case len(data) == sizeRGBA:
		return data, nil

	case len(data) == sizeDXT5 || format == 6:
		pix, err := dxt.DecodeDXT5(data, uint(w), uint(h))
		if err != nil {
			return nil, fmt.Errorf("dxt5: %w", err)
		}
		return pix, nil

	case len(data) == sizeDXT1 || format == 4 || format == 7:
		pix, err := dxt.DecodeDXT1(data, uint(w), uint(h))
		if err != nil {
			return nil, fmt.Errorf("dxt1: %w", err)
		}
		return pix, nil

	case format == 9 && len(data) == sizeRGBA/4:
		// R8 grayscale
		pix := make([]byte, sizeRGBA)
		for k := 0; k < int(w*h); k++ {
			v := data[k]
			pix[k*4+0] = v
			pix[k*4+1] = v
			pix[k*4+2] = v
			pix[k*4+3] = 255
		}
		return pix, nil

	case format == 8 && len(data) == sizeRGBA/2:
		// RG88, luminance + alpha
		pix := make([]byte, sizeRGBA)
		for k := 0; k < int(w*h); k++ {
			lum := data[k*2]
			alpha := data[k*2+1]
			pix[k*4+0] = lum
			pix[k*4+1] = lum
			pix[k*4+2] = lum
			pix[k*4+3] = alpha
		}
		return pix, nil
	}

	return nil, fmt.Errorf("unsupported format %d with payload size %d", format, len(data))
}
