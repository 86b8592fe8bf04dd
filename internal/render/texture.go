package render

import (
	"shaderview/internal/convert"
	"shaderview/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextureSlot holds the single live GPU texture the preview samples from.
// Reload is decode-first: the old texture is only destroyed once the new
// image data decoded successfully, so a bad path or corrupt file leaves the
// previous texture rendering.
type TextureSlot struct {
	texture rl.Texture2D
	loaded  bool
}

// Reload replaces the slot from the image at path. On decode failure the
// slot is left untouched.
func (t *TextureSlot) Reload(path string) {
	img, err := convert.LoadImageFile(path)
	if err != nil {
		utils.Error("Texture: could not load %s: %v (keeping previous texture)", path, err)
		return
	}
	defer rl.UnloadImage(img)

	if t.loaded {
		rl.UnloadTexture(t.texture)
	}

	t.texture = rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(t.texture, rl.FilterBilinear)
	rl.SetTextureWrap(t.texture, rl.TextureWrapClamp)
	t.loaded = true

	utils.Info("Texture: loaded %s (%dx%d)", path, t.texture.Width, t.texture.Height)
}

// ID returns the GPU handle to bind, or 0 when nothing has loaded yet (the
// render batch then falls back to its built-in white texel).
func (t *TextureSlot) ID() uint32 {
	if !t.loaded {
		return 0
	}
	return t.texture.ID
}

func (t *TextureSlot) Unload() {
	if t.loaded {
		rl.UnloadTexture(t.texture)
		t.loaded = false
	}
}
