package render

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Screenshot renders the current frame into an offscreen target and writes
// it to path as a 4-channel PNG, overwriting any existing file. Rendering
// offscreen instead of reading the swap chain keeps the capture independent
// of vsync timing and buffer swaps.
func (r *Renderer) Screenshot(path string, cursorX, cursorY float32) error {
	width := int32(rl.GetScreenWidth())
	height := int32(rl.GetScreenHeight())

	target := rl.LoadRenderTexture(width, height)
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	r.DrawFrame(cursorX, cursorY)
	rl.EndTextureMode()

	img := rl.LoadImageFromTexture(target.Texture)
	defer rl.UnloadImage(img)

	// Render textures are stored bottom-up.
	rl.ImageFlipVertical(img)

	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("could not export %s", path)
	}
	return nil
}
