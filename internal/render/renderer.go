package render

import (
	"os"

	"shaderview/internal/config"
	"shaderview/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer is the single owner of every GPU resource in the process: the
// vertex batch it feeds to raylib's render batch, the shader program and the
// texture slot. All of its methods must run on the render thread with a live
// window; nothing here is safe to call concurrently, and nothing needs to
// be.
type Renderer struct {
	Batch    *Batch
	Programs *ProgramCache
	Texture  *TextureSlot
	Clock    *Clock
}

// NewRenderer requires an initialized window/GL context.
func NewRenderer() *Renderer {
	return &Renderer{
		Batch:    NewBatch(),
		Programs: NewProgramCache(),
		Texture:  &TextureSlot{},
		Clock:    NewClock(rl.GetTime()),
	}
}

// Reload is the hot-reload entry point: re-read the render config, then
// reload the texture, then the shader program, in that order. A config file
// that cannot be read is fatal; without resource paths there is nothing left
// to run.
func (r *Renderer) Reload(confPath string) {
	cfg, err := config.Load(confPath)
	if err != nil {
		utils.Error("Config: could not load %s: %v", confPath, err)
		os.Exit(1)
	}

	r.Texture.Reload(cfg.TexturePath)
	r.Programs.Reload(cfg.VertPath, cfg.FragPath)
}

// MouseUniform transforms a cursor position from window coordinates
// (top-left origin) to the bottom-left-origin pixels shader authors expect.
func MouseUniform(cursorX, cursorY, fbHeight float32) (float32, float32) {
	return cursorX, fbHeight - cursorY
}

// DrawFrame clears the framebuffer with the program cache's clear color
// and, if a program is loaded, uploads the per-frame uniforms and draws the
// current batch through it. With the cache in the failed state only the red
// clear is visible. Must run between BeginDrawing and EndDrawing (or inside
// a texture mode).
func (r *Renderer) DrawFrame(cursorX, cursorY float32) {
	rl.ClearBackground(r.Programs.ClearColor())

	if r.Programs.Failed() {
		return
	}

	width := float32(rl.GetScreenWidth())
	height := float32(rl.GetScreenHeight())
	mouseX, mouseY := MouseUniform(cursorX, cursorY, height)

	r.Programs.SetUniforms(width, height, float32(r.Clock.Now()), mouseX, mouseY)

	rl.BeginShaderMode(r.Programs.Program())
	r.flush()
	rl.EndShaderMode()
}

// flush submits the live portion of the batch, in push order, to raylib's
// render batch, which owns the vertex buffer and its position/UV/color
// attribute streams on the GPU side.
func (r *Renderer) flush() {
	rl.SetTexture(r.Texture.ID())
	rl.Begin(rl.Triangles)
	for _, v := range r.Batch.Vertices() {
		rl.Color4ub(
			colorByte(v.Color.R),
			colorByte(v.Color.G),
			colorByte(v.Color.B),
			colorByte(v.Color.A),
		)
		rl.TexCoord2f(v.UV.X, v.UV.Y)
		rl.Vertex2f(v.Pos.X, v.Pos.Y)
	}
	rl.End()
	rl.SetTexture(0)
}

// Unload releases every GPU resource the renderer owns.
func (r *Renderer) Unload() {
	r.Programs.Unload()
	r.Texture.Unload()
}

func colorByte(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
