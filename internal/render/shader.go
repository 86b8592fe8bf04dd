package render

import (
	"os"

	"shaderview/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Uniform names shader authors can declare. A program that omits one simply
// never receives that value; its location resolves to -1 and uploads are
// skipped.
const (
	uniformResolution = "resolution"
	uniformTime       = "time"
	uniformMouse      = "mouse"
)

var (
	errorClearColor  = rl.NewColor(255, 0, 0, 255)
	normalClearColor = rl.NewColor(0, 0, 0, 0)
)

// ProgramCache owns the single live shader program and its resolved uniform
// locations. It is either Loaded (program usable, uniforms resolved) or
// Failed (previous program already destroyed, drawing must be skipped and
// the clear color is the error color).
type ProgramCache struct {
	program       rl.Shader
	failed        bool
	clearColor    rl.Color
	defaultID     uint32
	resolutionLoc int32
	timeLoc       int32
	mouseLoc      int32
}

// NewProgramCache starts in the Failed state; nothing draws until the first
// successful Reload. Requires a live GL context.
//
// Raylib silently substitutes its built-in default program when compilation
// or linking fails, so a deliberately broken probe load captures the ID that
// later reloads must treat as failure.
func NewProgramCache() *ProgramCache {
	p := &ProgramCache{
		failed:     true,
		clearColor: errorClearColor,
	}

	const probeSource = "#version 330\n#error shaderview default program probe\n"
	probe := loadProgram(probeSource, probeSource)
	p.defaultID = probe.ID
	utils.Debug("Shader: default program ID is %d", p.defaultID)

	return p
}

func (p *ProgramCache) Failed() bool {
	return p.failed
}

func (p *ProgramCache) Program() rl.Shader {
	return p.program
}

// ClearColor is what the frame driver clears with: pure red while the last
// reload failed, transparent black otherwise.
func (p *ProgramCache) ClearColor() rl.Color {
	return p.clearColor
}

// Reload destroys the previous program unconditionally, then attempts
// read vertex -> read fragment -> compile+link, short-circuiting on the
// first failure. Between the destroy and a successful link the cache
// reports Failed, so a frame drawn mid-reload draws nothing but the error
// clear color. On success the three uniform locations are re-resolved.
func (p *ProgramCache) Reload(vertPath, fragPath string) {
	p.Unload()
	p.failed = true
	p.clearColor = errorClearColor

	vertSource, err := os.ReadFile(vertPath)
	if err != nil {
		utils.Error("Shader: could not read vertex file %s: %v", vertPath, err)
		return
	}
	fragSource, err := os.ReadFile(fragPath)
	if err != nil {
		utils.Error("Shader: could not read fragment file %s: %v", fragPath, err)
		return
	}

	program := loadProgram(string(vertSource), string(fragSource))
	if program.ID == 0 || program.ID == p.defaultID {
		utils.Error("Shader: failed to build program from %s + %s (see compiler output above)", vertPath, fragPath)
		return
	}

	p.program = program
	p.resolutionLoc = rl.GetShaderLocation(program, uniformResolution)
	p.timeLoc = rl.GetShaderLocation(program, uniformTime)
	p.mouseLoc = rl.GetShaderLocation(program, uniformMouse)
	p.failed = false
	p.clearColor = normalClearColor

	utils.Info("Shader: reloaded %s + %s (ID: %d)", vertPath, fragPath, program.ID)
}

// SetUniforms uploads the per-frame values to the live program. Locations
// the shader does not declare are -1 and skipped.
func (p *ProgramCache) SetUniforms(resX, resY, time, mouseX, mouseY float32) {
	if p.failed {
		return
	}
	if p.resolutionLoc != -1 {
		rl.SetShaderValue(p.program, p.resolutionLoc, []float32{resX, resY}, rl.ShaderUniformVec2)
	}
	if p.timeLoc != -1 {
		rl.SetShaderValue(p.program, p.timeLoc, []float32{time}, rl.ShaderUniformFloat)
	}
	if p.mouseLoc != -1 {
		rl.SetShaderValue(p.program, p.mouseLoc, []float32{mouseX, mouseY}, rl.ShaderUniformVec2)
	}
}

// Unload destroys the live program, if any. The built-in default program is
// never ours to destroy.
func (p *ProgramCache) Unload() {
	if p.program.ID != 0 && p.program.ID != p.defaultID {
		rl.UnloadShader(p.program)
	}
	p.program = rl.Shader{}
}

// loadProgram compiles and links a program from in-memory sources. Raylib
// reports stage compile and link diagnostics through its trace log, which
// the logger bridge forwards. The recover guard mirrors how shader loading
// failures can surface from the binding on some drivers.
func loadProgram(vertSource, fragSource string) (program rl.Shader) {
	defer func() {
		if r := recover(); r != nil {
			utils.Error("Shader: load panicked: %v", r)
			program = rl.Shader{}
		}
	}()
	program = rl.LoadShaderFromMemory(vertSource, fragSource)
	return program
}
