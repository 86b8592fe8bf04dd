package main

import (
	"flag"
	"os"

	"shaderview/internal/config"
	"shaderview/internal/render"
	"shaderview/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const screenshotPath = "screenshot.png"

func main() {
	confPath := flag.String("conf", "render.conf", "Path to the render config file")
	width := flag.Int("width", 1600, "Initial window width")
	height := flag.Int("height", 900, "Initial window height")
	title := flag.String("title", "shaderview", "Window title")
	fps := flag.Int("fps", 60, "Target frames per second")
	checker := flag.Int("checker", 0, "Replace the full-screen quad with an NxN checkerboard")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	if *debugFlag {
		utils.CurrentLevel = utils.LevelDebug
	}

	// Fail before opening a window when the config is unreadable.
	if _, err := config.Load(*confPath); err != nil {
		utils.Error("Config: could not load %s: %v", *confPath, err)
		os.Exit(1)
	}

	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(*width), int32(*height), *title)
	defer rl.CloseWindow()

	// Escape is reserved for shader authors; quitting is Q or the window
	// close button.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(*fps))

	renderer := render.NewRenderer()
	defer renderer.Unload()

	if *checker > 0 {
		renderer.Batch.PushCheckerBoard(*checker)
	} else {
		renderer.Batch.PushQuad(
			render.Vec2{X: -1, Y: -1},
			render.Vec2{X: 1, Y: 1},
			render.Color{R: 1, G: 1, B: 1, A: 1},
		)
	}

	renderer.Reload(*confPath)

	utils.Info("Ready. F5 reload, F6 screenshot, Space pause, Left/Right step, Q quit")

	for !rl.WindowShouldClose() {
		if handleKeys(renderer, *confPath) {
			break
		}

		cursor := cursorPosition()

		rl.BeginDrawing()
		renderer.DrawFrame(cursor.X, cursor.Y)
		rl.EndDrawing()

		renderer.Clock.Advance(rl.GetTime())
	}
}

// handleKeys processes the hotkeys for one frame. Returns true when the user
// asked to quit.
func handleKeys(renderer *render.Renderer, confPath string) bool {
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		return true
	case rl.IsKeyPressed(rl.KeyF5):
		utils.Info("Reloading %s", confPath)
		renderer.Reload(confPath)
	case rl.IsKeyPressed(rl.KeyF6):
		cursor := cursorPosition()
		if err := renderer.Screenshot(screenshotPath, cursor.X, cursor.Y); err != nil {
			utils.Error("Screenshot: %v", err)
		} else {
			utils.Info("Screenshot: wrote %s", screenshotPath)
		}
	case rl.IsKeyPressed(rl.KeySpace):
		renderer.Clock.TogglePause()
		if renderer.Clock.Paused() {
			utils.Info("Clock: paused at %.2fs", renderer.Clock.Now())
		} else {
			utils.Info("Clock: running")
		}
	case rl.IsKeyPressed(rl.KeyLeft):
		renderer.Clock.Step(-1)
	case rl.IsKeyPressed(rl.KeyRight):
		renderer.Clock.Step(1)
	}
	return false
}

// cursorPosition reports the cursor in window coordinates. While the window
// is focused raylib tracks it directly; unfocused, the X server's global
// pointer is translated into window space so the mouse uniform keeps
// streaming.
func cursorPosition() rl.Vector2 {
	if rl.IsWindowFocused() {
		return rl.GetMousePosition()
	}

	globalX, globalY, err := utils.GlobalMousePosition()
	if err != nil {
		utils.Debug("Mouse: global query failed: %v", err)
		return rl.GetMousePosition()
	}

	windowPos := rl.GetWindowPosition()
	return rl.Vector2{
		X: float32(globalX) - windowPos.X,
		Y: float32(globalY) - windowPos.Y,
	}
}
