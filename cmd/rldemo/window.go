package main

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/rl"
	"github.com/gogpu/rl/integration/ggcanvas"
	"github.com/gogpu/rl/native"
)

func init() {
	rootCmd.AddCommand(windowCmd)
	windowCmd.Flags().IntVar(&windowFrames, `frames`, 0, `stop after this many frames (0 runs until the window is closed)`)
	windowCmd.Flags().IntVar(&windowFPS, `fps`, 60, `target frame rate`)
	windowCmd.Flags().StringVar(&windowTexture, `texture`, ``, `image file drawn next to the shapes`)
	windowCmd.Flags().BoolVar(&windowResizable, `resizable`, false, `allow resizing the window`)
}

var (
	windowFrames    int
	windowFPS       int
	windowTexture   string
	windowResizable bool
)

var windowCmd = &cobra.Command{
	Use:   `window [title]`,
	Short: `open a window and draw shapes, text and a gg canvas`,
	Long: `open a window and draw shapes, text and a gg canvas.

Arrow keys or WASD move the ball, a left click drops it under the cursor,
the mouse wheel resizes it and space switches to a 3D view.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := `rldemo`
		if len(args) == 1 {
			title = args[0]
		}
		run(func() error { return windowFunc(title) })
	},
}

func windowFunc(title string) error {
	opts := []rl.Option{rl.WithTitle(title), rl.WithTargetFPS(windowFPS), rl.WithFlags(rl.FlagVSync)}
	if windowResizable {
		opts = append(opts, rl.WithFlags(rl.FlagResizable))
	}
	win, th, err := rl.Open(800, 450, opts...)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	defer win.Close()

	var tex *rl.Texture
	if windowTexture != `` {
		if tex, err = win.LoadTexture(windowTexture); err != nil {
			return errors.Wrap(err, 0)
		}
		defer tex.Close()
	}

	canvas, err := ggcanvas.New(win, 200, 200)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	defer canvas.Close()
	if err := canvas.UseGoFont(18); err != nil {
		return errors.Wrap(err, 0)
	}

	target, err := win.LoadRenderTexture(160, 90)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	defer target.Close()

	p := newPlayer()
	for frame := 0; !win.ShouldClose(); frame++ {
		if windowFrames > 0 && frame >= windowFrames {
			break
		}
		p.update(win)
		angle := float64(frame) * math.Pi / 90
		_ = canvas.Draw(func(cc *gg.Context) { drawDial(cc, angle) })

		if err := win.DrawTo(th, target, func(d *rl.DrawHandle) error {
			d.ClearBackground(rl.DarkBlue)
			return d.DrawText(fmt.Sprintf("frame %d", frame), 8, 8, 20, rl.Gold)
		}); err != nil {
			return errors.Wrap(err, 0)
		}

		if err := win.Draw(th, func(d *rl.DrawHandle) error {
			if p.view3D {
				return drawScene3D(d, p)
			}
			if err := drawScene(d, win, canvas, target, tex); err != nil {
				return err
			}
			d.DrawCircle(int(p.pos.X), int(p.pos.Y), p.radius, rl.Red)
			return nil
		}); err != nil {
			return errors.Wrap(err, 0)
		}
	}
	return nil
}

func drawScene(d *rl.DrawHandle, win *rl.Window, canvas *ggcanvas.Canvas, target *rl.RenderTexture, tex *rl.Texture) error {
	d.ClearBackground(rl.RayWhite)
	if err := d.DrawText("Congrats! You created your first window!", 190, 200, 20, rl.LightGray); err != nil {
		return err
	}
	d.DrawCircle(80, 80, 40, rl.Maroon)
	d.DrawRectangleLines(20, 300, 120, 80, rl.DarkGreen)
	d.DrawLine(0, 440, 800, 440, rl.Gray)

	err := d.Scissor(560, 20, 220, 220, func(d *rl.DrawHandle) error {
		return canvas.RenderToPosition(d, 570, 30)
	})
	if err != nil {
		return err
	}

	// Render textures are stored upside down.
	w, h := float32(target.Width()), float32(target.Height())
	d.DrawTexturePro(target, rl.Rect(0, 0, w, -h), rl.Rect(20, 20+h, w, h), rl.Vec2(0, 0), 0, nil)

	if tex != nil {
		err := d.Blend(native.BlendAdditive, func(d *rl.DrawHandle) error {
			d.DrawTexture(tex, 300, 260, nil)
			return nil
		})
		if err != nil {
			return err
		}
	}

	cam := rl.Camera2D{Offset: rl.Vec2(400, 120), Zoom: 1, Rotation: float32(win.Frames() % 360)}
	err = d.Mode2D(cam, func(d *rl.DrawHandle) error {
		d.DrawRectangle(-20, -20, 40, 40, rl.Orange)
		return nil
	})
	if err != nil {
		return err
	}
	d.DrawFPS(10, 420)
	return nil
}

// player is the ball steered from the keyboard and mouse.
type player struct {
	pos    rl.Vector2
	radius float32
	view3D bool
}

const playerSpeed = 4

func newPlayer() *player {
	return &player{pos: rl.Vec2(400, 330), radius: 16}
}

// update applies the input polled during the last frame.
func (p *player) update(win *rl.Window) {
	held := func(keys ...native.KeyboardKey) bool {
		for _, k := range keys {
			if win.IsKeyDown(k) {
				return true
			}
		}
		return false
	}
	if held(native.KeyRight, native.KeyD) {
		p.pos.X += playerSpeed
	}
	if held(native.KeyLeft, native.KeyA) {
		p.pos.X -= playerSpeed
	}
	if held(native.KeyDown, native.KeyS) {
		p.pos.Y += playerSpeed
	}
	if held(native.KeyUp, native.KeyW) {
		p.pos.Y -= playerSpeed
	}
	if win.IsMouseButtonPressed(native.MouseButtonLeft) {
		p.pos = win.MousePosition()
	}
	p.radius = min(max(p.radius+win.MouseWheel()*2, 4), 80)
	if win.IsKeyPressed(native.KeySpace) {
		p.view3D = !p.view3D
	}
	w, h := win.Size()
	p.pos.X = min(max(p.pos.X, 0), float32(w))
	p.pos.Y = min(max(p.pos.Y, 0), float32(h))
}

// drawScene3D shows the ball as a sphere above a grid, the screen mapped
// onto the XZ plane.
func drawScene3D(d *rl.DrawHandle, p *player) error {
	d.ClearBackground(rl.RayWhite)
	cam := rl.Camera3D{
		Position:   rl.Vec3(0, 10, 10),
		Up:         rl.Vec3(0, 1, 0),
		Fovy:       45,
		Projection: native.CameraPerspective,
	}
	err := d.Mode3D(cam, func(d *rl.DrawHandle) error {
		d.DrawGrid(10, 1)
		d.DrawCube(rl.Vec3(0, 0.5, 0), 1, 1, 1, rl.Gold)
		d.DrawCubeWires(rl.Vec3(0, 0.5, 0), 1, 1, 1, rl.Maroon)
		pos := rl.Vec3(p.pos.X/80-5, p.radius/40, p.pos.Y/45-5)
		d.DrawSphere(pos, p.radius/40, rl.Red)
		return nil
	})
	if err != nil {
		return err
	}
	return d.DrawText("space: back to 2D", 10, 10, 20, rl.DarkGray)
}

func drawDial(cc *gg.Context, angle float64) {
	w, h := float64(cc.Width()), float64(cc.Height())
	cc.SetRGBA(0, 0, 0, 0)
	cc.Clear()
	cc.SetRGB(0.15, 0.15, 0.2)
	cc.DrawCircle(w/2, h/2, w/2-4)
	cc.Fill()
	cc.SetRGB(1, 0.8, 0.2)
	cc.SetLineWidth(4)
	cc.DrawLine(w/2, h/2, w/2+math.Cos(angle)*(w/2-12), h/2+math.Sin(angle)*(h/2-12))
	cc.Stroke()
	cc.SetRGB(1, 1, 1)
	cc.DrawStringAnchored("gg", w/2, h-30, 0.5, 0.5)
}
