package render

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridExtent     = 80
	gridMinorStep  = 5
	gridMajorStep  = 25
	gridDepth      = -30 // behind every shape
	gridMinorAlpha = 40
	gridMajorAlpha = 90
	axisLineAlpha  = 160
)

// drawGrid draws a grid on the XY plane behind the shapes, facing the camera,
// with major/minor lines and the X and Y axes.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(96, 96, 96, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 180, 80, axisLineAlpha)

	var start, end rl.Vector3
	start.Z, end.Z = gridDepth, gridDepth
	for v := -gridExtent; v <= gridExtent; v += gridMinorStep {
		c := major
		if v%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y = float32(v), -gridExtent
		end.X, end.Y = float32(v), gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y = -gridExtent, float32(v)
		end.X, end.Y = gridExtent, float32(v)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y = -gridExtent, 0
	end.X, end.Y = gridExtent, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y = 0, -gridExtent
	end.X, end.Y = 0, gridExtent
	rl.DrawLine3D(start, end, axisY)
}
