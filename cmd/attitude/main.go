// attitude - Terminal Attitude Indicator
// Spins a small wireframe UAV through yaw, pitch and roll in your terminal.
//
// Controls:
//
//	Space       - Pause/resume the rotation
//	?           - Toggle HUD overlay (FPS, attitude, telemetry)
//	Esc/Q       - Quit
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}
