// The timing package tracks per-frame delta time and a rolling FPS average.
// FrameStart/FrameEnd must wrap each frame on the main loop.
package timing

import (
	"time"
)

const fpsSamples = 64

var (
	frameStart time.Time
	dt         float32 = 1.0 / 60

	fpsRing  [fpsSamples]float32
	fpsIndex int
	fpsCount int
)

func Init() {
	frameStart = time.Now()
}

func FrameStart() {
	frameStart = time.Now()
}

func FrameEnd() {

	dt = float32(time.Since(frameStart).Seconds())
	if dt <= 0 {
		return
	}

	fpsRing[fpsIndex] = 1 / dt
	fpsIndex = (fpsIndex + 1) % fpsSamples
	if fpsCount < fpsSamples {
		fpsCount++
	}
}

// DT returns the duration of the last frame in seconds
func DT() float32 {
	return dt
}

func GetAvgFPS() float32 {

	if fpsCount == 0 {
		return 0
	}

	sum := float32(0)
	for i := 0; i < fpsCount; i++ {
		sum += fpsRing[i]
	}

	return sum / float32(fpsCount)
}
