package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
	muted       bool
)

// Init initializes the audio system. Callers may ignore the error; every
// Play function is a no-op when initialization failed.
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// SetMuted silences all Play functions without tearing down the speaker.
func SetMuted(m bool) {
	muted = m
}

func canPlay() bool {
	return initialized && !muted
}

// squareWave generates a square wave tone for a retro 8-bit feel.
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// PlayPaddleHit plays the sound for the ball hitting a paddle
func PlayPaddleHit() {
	if !canPlay() {
		return
	}
	speaker.Play(squareWave(880, 50*time.Millisecond))
}

// PlayWallBounce plays the sound for the ball hitting the top/bottom wall
func PlayWallBounce() {
	if !canPlay() {
		return
	}
	speaker.Play(squareWave(440, 30*time.Millisecond))
}

// PlayScore plays a descending tone when a point is scored
func PlayScore() {
	if !canPlay() {
		return
	}
	go func() {
		speaker.Play(squareWave(660, 100*time.Millisecond))
		time.Sleep(100 * time.Millisecond)
		speaker.Play(squareWave(440, 100*time.Millisecond))
		time.Sleep(100 * time.Millisecond)
		speaker.Play(squareWave(330, 150*time.Millisecond))
	}()
}

// PlayWin plays an ascending jingle when the match ends
func PlayWin() {
	if !canPlay() {
		return
	}
	go func() {
		for _, freq := range []float64{440, 554, 660, 880} {
			speaker.Play(squareWave(freq, 120*time.Millisecond))
			time.Sleep(120 * time.Millisecond)
		}
	}()
}
