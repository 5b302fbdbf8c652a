package sound

import (
	"encoding/binary"
	"math"
	"time"
)

// Note is one segment of a cue melody.
type Note struct {
	Freq float64 // Hz; 0 is a rest
	Dur  time.Duration
}

// CueTones are the melodies played for each cue.
var CueTones = map[string][]Note{
	CueCatch: {
		{Freq: 880, Dur: 60 * time.Millisecond},
		{Freq: 1320, Dur: 60 * time.Millisecond},
	},
	CueLevelComplete: {
		{Freq: 523.25, Dur: 120 * time.Millisecond},
		{Freq: 659.25, Dur: 120 * time.Millisecond},
		{Freq: 783.99, Dur: 120 * time.Millisecond},
		{Freq: 1046.5, Dur: 240 * time.Millisecond},
	},
}

const (
	bytesPerFrame = 4 // 16-bit stereo
	amplitude     = 0.3
	fadeFrames    = 64
)

// Tone synthesizes a sine wave as signed 16-bit little-endian stereo PCM.
// The first and last samples fade to avoid clicks.
func Tone(freq float64, dur time.Duration, sampleRate int) []byte {
	n := int(dur.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*bytesPerFrame)
	fade := fadeFrames
	if fade > n/2 {
		fade = n / 2
	}

	for i := 0; i < n; i++ {
		var v float64
		if freq > 0 {
			v = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
		}
		env := 1.0
		if fade > 0 {
			switch {
			case i < fade:
				env = float64(i) / float64(fade)
			case i >= n-fade:
				env = float64(n-1-i) / float64(fade)
			}
		}
		s := int16(v * env * amplitude * math.MaxInt16)
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint16(buf[off:], uint16(s))
		binary.LittleEndian.PutUint16(buf[off+2:], uint16(s))
	}
	return buf
}

// Melody concatenates the tones of a note list.
func Melody(notes []Note, sampleRate int) []byte {
	var out []byte
	for _, n := range notes {
		out = append(out, Tone(n.Freq, n.Dur, sampleRate)...)
	}
	return out
}

// Render returns the PCM for a named cue, or nil for an unknown name.
func Render(name string, sampleRate int) []byte {
	notes, ok := CueTones[name]
	if !ok {
		return nil
	}
	return Melody(notes, sampleRate)
}
