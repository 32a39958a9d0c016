// Package synth generates simple audio cues and encodes them as WAV.
package synth

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Channels is the channel count of every generated sample (stereo)
const Channels = 2

// Tone describes a decaying sine beep
type Tone struct {
	Freq     float64 // Hz
	Duration float64 // seconds
	Volume   float64 // peak amplitude in [0,1]
	Decay    float64 // exponential envelope rate
}

// Beep renders the tone as interleaved 16-bit stereo PCM
func Beep(tone Tone, sampleRate int) []int16 {
	n := int(float64(sampleRate) * tone.Duration)
	samples := make([]int16, 0, n*Channels)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-tone.Decay * t)
		v := int16(math.Sin(2*math.Pi*tone.Freq*t) * math.MaxInt16 * tone.Volume * envelope)
		for ch := 0; ch < Channels; ch++ {
			samples = append(samples, v)
		}
	}
	return samples
}

// Sweep renders a beep whose frequency slides linearly from one tone's Freq to to
func Sweep(tone Tone, to float64, sampleRate int) []int16 {
	n := int(float64(sampleRate) * tone.Duration)
	samples := make([]int16, 0, n*Channels)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		freq := tone.Freq + (to-tone.Freq)*float64(i)/float64(n)
		phase += 2 * math.Pi * freq / float64(sampleRate)
		envelope := math.Exp(-tone.Decay * t)
		v := int16(math.Sin(phase) * math.MaxInt16 * tone.Volume * envelope)
		for ch := 0; ch < Channels; ch++ {
			samples = append(samples, v)
		}
	}
	return samples
}

// WAV wraps interleaved stereo samples in a canonical 44-byte RIFF header
func WAV(samples []int16, sampleRate int) []byte {
	const bitsPerSample = 16
	dataSize := len(samples) * 2
	blockAlign := Channels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(Channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
