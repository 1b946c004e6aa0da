package censor

import (
	"encoding/binary"
	"fmt"
	"os"
)

// ReadPCM loads a raw s16le mono track from disk as samples.
func ReadPCM(path string) ([]int16, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pcm: %w", err)
	}
	return DecodeSamples(data), nil
}

// WritePCM stores samples as a raw s16le mono track.
func WritePCM(path string, samples []int16) error {
	if err := os.WriteFile(path, EncodeSamples(samples), 0644); err != nil {
		return fmt.Errorf("write pcm: %w", err)
	}
	return nil
}

// DecodeSamples converts raw little-endian bytes into samples. A
// trailing odd byte is dropped.
func DecodeSamples(data []byte) []int16 {
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return samples
}

// EncodeSamples converts samples back to raw little-endian bytes.
func EncodeSamples(samples []int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return data
}
