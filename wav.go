package metronome

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Wav renders the buffer into the bytes of a .wav file. If pcm16 is true, the
// samples are converted to 16-bit signed integers, otherwise they are stored
// as IEEE float32.
func (buffer AudioBuffer) Wav(pcm16 bool) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := buffer.WriteWav(buf, pcm16); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteWav writes the buffer as a .wav file to w.
func (buffer AudioBuffer) WriteWav(w io.Writer, pcm16 bool) error {
	buf := new(bytes.Buffer)
	wavHeader(2*len(buffer), pcm16, buf)
	if err := buffer.writeRaw(pcm16, buf); err != nil {
		return fmt.Errorf("WriteWav failed: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("could not write wav data: %w", err)
	}
	return nil
}

func (buffer AudioBuffer) writeRaw(pcm16 bool, buf *bytes.Buffer) error {
	var err error
	if pcm16 {
		int16data := make([][2]int16, len(buffer))
		for i, v := range buffer {
			int16data[i][0] = floatToInt16(v[0])
			int16data[i][1] = floatToInt16(v[1])
		}
		err = binary.Write(buf, binary.LittleEndian, int16data)
	} else {
		err = binary.Write(buf, binary.LittleEndian, buffer)
	}
	if err != nil {
		return fmt.Errorf("could not binary write data to binary buffer: %w", err)
	}
	return nil
}

func floatToInt16(v float32) int16 {
	return int16(min(max(int(v*math.MaxInt16), math.MinInt16), math.MaxInt16))
}

// wavHeader writes a wave header for either float32 or int16 .wav file. The
// length is the total number of samples (L + R), and the audio is assumed to
// be stereo at SampleRate. Refer to:
// http://www-mmsp.ece.mcgill.ca/Documents/AudioFormats/WAVE/WAVE.html
func wavHeader(numSamples int, pcm16 bool, buf *bytes.Buffer) {
	const numChannels = 2
	var bytesPerSample, chunkSize, fmtChunkSize, waveFormat int
	factChunk := !pcm16
	if pcm16 {
		bytesPerSample = 2
		chunkSize = 36 + bytesPerSample*numSamples
		fmtChunkSize = 16
		waveFormat = 1 // PCM
	} else {
		bytesPerSample = 4
		chunkSize = 50 + bytesPerSample*numSamples
		fmtChunkSize = 18
		waveFormat = 3 // IEEE float
	}
	fields := []any{
		[4]byte{'R', 'I', 'F', 'F'}, uint32(chunkSize),
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '}, uint32(fmtChunkSize),
		uint16(waveFormat),
		uint16(numChannels),
		uint32(SampleRate),
		uint32(SampleRate * numChannels * bytesPerSample), // avgBytesPerSec
		uint16(numChannels * bytesPerSample),              // blockAlign
		uint16(8 * bytesPerSample),                        // bits per sample
	}
	if fmtChunkSize > 16 {
		fields = append(fields, uint16(0)) // size of extension
	}
	if factChunk {
		fields = append(fields, [4]byte{'f', 'a', 'c', 't'}, uint32(4), uint32(numSamples/numChannels))
	}
	fields = append(fields, [4]byte{'d', 'a', 't', 'a'}, uint32(bytesPerSample*numSamples))
	for _, f := range fields {
		binary.Write(buf, binary.LittleEndian, f)
	}
}
