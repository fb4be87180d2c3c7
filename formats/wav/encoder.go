// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/zhanglipku/stimgen/sound"
	"github.com/zhanglipku/stimgen/utils"
)

// outputBitDepth is the fixed bit depth for saved stimuli.
const outputBitDepth = 16

// Save writes buf as a mono 16-bit PCM WAV file at path, creating any
// missing parent directories.
//
// The data is written to a temporary file in the target directory and
// atomically renamed into place on success, so no exit path leaves a
// truncated or corrupt file at the final name.
func Save(buf *sound.Buffer, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	if err := Encode(tmp, buf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("moving %s into place: %w", path, err)
	}

	return nil
}

// Encode serializes buf to w as mono 16-bit PCM WAV at the buffer's
// sample rate. Samples outside [-1, 1] clamp.
func Encode(w io.WriteSeeker, buf *sound.Buffer) error {
	if buf.SampleRate <= 0 {
		return sound.ErrInvalidSampleRate
	}

	data := make([]int, len(buf.Samples))
	for i, s := range buf.Samples {
		data[i] = int(utils.Float64ToInt16(s))
	}

	enc := gowav.NewEncoder(w, buf.SampleRate, outputBitDepth, 1, 1)
	intBuf := &goaudio.IntBuffer{
		Data: data,
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  buf.SampleRate,
		},
		SourceBitDepth: outputBitDepth,
	}

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("writing PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV container: %w", err)
	}

	return nil
}
