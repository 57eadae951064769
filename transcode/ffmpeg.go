// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package transcode normalizes uploaded recordings with ffmpeg.
//
// Video files and audio in odd containers are converted to a mono 16 kHz
// WAV file before transcription. ffmpeg is invoked as a subprocess found
// on PATH; a spawn failure and a non-zero exit are reported identically.
package transcode

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	ffmpegBinary = "ffmpeg"
	sampleRate   = "16000"
	channels     = "1"
)

// ToWAV converts the recording at inputPath to a mono 16 kHz WAV file in
// the system temp directory and returns the output path. The caller owns
// the output file and must remove it when done.
func ToWAV(ctx context.Context, inputPath string) (string, error) {
	return toWAV(ctx, inputPath, os.TempDir())
}

func toWAV(ctx context.Context, inputPath, tempDir string) (string, error) {
	outputPath := filepath.Join(tempDir, uuid.NewString()+".wav")

	cmd := exec.CommandContext(ctx, ffmpegBinary,
		ffmpegArgs(inputPath, outputPath)...)
	if err := cmd.Run(); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("ffmpeg failed: %w", err)
	}

	return outputPath, nil
}

// ffmpegArgs builds the argument list for an input/output pair.
func ffmpegArgs(inputPath, outputPath string) []string {
	return []string{"-i", inputPath, "-ac", channels, "-ar", sampleRate, outputPath}
}
