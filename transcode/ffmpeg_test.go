package transcode

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFfmpegArgs(t *testing.T) {
	args := ffmpegArgs("/tmp/in.mp4", "/tmp/out.wav")

	assert.Equal(t, []string{"-i", "/tmp/in.mp4", "-ac", "1", "-ar", "16000", "/tmp/out.wav"}, args)
}

func TestToWAVMissingInput(t *testing.T) {
	// ffmpeg exits non-zero for a missing input; a missing ffmpeg binary
	// is a spawn failure. Both surface as the same wrapped error.
	out, err := toWAV(context.Background(), "/nonexistent/input.mp4", t.TempDir())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ffmpeg failed")
	assert.Empty(t, out)
}

func TestToWAVOutputPath(t *testing.T) {
	dir := t.TempDir()
	// Even on failure the chosen output path would live under dir with a
	// .wav suffix; verify the naming scheme via the args builder.
	args := ffmpegArgs("in.webm", dir+"/abc.wav")
	assert.True(t, strings.HasSuffix(args[len(args)-1], ".wav"))
}
