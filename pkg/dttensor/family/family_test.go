package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Model
	}{
		{"FluxFilename", "flux1-dev-q8p.gguf", Flux},
		{"SDXLFilename", "sd_xl_base_1.0.safetensors", SDXL},
		{"SD3Filename", "sd3_medium_incl_clips.safetensors", SD3},
		{"FluxVersion", "flux1", Flux},
		{"SDXLVersion", "sdxlBase", SDXL},
		{"SD15Filename", "v1-5-pruned-emaonly.safetensors", SD1},
		{"HunyuanFilename", "hunyuan_video_720_fp8.safetensors", HunyuanVideo},
		{"QwenFilename", "qwen-image-v1.gguf", Qwen},
		{"Wan21Filename", "wan_v2.1_1.3b_480p.safetensors", Wan21},
		{"Wan22Filename", "wan2.2_ti2v_5b.safetensors", Wan22},
		{"Wan22BeforeWan", "my-wan2.2-model", Wan22},
		{"ZImageFilename", "z-image-turbo.safetensors", ZImage},
		{"CaseInsensitive", "FLUX1", Flux},
		{"Whitespace", "  sd3  ", SD3},
		{"Unknown", "some-checkpoint.bin", Unknown},
		{"Empty", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.in))
		})
	}
}

func TestLatentChannels(t *testing.T) {
	tests := []struct {
		model Model
		want  int
	}{
		{SD1, 4},
		{SDXL, 4},
		{SD3, 16},
		{Flux, 16},
		{HunyuanVideo, 16},
		{Qwen, 16},
		{ZImage, 16},
		{Wan21, 16},
		{Wan22, 48},
		{Unknown, 16},
	}

	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.model.LatentChannels())
		})
	}
}

func TestMatrixFor(t *testing.T) {
	// 4 and 48 channels dispatch without family branching
	m4, ok := MatrixFor(4, Unknown)
	require.True(t, ok)
	assert.Equal(t, 4, m4.Channels())

	m48, ok := MatrixFor(48, SD1)
	require.True(t, ok)
	assert.Equal(t, 48, m48.Channels())

	// 16 channels branch on family
	flux, ok := MatrixFor(16, Flux)
	require.True(t, ok)
	assert.Equal(t, 16, flux.Channels())

	for _, m := range []Model{ZImage, Unknown} {
		got, ok := MatrixFor(16, m)
		require.True(t, ok)
		assert.Same(t, flux, got, "%s should preview as Flux", m)
	}

	wan, ok := MatrixFor(16, Wan21)
	require.True(t, ok)
	qwen, ok := MatrixFor(16, Qwen)
	require.True(t, ok)
	assert.Same(t, wan, qwen, "Qwen shares the Wan 2.1 matrix")

	sd3, ok := MatrixFor(16, SD3)
	require.True(t, ok)
	assert.NotSame(t, flux, sd3)

	hv, ok := MatrixFor(16, HunyuanVideo)
	require.True(t, ok)
	assert.NotSame(t, flux, hv)

	// anything else has no projection
	for _, c := range []int{0, 1, 2, 3, 5, 8, 32} {
		_, ok := MatrixFor(c, Flux)
		assert.False(t, ok, "channels=%d", c)
	}
}

func TestProjectBiasOnly(t *testing.T) {
	m, ok := MatrixFor(16, Flux)
	require.True(t, ok)

	r, g, b := m.Project(make([]float32, 16))
	assert.Equal(t, m.Bias[0], r)
	assert.Equal(t, m.Bias[1], g)
	assert.Equal(t, m.Bias[2], b)
}
