// Package family classifies diffusion models into latent families and
// carries the per-family projection matrices used to turn latent
// tensors into approximate RGB previews.
package family

import "strings"

// Model identifies the latent space a tensor was produced in. It is a
// pure classification value: detect it per decode call and discard it.
type Model int

const (
	Unknown Model = iota
	SD1
	SDXL
	SD3
	Flux
	HunyuanVideo
	Qwen
	ZImage
	Wan21
	Wan22
)

var modelNames = map[Model]string{
	Unknown:      "unknown",
	SD1:          "sd1",
	SDXL:         "sdxl",
	SD3:          "sd3",
	Flux:         "flux",
	HunyuanVideo: "hunyuanVideo",
	Qwen:         "qwen",
	ZImage:       "zImage",
	Wan21:        "wan21",
	Wan22:        "wan22",
}

func (m Model) String() string {
	if s, ok := modelNames[m]; ok {
		return s
	}
	return "unknown"
}

// LatentChannels returns the channel count of the family's latent space.
// Unknown defaults to 16, the most common modern width.
func (m Model) LatentChannels() int {
	switch m {
	case SD1, SDXL:
		return 4
	case Wan22:
		return 48
	default:
		return 16
	}
}

// exact version strings, lowercased. Checked before any substring work.
var exactVersions = map[string]Model{
	"v1":           SD1,
	"v2":           SD1,
	"sd1":          SD1,
	"sd15":         SD1,
	"sdxl":         SDXL,
	"sdxlbase":     SDXL,
	"sdxlrefiner":  SDXL,
	"ssd1b":        SDXL,
	"sd3":          SD3,
	"sd3large":     SD3,
	"flux":         Flux,
	"flux1":        Flux,
	"hunyuanvideo": HunyuanVideo,
	"qwen":         Qwen,
	"qwenimage":    Qwen,
	"zimage":       ZImage,
	"wan21":        Wan21,
	"wanv21":       Wan21,
	"wan22":        Wan22,
	"wanv22":       Wan22,
}

// Detect classifies a model filename or version tag. An exact
// (case-insensitive) version match wins; otherwise substring heuristics
// run most-specific first, so "wan2.2" is tested before "wan" and
// "sdxl" before the bare "xl" fallback.
func Detect(name string) Model {
	s := strings.ToLower(strings.TrimSpace(name))
	if m, ok := exactVersions[s]; ok {
		return m
	}

	has := func(subs ...string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}

	switch {
	case has("wan2.2", "wan22", "wan_2.2", "wan-2.2", "wan 2.2"):
		return Wan22
	case has("wan"):
		return Wan21
	case has("hunyuan"):
		return HunyuanVideo
	case has("qwen"):
		return Qwen
	case has("z-image", "zimage", "z_image"):
		return ZImage
	case has("flux"):
		return Flux
	case has("sd3", "sd_3", "sd-3", "stable-diffusion-3", "stablediffusion3"):
		return SD3
	case has("sdxl", "sd_xl", "sd-xl", "xl"):
		return SDXL
	case has("sd15", "sd_1", "sd-1", "v1-5", "v1.5", "sd1"):
		return SD1
	default:
		return Unknown
	}
}
