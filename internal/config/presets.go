package config

import "sort"

// CameraPresets are named eye positions for the figure and terminal views.
var CameraPresets = map[string]CameraConfig{
	"default": {X: 1.5, Y: 1.5, Z: 1.5},
	"top":     {X: 0.01, Y: 0.01, Z: 2.5},
	"front":   {X: 0, Y: -2.5, Z: 0.3},
	"side":    {X: 2.5, Y: 0, Z: 0.3},
	"low":     {X: 1.8, Y: 1.8, Z: 0.4},
}

func GetPreset(name string) (CameraConfig, bool) {
	eye, ok := CameraPresets[name]
	return eye, ok
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(CameraPresets))
	for name := range CameraPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
