package config

import "math"

var Presets = map[string]map[string]*Config{
	"taylor-green": {
		"decay": {
			Flow: "taylor-green", Operator: "navier-stokes",
			Tau: 0.01, M: 64, P: 2 * math.Pi, Re: 100, T: 5.0, OutputTau: 0.1,
			FlowParams: FlowConfig{Amplitude: 1.0, Cells: 1},
		},
		"lattice": {
			Flow: "taylor-green", Operator: "navier-stokes",
			Tau: 0.005, M: 128, P: 2 * math.Pi, Re: 1000, T: 10.0, OutputTau: 0.1,
			FlowParams: FlowConfig{Amplitude: 2.0, Cells: 4},
		},
	},
	"vortex-pair": {
		"dipole": {
			Flow: "vortex-pair", Operator: "navier-stokes",
			Tau: 0.005, M: 128, P: 2 * math.Pi, Re: 5000, T: 10.0, OutputTau: 0.1,
			FlowParams: FlowConfig{Amplitude: 5.0, Radius: 0.4, Separation: 1.2},
		},
		"wide": {
			Flow: "vortex-pair", Operator: "navier-stokes",
			Tau: 0.005, M: 128, P: 2 * math.Pi, Re: 5000, T: 15.0, OutputTau: 0.1,
			FlowParams: FlowConfig{Amplitude: 4.0, Radius: 0.5, Separation: 2.5},
		},
	},
	"shear-layer": {
		"rollup": {
			Flow: "shear-layer", Operator: "navier-stokes",
			Tau: 0.002, M: 128, P: 2 * math.Pi, Re: 10000, T: 8.0, OutputTau: 0.1,
			FlowParams: FlowConfig{Amplitude: 5.0, Thickness: 0.25, Perturbation: 0.1},
		},
		"thin": {
			Flow: "shear-layer", Operator: "navier-stokes",
			Tau: 0.001, M: 256, P: 2 * math.Pi, Re: 20000, T: 6.0, OutputTau: 0.1,
			FlowParams: FlowConfig{Amplitude: 6.0, Thickness: 0.1, Perturbation: 0.05},
		},
	},
	"random": {
		"turbulence": {
			Flow: "random", Operator: "navier-stokes",
			Tau: 0.002, M: 256, P: 2 * math.Pi, Re: 5000, T: 20.0, OutputTau: 0.5, Seed: 1,
			FlowParams: FlowConfig{Amplitude: 8.0, KMin: 10, KMax: 30},
		},
		"quick": {
			Flow: "random", Operator: "navier-stokes",
			Tau: 0.01, M: 64, P: 2 * math.Pi, Re: 1000, T: 2.0, OutputTau: 0.1, Seed: 7,
			FlowParams: FlowConfig{Amplitude: 5.0, KMin: 3, KMax: 8},
		},
		"sqg": {
			Flow: "random", Operator: "sqg",
			Tau: 0.002, M: 256, P: 2 * math.Pi, Re: 5000, T: 10.0, OutputTau: 0.2, Seed: 1,
			FlowParams: FlowConfig{Amplitude: 4.0, KMin: 5, KMax: 20},
		},
	},
}

func GetPreset(flow, preset string) *Config {
	flowPresets, ok := Presets[flow]
	if !ok {
		return nil
	}
	cfg, ok := flowPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(flow string) []string {
	flowPresets, ok := Presets[flow]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(flowPresets))
	for name := range flowPresets {
		names = append(names, name)
	}
	return names
}
