package policy

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Layer is one dense layer. Weights has one row per output.
type Layer struct {
	Weights    [][]float64 `yaml:"weights"`
	Bias       []float64   `yaml:"bias"`
	Activation string      `yaml:"activation"` // relu, tanh or linear
}

// MLP is a frozen feed-forward network. With one output it jumps when the
// output is positive; with two it picks the larger one.
type MLP struct {
	Scale  []float64 `yaml:"scale"` // Optional per-input divisor
	Layers []Layer   `yaml:"layers"`
}

// LoadMLP reads network weights from a YAML file.
func LoadMLP(path string) (*MLP, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("policy: cannot read weights %s: %w", path, err)
	}
	m, err := ParseMLP(data)
	if err != nil {
		return nil, fmt.Errorf("policy: %s: %w", path, err)
	}
	return m, nil
}

// ParseMLP decodes and validates network weights.
func ParseMLP(data []byte) (*MLP, error) {
	var m MLP
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("cannot parse weights: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *MLP) validate() error {
	if len(m.Layers) == 0 {
		return fmt.Errorf("network has no layers")
	}
	in := m.Inputs()
	if in == 0 {
		return fmt.Errorf("first layer has no inputs")
	}
	if m.Scale != nil && len(m.Scale) != in {
		return fmt.Errorf("scale has %d values, want %d", len(m.Scale), in)
	}
	for i, s := range m.Scale {
		if s == 0 {
			return fmt.Errorf("scale[%d] is zero", i)
		}
	}
	for i, l := range m.Layers {
		if len(l.Weights) == 0 {
			return fmt.Errorf("layer %d has no outputs", i)
		}
		if len(l.Bias) != len(l.Weights) {
			return fmt.Errorf("layer %d: %d biases for %d outputs", i, len(l.Bias), len(l.Weights))
		}
		for j, row := range l.Weights {
			if len(row) != in {
				return fmt.Errorf("layer %d row %d: %d weights, want %d", i, j, len(row), in)
			}
		}
		switch l.Activation {
		case "", "linear", "relu", "tanh":
		default:
			return fmt.Errorf("layer %d: unknown activation %q", i, l.Activation)
		}
		in = len(l.Weights)
	}
	if in != 1 && in != 2 {
		return fmt.Errorf("network has %d outputs, want 1 or 2", in)
	}
	return nil
}

// Inputs returns the observation length the network expects.
func (m *MLP) Inputs() int {
	if len(m.Layers) == 0 || len(m.Layers[0].Weights) == 0 {
		return 0
	}
	return len(m.Layers[0].Weights[0])
}

// Predict runs the network. It panics if obs does not match the input layer.
func (m *MLP) Predict(obs []float64) int {
	checkShape(obs, m.Inputs())

	x := make([]float64, len(obs))
	copy(x, obs)
	for i := range m.Scale {
		x[i] /= m.Scale[i]
	}
	for _, l := range m.Layers {
		x = l.forward(x)
	}

	if len(x) == 1 {
		if x[0] > 0 {
			return 1
		}
		return 0
	}
	if x[1] > x[0] {
		return 1
	}
	return 0
}

func (l Layer) forward(in []float64) []float64 {
	out := make([]float64, len(l.Weights))
	for i, row := range l.Weights {
		sum := l.Bias[i]
		for j, w := range row {
			sum += w * in[j]
		}
		switch l.Activation {
		case "relu":
			sum = math.Max(0, sum)
		case "tanh":
			sum = math.Tanh(sum)
		}
		out[i] = sum
	}
	return out
}
