package models

import "time"

type Layer struct {
	Name    string
	Neurons int
	X       float64
}

var MLPLayers = []Layer{
	{"Input", 4, 80},
	{"Hidden 1", 6, 200},
	{"Hidden 2", 4, 320},
	{"Output", 3, 440},
}

// MLPActivations is indexed [step][layer][neuron]. Each step activates one
// more layer.
var MLPActivations = [][][]float64{
	{
		{0.2, 0.7, 0.5, 0.3},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0},
	},
	{
		{0.2, 0.7, 0.5, 0.3},
		{0.8, 0.3, 0.6, 0.2, 0.7, 0.5},
		{0, 0, 0, 0},
		{0, 0, 0},
	},
	{
		{0.2, 0.7, 0.5, 0.3},
		{0.8, 0.3, 0.6, 0.2, 0.7, 0.5},
		{0.9, 0.4, 0.2, 0.7},
		{0, 0, 0},
	},
	{
		{0.2, 0.7, 0.5, 0.3},
		{0.8, 0.3, 0.6, 0.2, 0.7, 0.5},
		{0.9, 0.4, 0.2, 0.7},
		{0.1, 0.7, 0.2},
	},
}

var (
	MLPInputLabels  = []string{"BMI", "Age", "Gender", "Activity"}
	MLPOutputLabels = []string{"Normal", "Overweight", "Obese"}
)

var mlpPhases = []string{
	"Input Processing",
	"Hidden Layer 1 Activation",
	"Hidden Layer 2 Activation",
	"Output Prediction",
}

const (
	MLPInterval     = 1500 * time.Millisecond
	NeuronRadius    = 15.0
	neuronSpacing   = 50.0
	layerMidpoint   = 150.0
	connectionInset = 15.0
	dimConnection   = 0.2
)

// NeuronY centers a layer's neurons around the plot midpoint with constant
// spacing.
func NeuronY(layer, neuron int) float64 {
	n := MLPLayers[layer].Neurons
	total := float64(n-1) * neuronSpacing
	return layerMidpoint - total/2 + float64(neuron)*neuronSpacing
}

type Neuron struct {
	Layer, Index int
	Pos          Point
	Activation   float64
	Opacity      float64
	// Label is set for input and output neurons only.
	Label string
}

type Connection struct {
	Line
	Opacity float64
}

type MultiLayerPerceptron struct{}

func (MultiLayerPerceptron) Name() string            { return "mlp" }
func (MultiLayerPerceptron) Title() string           { return "Multi-Layer Perceptron" }
func (MultiLayerPerceptron) Frames() int             { return len(MLPActivations) }
func (MultiLayerPerceptron) Interval() time.Duration { return MLPInterval }

func (MultiLayerPerceptron) Phase(step int) string {
	step = wrap(step, len(MLPActivations))
	if step >= len(mlpPhases) {
		return mlpPhases[len(mlpPhases)-1]
	}
	return mlpPhases[step]
}

func (MultiLayerPerceptron) Neurons(step int) []Neuron {
	acts := MLPActivations[wrap(step, len(MLPActivations))]
	var out []Neuron
	last := len(MLPLayers) - 1
	for l, layer := range MLPLayers {
		for i := 0; i < layer.Neurons; i++ {
			a := acts[l][i]
			n := Neuron{
				Layer:      l,
				Index:      i,
				Pos:        Point{layer.X, NeuronY(l, i)},
				Activation: a,
				Opacity:    0.3 + 0.7*a,
			}
			switch l {
			case 0:
				n.Label = MLPInputLabels[i]
			case last:
				n.Label = MLPOutputLabels[i]
			}
			out = append(out, n)
		}
	}
	return out
}

// Connections links every neuron to every neuron of the next layer. Links out
// of a layer already reached by the current step are fully opaque.
func (MultiLayerPerceptron) Connections(step int) []Connection {
	step = wrap(step, len(MLPActivations))
	var out []Connection
	for l := 0; l < len(MLPLayers)-1; l++ {
		cur, next := MLPLayers[l], MLPLayers[l+1]
		opacity := dimConnection
		if l < step {
			opacity = 1
		}
		for i := 0; i < cur.Neurons; i++ {
			for j := 0; j < next.Neurons; j++ {
				out = append(out, Connection{
					Line: Line{
						X1: cur.X + connectionInset,
						Y1: NeuronY(l, i),
						X2: next.X - connectionInset,
						Y2: NeuronY(l+1, j),
					},
					Opacity: opacity,
				})
			}
		}
	}
	return out
}

// Params reports the mean activation of each layer.
func (MultiLayerPerceptron) Params(step int) []Param {
	acts := MLPActivations[wrap(step, len(MLPActivations))]
	out := make([]Param, len(MLPLayers))
	for l, layer := range MLPLayers {
		sum := 0.0
		for _, a := range acts[l] {
			sum += a
		}
		out[l] = Param{layer.Name, sum / float64(len(acts[l]))}
	}
	return out
}

// Metric is the index of the most activated output class, or false before
// the output layer fires.
func (MultiLayerPerceptron) Metric(step int) (Param, bool) {
	out := MLPActivations[wrap(step, len(MLPActivations))][len(MLPLayers)-1]
	best, bestVal := -1, 0.0
	for i, a := range out {
		if a > bestVal {
			best, bestVal = i, a
		}
	}
	if best < 0 {
		return Param{}, false
	}
	return Param{"prediction", float64(best)}, true
}

// Prediction names the winning output class, or "" before the output layer
// fires.
func (w MultiLayerPerceptron) Prediction(step int) string {
	p, ok := w.Metric(step)
	if !ok {
		return ""
	}
	return MLPOutputLabels[int(p.Value)]
}
