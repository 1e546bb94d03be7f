package metrics

// Accuracy is the percentage of observations whose predicted class equals the
// actual class. Observe expects class labels, not probabilities.
type Accuracy struct {
	correct int
	samples int
}

func NewAccuracy() *Accuracy {
	return &Accuracy{}
}

func (a *Accuracy) Name() string { return "accuracy" }

func (a *Accuracy) Observe(predicted, actual float64) {
	a.samples++
	if predicted == actual {
		a.correct++
	}
}

// Value is in [0, 100].
func (a *Accuracy) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return float64(a.correct) / float64(a.samples) * 100
}

func (a *Accuracy) Reset() {
	a.correct = 0
	a.samples = 0
}
