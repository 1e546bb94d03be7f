package metrics

// MeanSquaredError is the average squared residual.
type MeanSquaredError struct {
	sum     float64
	samples int
}

func NewMeanSquaredError() *MeanSquaredError {
	return &MeanSquaredError{}
}

func (m *MeanSquaredError) Name() string { return "loss" }

func (m *MeanSquaredError) Observe(predicted, actual float64) {
	e := predicted - actual
	m.sum += e * e
	m.samples++
}

func (m *MeanSquaredError) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanSquaredError) Reset() {
	m.sum = 0
	m.samples = 0
}
