package metrics

import "sync"

// Call é uma chamada registrada pelo Recorder.
type Call struct {
	Type  string
	Name  string
	Value float64
	Tags  []string
}

// Recorder guarda as chamadas em memória. Útil em testes.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func (r *Recorder) record(kind, name string, value float64, tags []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Type: kind, Name: name, Value: value, Tags: tags})
	return nil
}

func (r *Recorder) Count(name string, value float64, tags []string) error {
	return r.record("count", name, value, tags)
}

func (r *Recorder) Gauge(name string, value float64, tags []string) error {
	return r.record("gauge", name, value, tags)
}

func (r *Recorder) Histogram(name string, value float64, tags []string) error {
	return r.record("histogram", name, value, tags)
}

// Calls devolve uma cópia das chamadas com o nome informado.
func (r *Recorder) Calls(name string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Call
	for _, c := range r.calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
