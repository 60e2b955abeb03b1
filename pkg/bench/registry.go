package bench

import "fmt"

// Func is a benchmark body. It must perform its work iterations times
// before returning; the harness calls it once per measurement.
type Func func(iterations int)

// Info describes one registered benchmark.
//
// Setup and Teardown are optional and run outside the timed region of every
// sample. A nil Run marks the benchmark as unsupported on this platform: it
// is still listed and indexed, but never measured.
type Info struct {
	Name     string
	Tags     []Tag
	Setup    func()
	Run      Func
	Teardown func()
}

// Supported reports whether the benchmark has a runnable body.
func (i Info) Supported() bool {
	return i.Run != nil
}

// TagSet returns the benchmark's tags as a set.
func (i Info) TagSet() TagSet {
	return NewTagSet(i.Tags...)
}

// Registry is an ordered set of benchmarks with unique names.
//
// A Registry is built once at startup and passed to whoever needs it; there
// is no package-level default.
type Registry struct {
	benchmarks []Info
	names      map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register appends info to the registry.
func (r *Registry) Register(info Info) error {
	if info.Name == "" {
		return ErrEmptyName
	}

	if _, exists := r.names[info.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateBenchmark, info.Name)
	}

	r.names[info.Name] = struct{}{}
	r.benchmarks = append(r.benchmarks, info)

	return nil
}

// MustRegister is like [Registry.Register] but panics on error.
func (r *Registry) MustRegister(infos ...Info) {
	for _, info := range infos {
		if err := r.Register(info); err != nil {
			panic(err)
		}
	}
}

// All returns the benchmarks in registration order. The returned slice is a
// copy.
func (r *Registry) All() []Info {
	out := make([]Info, len(r.benchmarks))
	copy(out, r.benchmarks)

	return out
}

// Len returns the number of registered benchmarks.
func (r *Registry) Len() int {
	return len(r.benchmarks)
}
