// Package batch evaluates lists of scalar and vector operations described in
// YAML job files.
package batch

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	yaml "gopkg.in/yaml.v2"
)

var (
	ErrEmptyJob  = errors.New("job has no operations")
	ErrUnknownOp = errors.New("unknown operation")
	ErrArity     = errors.New("wrong number of arguments")
	ErrArgument  = errors.New("invalid argument")
)

// Op is one operation of a job.
// Vector operations read A (and B); Int selects the integer vector family.
// Scalar and demo operations read Args.
type Op struct {
	Op   string    `yaml:"op"`
	Int  bool      `yaml:"int,omitempty"`
	A    []float64 `yaml:"a,omitempty"`
	B    []float64 `yaml:"b,omitempty"`
	Args []float64 `yaml:"args,omitempty"`
}

type Job struct {
	// Workers bounds concurrent evaluation. 0 means runtime.NumCPU().
	Workers int  `yaml:"workers,omitempty"`
	Ops     []Op `yaml:"ops"`
}

func Load(path string) (*Job, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Parse(r)
}

// Parse decodes and validates a job. Unknown keys are rejected.
func Parse(r io.Reader) (*Job, error) {
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	var job Job
	if err := dec.Decode(&job); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyJob
		}
		return nil, fmt.Errorf("decode job: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

// Validate checks operation names, arities and argument types.
// Preconditions that depend on values (zero divisors, zero vectors) are
// reported per operation by Run instead.
func (j *Job) Validate() error {
	if j.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrArgument, j.Workers)
	}
	if len(j.Ops) == 0 {
		return ErrEmptyJob
	}
	for i, op := range j.Ops {
		if err := op.validate(); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
	}
	return nil
}

func (o Op) validate() error {
	def, ok := registry[o.Op]
	if !ok {
		return ErrUnknownOp
	}
	if len(o.Args) < def.minArgs || len(o.Args) > def.maxArgs {
		return fmt.Errorf("%w: args want %d..%d, got %d", ErrArity, def.minArgs, def.maxArgs, len(o.Args))
	}
	vecs := [][]float64{o.A, o.B}
	for i, v := range vecs {
		name := string(rune('a' + i))
		if i >= def.vectors {
			if v != nil {
				return fmt.Errorf("%w: unexpected vector %s", ErrArity, name)
			}
			continue
		}
		if len(v) != 2 {
			return fmt.Errorf("%w: vector %s needs 2 components, got %d", ErrArity, name, len(v))
		}
		if o.Int {
			for _, c := range v {
				if !isInt(c, math.MinInt32, math.MaxInt32) {
					return fmt.Errorf("%w: vector %s component %g is not an int32", ErrArgument, name, c)
				}
			}
		}
	}
	for i, n := range def.intArgs {
		if i >= len(o.Args) {
			continue
		}
		if !isInt(o.Args[i], n.min, n.max) {
			return fmt.Errorf("%w: args[%d] = %g must be an integer in [%g, %g]", ErrArgument, i, o.Args[i], n.min, n.max)
		}
	}
	return nil
}

func isInt(f, lo, hi float64) bool {
	return f == math.Trunc(f) && f >= lo && f <= hi
}
