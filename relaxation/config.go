// SPDX-License-Identifier: MIT

package relaxation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/relax/sweep"
)

// Method names a smoother in declarative configuration.
type Method string

const (
	MethodGaussSeidel         Method = "gauss_seidel"
	MethodSOR                 Method = "sor"
	MethodGaussSeidelIndexed  Method = "gauss_seidel_indexed"
	MethodJacobi              Method = "jacobi"
	MethodPolynomial          Method = "polynomial"
	MethodKaczmarzJacobi      Method = "kaczmarz_jacobi"
	MethodKaczmarzRichardson  Method = "kaczmarz_richardson"
	MethodKaczmarzGaussSeidel Method = "kaczmarz_gauss_seidel"
)

// Methods lists every known smoother name in a fixed order.
func Methods() []Method {
	return []Method{
		MethodGaussSeidel, MethodSOR, MethodGaussSeidelIndexed, MethodJacobi,
		MethodPolynomial, MethodKaczmarzJacobi, MethodKaczmarzRichardson, MethodKaczmarzGaussSeidel,
	}
}

// Config selects one smoother and its parameters, as a multigrid level
// would name its pre- or post-smoother:
//
//	method: sor
//	sweep: symmetric
//	iterations: 2
//	omega: 1.2
//
// Fields a method does not use are ignored. Iterations 0 is a valid no-op,
// so build configurations from DefaultConfig rather than a zero literal.
type Config struct {
	Method       Method          `yaml:"method"`
	Sweep        sweep.Direction `yaml:"sweep"`
	Iterations   int             `yaml:"iterations"`
	Omega        float64         `yaml:"omega"`
	OmegaImag    float64         `yaml:"omega_imag,omitempty"`
	Coefficients []float64       `yaml:"coefficients,omitempty"`
	Indices      []int           `yaml:"indices,omitempty"`
}

// DefaultConfig returns method with one forward iteration and ω = 1.
func DefaultConfig(method Method) Config {
	return Config{
		Method:     method,
		Sweep:      DefaultSweep,
		Iterations: DefaultIterations,
		Omega:      DefaultOmega,
	}
}

// Validate checks the configuration without touching any system.
func (c Config) Validate() error {
	known := false
	for _, m := range Methods() {
		if c.Method == m {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("method %q: %w", c.Method, ErrInvalidConfig)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations %d: %w: %w", c.Iterations, ErrInvalidConfig, sweep.ErrNegativeIterations)
	}
	if c.Sweep > sweep.Symmetric {
		return fmt.Errorf("sweep %s: %w: %w", c.Sweep, ErrInvalidConfig, sweep.ErrUnknownDirection)
	}
	if !finite(c.Omega) || !finite(c.OmegaImag) {
		return fmt.Errorf("omega must be finite: %w", ErrInvalidConfig)
	}
	if c.Method == MethodPolynomial && len(c.Coefficients) == 0 {
		return fmt.Errorf("polynomial needs coefficients: %w", ErrInvalidConfig)
	}
	if c.Method == MethodGaussSeidelIndexed && c.Indices == nil {
		return fmt.Errorf("gauss_seidel_indexed needs indices: %w", ErrInvalidConfig)
	}

	return nil
}

// Options converts the configuration into the functional options consumed
// by the smoother functions.
func (c Config) Options() []Option {
	return []Option{
		WithIterations(c.Iterations),
		WithSweep(c.Sweep),
		WithComplexOmega(complex(c.Omega, c.OmegaImag)),
	}
}

// WorkFactor estimates the cost of one application in units of one
// operator-sized sweep: ×2 for a symmetric sweep, ×2 for the Kaczmarz family
// (it touches A and Aᴴ), × iterations, × the polynomial degree.
func (c Config) WorkFactor() float64 {
	f := float64(c.Iterations)
	if c.Sweep == sweep.Symmetric && sequential(c.Method) {
		f *= 2
	}
	switch c.Method {
	case MethodKaczmarzJacobi, MethodKaczmarzRichardson, MethodKaczmarzGaussSeidel:
		f *= 2
	case MethodPolynomial:
		f *= float64(len(c.Coefficients))
	}

	return f
}

// Pair is the pre- and post-smoother of one multigrid level.
type Pair struct {
	Pre  Config `yaml:"presmoother"`
	Post Config `yaml:"postsmoother"`
}

// DefaultPair returns a symmetric Gauss-Seidel sweep before and after the
// coarse-grid correction.
func DefaultPair() Pair {
	c := DefaultConfig(MethodGaussSeidel)
	c.Sweep = sweep.Symmetric

	return Pair{Pre: c, Post: c}
}

// WorkFactor is the combined cost of the pre- and post-smoother.
func (p Pair) WorkFactor() float64 {
	return p.Pre.WorkFactor() + p.Post.WorkFactor()
}

// ParseConfig decodes one smoother configuration from YAML. Keys absent from
// data keep the values of DefaultConfig; unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// LoadConfig is ParseConfig over a reader.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig("")
	if err := decodeStrict(r, &c); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return c, nil
}

// ParsePair decodes a presmoother/postsmoother pair from YAML. A side that is
// absent keeps DefaultPair's symmetric Gauss-Seidel; a side that is present
// starts from DefaultConfig of its method.
func ParsePair(data []byte) (Pair, error) {
	var raw struct {
		Pre  yaml.Node `yaml:"presmoother"`
		Post yaml.Node `yaml:"postsmoother"`
	}
	if err := decodeStrict(bytes.NewReader(data), &raw); err != nil {
		return Pair{}, fmt.Errorf("ParsePair: %w", err)
	}

	p := DefaultPair()
	for _, side := range []struct {
		node *yaml.Node
		dst  *Config
	}{{&raw.Pre, &p.Pre}, {&raw.Post, &p.Post}} {
		if side.node.Kind == 0 {
			continue
		}
		// Re-encode the side so it is decoded as strictly as the top level.
		buf, err := yaml.Marshal(side.node)
		if err != nil {
			return Pair{}, fmt.Errorf("ParsePair: %w: %w", ErrInvalidConfig, err)
		}
		c := DefaultConfig("")
		if err = decodeStrict(bytes.NewReader(buf), &c); err != nil {
			return Pair{}, fmt.Errorf("ParsePair: %w", err)
		}
		if err = c.Validate(); err != nil {
			return Pair{}, fmt.Errorf("ParsePair: %w", err)
		}
		*side.dst = c
	}

	return p, nil
}

// decodeStrict decodes one YAML document, rejecting unknown keys. An empty
// document leaves dst untouched.
func decodeStrict(r io.Reader, dst any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// sequential reports whether method honours the sweep direction.
func sequential(m Method) bool {
	switch m {
	case MethodGaussSeidel, MethodSOR, MethodGaussSeidelIndexed, MethodKaczmarzGaussSeidel:
		return true
	}

	return false
}
