// SPDX-License-Identifier: MIT

package worksheet

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// Output is the result of one executed step.
type Output struct {
	Index int    // zero-based step index
	Op    string // operation name
	As    string // binding name, empty when the result was not stored
	Value Value
}

// Report collects the outputs of a worksheet run in step order.
type Report struct {
	Name    string
	Outputs []Output
}

// Runner evaluates worksheets. A Runner holds only configuration, so one
// instance may evaluate several worksheets concurrently.
type Runner struct {
	opts Options
}

// NewRunner builds a Runner from functional options.
func NewRunner(opts ...Option) *Runner {
	return &Runner{opts: gatherOptions(opts...)}
}

// stepErrorf wraps err with the step index and operation name.
func stepErrorf(idx int, op string, err error) error {
	return fmt.Errorf("step %d (%s): %w", idx, op, err)
}

// Run evaluates ws step by step.
// MAIN DESCRIPTION:
//   - Declared vectors and matrices are built first (sorted by name), then each
//     step resolves its operands, dispatches to the operation table and
//     optionally binds the result under Step.As.
//
// Behavior highlights:
//   - ctx is checked before every step; cancellation returns ctx.Err() along
//     with the outputs produced so far.
//   - Steps never mutate a value another binding can observe: in-place
//     operations rebind their operand to a modified copy.
//   - Each step is logged at debug level with its duration.
//   - A nil ctx is treated as context.Background().
//
// Errors:
//   - ErrEmptyWorksheet, ErrDuplicateName, ErrUnknownOp, ErrUnknownName,
//     ErrBadArgs, and any vector/matrix sentinel, wrapped with the step index.
func (r *Runner) Run(ctx context.Context, ws *Worksheet) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if ws == nil {
		return nil, ErrEmptyWorksheet
	}
	if err := ws.Validate(); err != nil {
		return nil, err
	}
	vars, err := newEnv(ws)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ws.Name, err)
	}

	log := r.opts.logger.With("worksheet", ws.Name)
	rep := &Report{Name: ws.Name, Outputs: make([]Output, 0, len(ws.Steps))}
	for i, s := range ws.Steps {
		if err = ctx.Err(); err != nil {
			return rep, err
		}
		start := time.Now()
		v, err := r.exec(vars, s)
		if err != nil {
			log.DebugContext(ctx, "step failed", "step", i, "op", s.Op, "error", err)
			return rep, stepErrorf(i, s.Op, err)
		}
		if s.As != "" {
			vars[s.As] = v
		}
		log.DebugContext(ctx, "step completed",
			"step", i,
			"op", s.Op,
			"kind", v.Kind.String(),
			"as", s.As,
			"elapsed", time.Since(start),
		)
		rep.Outputs = append(rep.Outputs, Output{Index: i, Op: s.Op, As: s.As, Value: v})
	}

	return rep, nil
}

// exec resolves operands and dispatches one step.
func (r *Runner) exec(vars env, s Step) (Value, error) {
	fn, ok := opTable[s.Op]
	if !ok {
		return Value{}, fmt.Errorf("%q: %w", s.Op, ErrUnknownOp)
	}
	args, err := vars.lookup(s.Args)
	if err != nil {
		return Value{}, err
	}

	return fn(&call{step: s, args: args, vars: vars, eps: r.opts.eps})
}

// env maps binding names to values.
type env map[string]Value

// newEnv builds the declared vectors and matrices.
func newEnv(ws *Worksheet) (env, error) {
	e := make(env, len(ws.Vectors)+len(ws.Matrices))
	for _, name := range sortedKeys(ws.Vectors) {
		e[name] = VectorValue(vector.FromSlice(ws.Vectors[name]))
	}
	for _, name := range sortedKeys(ws.Matrices) {
		m, err := matrix.FromRows(ws.Matrices[name])
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		e[name] = MatrixValue(m)
	}

	return e, nil
}

// lookup resolves names in order.
func (e env) lookup(names []string) ([]Value, error) {
	out := make([]Value, len(names))
	for i, n := range names {
		v, ok := e[n]
		if !ok {
			return nil, fmt.Errorf("%q: %w", n, ErrUnknownName)
		}
		out[i] = v
	}

	return out, nil
}

// Header returns "[i] op" or "[i] op -> as".
func (o Output) Header() string {
	if o.As == "" {
		return fmt.Sprintf("[%d] %s", o.Index, o.Op)
	}

	return fmt.Sprintf("[%d] %s -> %s", o.Index, o.Op, o.As)
}
