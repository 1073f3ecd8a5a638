// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Catalog owns every Output a run produces and fans each recorded
// (realization, motion) pair out to them (spec §4.5/§4.6). Kinds marked
// motion-independent in kinds.go are recorded once per realization, at
// motion index 0, and reused for every motion's slot at Finalize time.
//
// Record/Disable serialize on mu: site.Controller's worker pool calls
// them concurrently across realizations, and an Output's first writer
// lazily sets its shared Abscissa (e.g. the canonical depth axis), which
// is otherwise an unsynchronized read-modify-write race across workers.
type Catalog struct {
	Outputs        []*Output
	NumRealization int
	NumMotion      int
	Enabled        []bool // indexed realization*NumMotion+motion; false slots are excluded at Finalize

	mu sync.Mutex
}

// NewCatalog builds an empty Catalog sized for nRealizations x nMotions.
// kinds lists every Kind to produce, motion-dependent or not; nSoilTypes curve
// outputs (ModulusCurve and DampingCurve, one pair per soil type) are
// added automatically.
func NewCatalog(kinds []Kind, nRealizations, nMotions, nSoilTypes int) *Catalog {
	c := &Catalog{NumRealization: nRealizations, NumMotion: nMotions}
	c.Enabled = make([]bool, nRealizations*nMotions)
	for i := range c.Enabled {
		c.Enabled[i] = true
	}
	for _, k := range kinds {
		c.Outputs = append(c.Outputs, NewOutput(k, c.slotsFor(k)))
	}
	for st := 0; st < nSoilTypes; st++ {
		for _, k := range []Kind{ModulusCurve, DampingCurve} {
			o := NewOutput(k, nRealizations)
			o.SoilTypeIndex = st
			c.Outputs = append(c.Outputs, o)
		}
	}
	return c
}

func (c *Catalog) slotsFor(k Kind) int {
	if meta[k].motionIndependent {
		return c.NumRealization
	}
	return c.NumRealization * c.NumMotion
}

func (c *Catalog) slot(k Kind, realization, motionIdx int) int {
	if meta[k].motionIndependent {
		return realization
	}
	return realization*c.NumMotion + motionIdx
}

// Record fans one converged (realization, motion) result out to every
// Output, tagging failures against the pair's Enabled flag rather than
// aborting the run (spec §4.6: a single failed realization must not sink
// the rest).
func (c *Catalog) Record(realization, motionIdx int, ctx *Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := realization*c.NumMotion + motionIdx
	if idx >= len(c.Enabled) {
		return chk.Err("out: (realization=%d, motion=%d) out of range", realization, motionIdx)
	}
	if !c.Enabled[idx] {
		return nil
	}
	var failed error
	for _, o := range c.Outputs {
		if o.motionIndependent() && motionIdx != 0 {
			continue
		}
		slot := c.slot(o.Kind, realization, motionIdx)
		if err := o.Record(slot, ctx); err != nil {
			failed = err
			io.Pf("out: realization %d motion %d: %s record failed: %v\n", realization, motionIdx, o.Kind, err)
		}
	}
	if failed != nil {
		c.Enabled[idx] = false
	}
	return nil
}

// Disable marks a (realization, motion) pair as failed so Finalize
// excludes its rows from every statistic, without removing already
// recorded data from other, independent Outputs.
func (c *Catalog) Disable(realization, motionIdx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := realization*c.NumMotion + motionIdx
	if idx >= 0 && idx < len(c.Enabled) {
		c.Enabled[idx] = false
	}
}

// Finalize reduces every Output's recorded rows to per-abscissa
// statistics. Must be called once, after every realization x motion pair
// has been recorded or disabled.
func (c *Catalog) Finalize() {
	for _, o := range c.Outputs {
		enabled := c.enabledFor(o.Kind)
		o.Finalize(enabled)
	}
}

// enabledFor projects the full (realization, motion) Enabled grid down to
// the slot indexing a given Kind actually uses.
func (c *Catalog) enabledFor(k Kind) []bool {
	if !meta[k].motionIndependent {
		return c.Enabled
	}
	out := make([]bool, c.NumRealization)
	for r := 0; r < c.NumRealization; r++ {
		out[r] = c.Enabled[c.slot(k, r, 0)]
	}
	return out
}

// WriteCSV renders every finalized Output as one CSV block (abscissa,
// mean, +-one-stdev band), concatenated with a header line naming the
// Kind, in the teacher's io.Sf-built string-assembly style.
func (c *Catalog) WriteCSV() string {
	var b strings.Builder
	for _, o := range c.Outputs {
		if len(o.Abscissa) == 0 {
			continue
		}
		name := o.Kind.String()
		if o.Kind == ModulusCurve || o.Kind == DampingCurve {
			name = io.Sf("%s (type %d)", name, o.SoilTypeIndex)
		}
		b.WriteString(io.Sf("# %s\n", name))
		b.WriteString("abscissa,mean,lower,upper\n")
		for i, x := range o.Abscissa {
			b.WriteString(io.Sf("%g,%g,%g,%g\n", x, o.Mean[i], o.Lower[i], o.Upper[i]))
		}
	}
	return b.String()
}
