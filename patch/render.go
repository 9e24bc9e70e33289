package patch

import (
	"github.com/golang/glog"
	"github.com/synaptecltd/wavetable"
)

// Rendered pairs a patch with the table generated from it.
type Rendered struct {
	Patch *Patch
	Table wavetable.Table
}

// Bank holds rendered tables keyed by patch name.
type Bank map[string]*Rendered

// Fills one table for each active patch in the container. Patches that are Off are skipped.
func Render(c Container) Bank {
	bank := make(Bank, len(c))
	for _, key := range c.Keys() {
		p := c[key]
		if p == nil || p.Off {
			glog.V(1).Infof("skipping patch %s", key)
			continue
		}

		r := &Rendered{Patch: p}
		p.Generate(&r.Table)
		bank[key] = r

		glog.V(1).Infof("rendered patch %s: shape %s, volume scale %.0f, id %s", key, p.Name(), p.VolumeScale(), p.GetID())
	}
	return bank
}
