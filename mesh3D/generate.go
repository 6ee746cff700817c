package mesh3D

import (
	"fmt"

	"github.com/notargets/teslamesh/geometry2D"
	"github.com/notargets/teslamesh/topology2D"
	"github.com/notargets/teslamesh/types"
	"github.com/notargets/teslamesh/utils"
)

// Config carries everything needed to build one mesh.
type Config struct {
	Valve         geometry2D.ValveParams
	Policy        topology2D.ResolutionPolicy
	Density       float64
	HalfThickness float64
	// EmptyFrontAndBack adds the layer faces as an empty patch
	EmptyFrontAndBack bool
}

func (cfg Config) Validate() error {
	if err := cfg.Valve.Validate(); err != nil {
		return err
	}
	if !utils.IsFinite(cfg.Density) || cfg.Density <= 0 {
		return types.NewConfigError("Density", cfg.Density, "must be positive and finite")
	}
	if !utils.IsFinite(cfg.HalfThickness) || cfg.HalfThickness <= 0 {
		return types.NewConfigError("HalfThickness", cfg.HalfThickness, "must be positive and finite")
	}
	return nil
}

// Generate solves the section, assembles its blocks and extrudes them.
func Generate(cfg Config) (m *Mesh, err error) {
	if err = cfg.Validate(); err != nil {
		return
	}
	var (
		sec  *geometry2D.Section
		topo *topology2D.Topology
	)
	if sec, err = geometry2D.SolveSection(cfg.Valve); err != nil {
		return nil, fmt.Errorf("solving %s bend section: %w", cfg.Valve.Variant, err)
	}
	if topo, err = topology2D.Assemble(sec, cfg.Policy, cfg.Density); err != nil {
		return nil, fmt.Errorf("assembling %s bend blocks: %w", cfg.Valve.Variant, err)
	}
	if m, err = Extrude(topo, cfg.HalfThickness); err != nil {
		return nil, err
	}
	if cfg.EmptyFrontAndBack {
		m.AddFrontAndBack()
	}
	if err = m.Validate(); err != nil {
		return nil, err
	}
	utils.Logger().Debug("generated mesh",
		"vertices", len(m.Vertices), "blocks", len(m.Blocks), "arcs", len(m.Arcs), "cells", m.NumCells())
	return
}
