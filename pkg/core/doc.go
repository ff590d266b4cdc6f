// Package core defines the shared language of the enginegen system.
//
// This package contains:
//   - Geometry entities (Engine, Bank, Camshaft, FiringOrder)
//   - Solver output (Timing)
//   - Parameter records with their documented defaults (Params, Vehicle,
//     Transmission, Ignition)
//   - Layout enumerations (Style, TieBreak)
//   - Error kinds shared by every stage of the pipeline
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
