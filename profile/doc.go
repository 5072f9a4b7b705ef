// Package profile reads calibration profiles from YAML.
//
// A profile captures everything needed to reproduce a calibration run:
//
//	detector: {alpha: 3.5, beta: 18, gamma: 4, delta: 0.001}
//	edge_trim: 10
//	skip_empty_segments: false
//	log_level: info
//	reference:
//	  - {current: -80.0e-6, voltage: 1.89701}
//	  - {current: -70.0e-6, voltage: 1.67418}
//
// Fields left out of the document keep their Default values. Unknown fields
// are rejected.
package profile
