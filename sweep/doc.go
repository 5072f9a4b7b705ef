// Package sweep loads the raw voltage samples of a transimpedance amplifier
// sweep.
//
// A sweep log holds one record per line, four whitespace-delimited tokens per
// record. The third token is the ADC reading in millivolts:
//
//	[00:01:12] adc: 1897 mV
//
// Load converts every record to volts and returns them in file order. The
// position of a sample in the returned slice is its Index, which the segment
// detector uses as a time axis. A single malformed record fails the whole
// load; there is no partial result.
package sweep
