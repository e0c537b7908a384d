// Package observe provides observability primitives for benchmark runs.
//
// It is a pure instrumentation library: no replay logic, no transport, no
// I/O beyond exporter setup. The bench package wires the observer into its
// trial loop; the cache itself stays free of any telemetry.
package observe
