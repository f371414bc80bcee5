// Package benchmark runs repeated timing rounds over the key agreements.
//
// Each round draws fresh handshake parameters, times every agreement once,
// and feeds the timings to the metrics collectors. A run ends with one
// summary per agreement and, if a store is configured, a saved report.
package benchmark
