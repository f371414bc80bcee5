// Package domain defines the handshake data model and the contracts shared
// across the benchmark. It contains plain types and interfaces only.
package domain
