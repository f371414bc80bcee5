package domain

import (
	interfaces "pqmudh/internal/domain/interfaces"
	types "pqmudh/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	X25519Public        = types.X25519Public
	X25519Private       = types.X25519Private
	KeyPair             = types.KeyPair
	KEMPublicKey        = types.KEMPublicKey
	HandshakeParameters = types.HandshakeParameters
	DerivedKey          = types.DerivedKey
	Variant             = types.Variant
	Timing              = types.Timing
	Summary             = types.Summary
	Report              = types.Report
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Agreement   = interfaces.Agreement
	ReportStore = interfaces.ReportStore
)

// Variant names re-exported from the types subpackage.
const (
	VariantPQXDH             = types.VariantPQXDH
	VariantPQMuDH            = types.VariantPQMuDH
	VariantPQMuDHPrecomputed = types.VariantPQMuDHPrecomputed
)
