// Package pqmudh implements the initiator side of pqMuDH, a pqXDH variant
// that folds the handshake's Diffie-Hellman agreements into a single
// simultaneous multi-scalar multiplication.
//
// # Overview
//
// Instead of three or four independent X25519 agreements, the initiator
// weights each private key with a randomizer derived from the handshake
// transcript and computes one combined point
//
//	(a1·ik + a3·ek)·SPKb + (a2·ek)·IKb [+ (a4·ek)·OPKb]
//
// on the Edwards form of the responder's keys. Both agreements against SPKb
// collapse into one exponent, and all terms share one chain of doublings.
//
// # Flow
//
//  1. Hash IKa, IKb, EKa, SPKb[, OPKb] into a SHA-256 transcript.
//  2. Derive a_i = SHA-256(transcript || i) from a snapshot of the state.
//  3. Form the exponents and reduce them modulo the group order l.
//  4. Lift SPKb, IKb[, OPKb] from Montgomery u to Edwards points (sign 0).
//  5. Run the left-to-right double-and-add over bit 255 down to bit 0.
//  6. Append the compressed point (and a Kyber1024 secret) to the 0xFF
//     marker and HKDF it to 64 bytes.
//
// AgreeWithPrecomputation replaces step 5 by a 4-bit fixed-window walk over
// per-point tables of small multiples. Its output is bit-identical.
//
// The combined key is not equal to the plain pqXDH key: the two are distinct
// protocols compared for cost only. None of this code is constant-time.
package pqmudh
