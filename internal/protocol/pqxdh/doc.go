// Package pqxdh implements the initiator side of the plain pqXDH key
// agreement, used as the reference the combined variants are timed against.
//
// # Overview
//
// The initiator holds an identity and an ephemeral X25519 key pair and the
// responder's published keys:
//   - Identity key (X25519)
//   - Signed pre-key (X25519)
//   - Optional one-time pre-key (X25519)
//   - Optional Kyber1024 pre-key
//
// # Flow
//
//  1. Start the secret material with 32 bytes of 0xFF.
//  2. Append DH(IKa, SPKb), DH(EKa, IKb), DH(EKa, SPKb)[, DH(EKa, OPKb)].
//  3. If a Kyber1024 pre-key is present, append the encapsulated secret.
//  4. HKDF the material to 64 bytes with the classical or hybrid label.
//
// Building a session record (ratchet keys, chain keys) is left out: only the
// shared key computation is reproduced.
//
// # Errors
//
// DH failures (low-order peer keys) and KEM failures abort the computation;
// no partial key is ever returned.
package pqxdh
