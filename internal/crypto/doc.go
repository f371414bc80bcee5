// Package crypto exposes the primitives the handshake variants are built on.
//
// Contents
//
//   - X25519 key generation from a caller RNG, clamping and Diffie–Hellman
//     (GenerateX25519, DH)
//   - Kyber1024 key generation, encapsulation and decapsulation driven by a
//     caller RNG (GenerateKyber1024, EncapsulateKyber1024, DecapsulateKyber1024)
//   - Short public-key fingerprints for log lines (Fingerprint)
//
// # Notes
//
// Every randomized function takes an io.Reader rather than reading a global
// source, so a deterministic reader reproduces the same keys and
// encapsulations.
package crypto
