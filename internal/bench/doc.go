// Package bench times the key agreement variants.
//
// SetupParameters draws a fresh handshake from an RNG, OneShot runs every
// agreement once over it and Stats summarises repeated samples.
package bench
