// Package admintoken implements day-scoped admin token generation.
//
// A token proves possession of a shared admin credential for one calendar
// day. It is generated by the operator-side tool and transcribed into the
// paired server's configuration; the server derives the same key from its
// own copy of the credential and decrypts.
//
// Token Construction:
//
//   - Plaintext: {YYYY-MM-DD}_{secret}_xy521 (local calendar date)
//   - Key: SHA-256 of the secret's UTF-8 bytes (32 bytes, AES-256)
//   - IV: 16 bytes from a CSPRNG, fresh per invocation
//   - Padding: PKCS#7 to 16-byte blocks (always at least one pad byte)
//   - Cipher: AES-256-CBC
//   - Encoding: lowercase hex of IV || ciphertext
//
// Security:
//
//   - CBC without a MAC: the token carries no integrity check. This is
//     required for interoperability with the existing verifier and must
//     not be "upgraded" to an AEAD mode unilaterally.
//   - Key derivation is a single SHA-256 pass with no stretching. The
//     scheme is only sound for high-entropy, machine-generated
//     credentials, never human-chosen passwords.
//   - The date stamp uses the local clock, matching the verifier's
//     convention. Deployments that standardize on UTC can inject a UTC
//     clock via Generator.Now.
package admintoken
