// Package gpg defines the crypto engine capability and its GnuPG-backed
// implementation.
//
// secnix never does public-key cryptography in process: the operator's
// keyring lives in GnuPG, and recipient bookkeeping (which key ids a file is
// encrypted to, which master key owns a subkey) only makes sense against
// that keyring. The Engine interface captures exactly the operations the
// rest of the tool needs (encrypt to recipients, decrypt with resident
// keys, key lookup, packet listing, and key generation) so components take
// an Engine value instead of reaching for a process-global handle, and tests
// substitute gpgtest.Engine.
//
// CLI is the production implementation. It invokes the gpg binary with
// --batch and --status-fd and parses the two machine-readable formats GnuPG
// guarantees stability for: the status stream (ENC_TO, KEY_CREATED, ...)
// and the --with-colons key listing.
package gpg
