// Package audit appends a best-effort JSONL trail of state-changing
// operations (encrypt, decrypt, generate) to the user data dir.
//
// The log lives outside any secrets repository on purpose: a file inside
// the repository would itself show up as an unencrypted secret during
// check scans. Audit failures are swallowed; no operation ever fails
// because its audit record could not be written.
package audit
