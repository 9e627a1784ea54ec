package gpg

import (
	"bufio"
	"bytes"
	"strings"
)

// parseColonListing parses gpg --with-colons key listing output.
//
// Each public key starts a "pub" record; the first "fpr" record after it is
// the master key fingerprint. Subkeys produce their own "sub"/"fpr" pairs
// which must not overwrite the master fingerprint, so only the first fpr per
// key is taken.
func parseColonListing(out []byte) []Key {
	var keys []Key
	var current *Key
	fprTaken := false

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ":")
		switch fields[0] {
		case "pub":
			if current != nil {
				keys = append(keys, *current)
			}
			current = &Key{}
			fprTaken = false
			if len(fields) > 4 {
				current.KeyID = fields[4]
			}
		case "fpr":
			if current != nil && !fprTaken && len(fields) > 9 {
				current.Fingerprint = fields[9]
				fprTaken = true
			}
		case "uid":
			if current != nil && len(fields) > 9 {
				current.UserIDs = append(current.UserIDs, fields[9])
			}
		}
	}
	if current != nil {
		keys = append(keys, *current)
	}
	return keys
}
