package gpg

import (
	"bufio"
	"bytes"
	"strings"
)

// statusPrefix marks machine-readable lines in the gpg status stream.
const statusPrefix = "[GNUPG:] "

// parseStatus extracts a PacketStatus from gpg output containing status
// lines. seen reports whether any status line was present at all, which
// distinguishes "nothing encrypted to anyone" from "gpg never ran".
func parseStatus(out []byte) (status *PacketStatus, seen bool) {
	status = &PacketStatus{}
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line, ok := strings.CutPrefix(scanner.Text(), statusPrefix)
		if !ok {
			continue
		}
		seen = true
		keyword, value, _ := strings.Cut(line, " ")
		switch keyword {
		case "ENC_TO":
			// ENC_TO <long keyid> <keytype> <keylength>
			if fields := strings.Fields(value); len(fields) > 0 {
				status.EncryptedTo = append(status.EncryptedTo, fields[0])
			}
		case "NEED_PASSPHRASE", "MISSING_PASSPHRASE":
			status.NeedPassphrase = true
		case "NEED_PASSPHRASE_SYM":
			status.NeedPassphraseSym = true
		}
	}
	return status, seen
}

// keyCreatedFingerprint extracts the fingerprint from a KEY_CREATED status
// line, or returns "" when none is present.
func keyCreatedFingerprint(out []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line, ok := strings.CutPrefix(scanner.Text(), statusPrefix)
		if !ok {
			continue
		}
		// KEY_CREATED <type> <fingerprint> [<handle>]
		fields := strings.Fields(line)
		if len(fields) >= 3 && fields[0] == "KEY_CREATED" {
			return fields[2]
		}
	}
	return ""
}
