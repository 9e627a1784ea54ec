package gpg

import "testing"

// Listing for a master key with one encryption subkey, as produced by
// gpg --with-colons --fingerprint --list-keys.
const colonListing = `tru::1:1700000000:0:3:1:5
pub:u:4096:1:AABBCCDDEEFF0011:1700000000:::u:::scESC::::::23::0:
fpr:::::::::1111111111111111111111111111111111111111:
uid:u::::1700000000::DEADBEEF::database <database@example.com>::::::::::0:
sub:u:4096:1:1122334455667788:1700000000::::::e::::::23:
fpr:::::::::2222222222222222222222222222222222222222:
`

func TestParseColonListing(t *testing.T) {
	t.Run("MasterFingerprintWins", func(t *testing.T) {
		keys := parseColonListing([]byte(colonListing))
		if len(keys) != 1 {
			t.Fatalf("got %d keys, want 1", len(keys))
		}
		key := keys[0]
		if key.Fingerprint != "1111111111111111111111111111111111111111" {
			t.Errorf("Fingerprint = %s, want the master fingerprint", key.Fingerprint)
		}
		if key.KeyID != "AABBCCDDEEFF0011" {
			t.Errorf("KeyID = %s", key.KeyID)
		}
		if len(key.UserIDs) != 1 || key.UserIDs[0] != "database <database@example.com>" {
			t.Errorf("UserIDs = %v", key.UserIDs)
		}
	})

	t.Run("MultipleKeys", func(t *testing.T) {
		listing := colonListing +
			"pub:u:4096:1:0011223344556677:1700000000:::u:::scESC::::::23::0:\n" +
			"fpr:::::::::3333333333333333333333333333333333333333:\n"
		keys := parseColonListing([]byte(listing))
		if len(keys) != 2 {
			t.Fatalf("got %d keys, want 2", len(keys))
		}
		if keys[1].Fingerprint != "3333333333333333333333333333333333333333" {
			t.Errorf("second Fingerprint = %s", keys[1].Fingerprint)
		}
	})

	t.Run("EmptyListing", func(t *testing.T) {
		if keys := parseColonListing(nil); len(keys) != 0 {
			t.Errorf("got %d keys from empty listing", len(keys))
		}
	})
}
