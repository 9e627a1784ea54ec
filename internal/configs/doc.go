// Package configs loads the two configuration surfaces of secnix.
//
// # Secrets configuration
//
// The secrets configuration is a Nix expression with three top-level
// attributes:
//
//	{
//	  generate = { keyType = "RSA"; keyLength = 4096; domain = "example.com"; };
//	  keys = {
//	    master = "1111111111111111111111111111111111111111";
//	    ops    = [ "2222222222222222222222222222222222222222" "33..." ];
//	  };
//	  secrets = {
//	    database = {
//	      keys = [ "ops" ];
//	      env = "db.env";
//	    };
//	  };
//	}
//
// The expression is evaluated with nix-instantiate --json --strict --eval;
// the evaluator is treated as a black box that returns nested JSON, and it
// is injectable so tests can feed JSON directly. The secret tree itself is
// decoded generically; interpreting node shapes is the tree resolver's job.
//
// # Operator settings
//
// Machine-local settings (which gpg binary to run, an alternate keyring
// homedir) live in a TOML file in the user config dir. The file is optional
// and every field has a default.
package configs
