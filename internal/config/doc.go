// Package config loads the optional HCL settings file. The file mirrors the
// command-line flags and adds the parser and resolver knobs that have no flag
// of their own:
//
//	log_level = "debug"
//	format    = "json"
//
//	resolve {
//	  max_depth     = 20
//	  default_value = "0"
//	}
//
//	declarations {
//	  output_markers = ["output_var", "output_array"]
//	}
//
//	solution {
//	  reserved_keys = ["objective", "no", "["]
//	}
//
// Expressions are evaluated with an `env` object holding the process
// environment, so `log_level = env.FZNNORM_LOG_LEVEL` works.
package config
