// Package config loads the YAML configuration of a transform registry.
//
// # Schema Overview
//
//	locale: de-DE                 # number separators, default "en"
//	type_checked_regexps: true    # reject regexp hits of another type
//	big_numbers: true             # add biginteger and bigdecimal
//	log:
//	  level: debug                # zap level, default "info"
//	  format: json                # json | console, default "console"
//	transforms:
//	  - type_name: amount         # name used in step expressions
//	    kind: bigdecimal          # byte short int long float double
//	                              # biginteger bigdecimal string
//	    regexps: ['\d+\.\d{2}']   # default: the built-in regexps of the kind
//
// Transforms are added after the built-ins, in file order, so an entry
// replaces whatever was registered under the same type, type name or regexp.
// A "long" entry, for instance, takes over int64 from the built-in "long".
package config
