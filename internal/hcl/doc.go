// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for finding settings files, parsing them and
// translating the `settings` block into a config.Settings value.
//
// A settings file looks like:
//
//	settings {
//	  round_number = 4
//	  memory_value = "12.5"
//	}
//
// Both attributes are optional. memory_value may be written as a number or a
// string; strings keep every digit exactly as typed.
package hcl
