// Package config resolves spectrum's ambient settings.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (-debug, -log-format, -no-color)
//  2. Environment variables (SPECTRUM_DEBUG, SPECTRUM_LOG_FORMAT, SPECTRUM_NO_COLOR, NO_COLOR)
//  3. YAML config file (.spectrum.yaml in the working directory or
//     <user config dir>/spectrum/.spectrum.yaml)
//  4. Hardcoded defaults
//
// # Scope
//
// None of these settings change the rendered grid. They select how
// diagnostics are logged on stderr and whether the version banner is styled.
//
// # Environment Variables
//
//   - SPECTRUM_DEBUG: "true" or "1" enables debug logging
//   - SPECTRUM_LOG_FORMAT: "logfmt" or "json"
//   - SPECTRUM_NO_COLOR or NO_COLOR: "true" or "1" drops banner styling
package config
