// Package config resolves eslintcfg's options from flags, environment and
// an optional YAML file.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--typescript, --react, --format, --theme, ...)
//  2. Environment variables (ESLINTCFG_TYPESCRIPT, ESLINTCFG_FORMAT, NO_COLOR, ...)
//  3. YAML config file (.eslintcfg.yaml in the working directory or
//     ~/.config/eslintkit/.eslintcfg.yaml)
//  4. Hardcoded defaults (every feature off, JSON output)
//
// # Config File
//
//	typescript: true
//	react: true
//	jest: true
//	format: yaml
//	theme: mono
//
// # Environment Variables
//
//   - ESLINTCFG_TYPESCRIPT, ESLINTCFG_NODE, ESLINTCFG_REACT, ESLINTCFG_JEST,
//     ESLINTCFG_CYPRESS: "true"/"false" (anything strconv.ParseBool accepts)
//   - ESLINTCFG_FORMAT: json, yaml or text
//   - ESLINTCFG_THEME: default or mono
//   - NO_COLOR: any value forces the mono theme
//   - ESLINTKIT_DEBUG: any non-empty value enables debug output on stderr
package config
