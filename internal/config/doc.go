// Package config resolves the settings of a generation run from layered
// sources: built-in defaults, an optional profile file, the environment and,
// last, explicit command-line flags (applied by the cli package).
//
// Profile files come in two formats, chosen by extension:
//
//   - .yaml / .yml, parsed with gopkg.in/yaml.v3
//   - .json / .jsonc, parsed with encoding/json after
//     github.com/tidwall/jsonc strips comments and trailing commas
//
// Environment variables use the HUMANIZER_ prefix and are decoded with
// github.com/caarlos0/env/v11. A .env file in the working directory is
// loaded first with github.com/joho/godotenv when present.
package config
