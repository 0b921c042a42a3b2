// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// The calculator itself takes no ambient configuration: the loss fractions,
// default weather and locale loaded here are passed explicitly to the layers
// that need them.
package config
