// Package openapi exposes the public contracts for the loader and parser
// stages together with the neutral schema node consumed by the adapter and
// renderer packages. Implementations live under internal/openapi so that
// kin-openapi stays hidden from consumers.
package openapi
