// Package model defines the bound-object abstraction the form builder reads
// from: current field values, per-field validation messages, and the optional
// presence/display-name metadata used to infer required markers and labels.
//
// Implementations are provided for map-backed records (Record), tagged Go
// structs (Reflect), and OpenAPI schemas (PresenceFromSchema,
// PresenceFromDocument). Any type satisfying BoundObject can be rendered.
package model
