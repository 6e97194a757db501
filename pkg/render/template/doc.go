// Package template defines the template seam used by the tag helpers to
// render undecorated controls. The pongo subpackage provides the default
// pongo2-backed engine; callers can supply any TemplateRenderer instead.
package template
