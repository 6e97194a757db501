// Package tags builds the undecorated markup a form builder decorates: escaped
// attributes, void and content tags, bracketed param names with matching ids, and the
// native controls (inputs, text areas, selects, date part selects) rendered
// through pongo2 templates.
package tags
