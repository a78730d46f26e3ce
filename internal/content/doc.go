// Package content holds the reference material mlref displays.
//
// A Catalog is a list of model families. Each Family has sections such as
// "overview", "tests" and "metrics", and each Section carries fixed
// paragraphs, bullet lists and metric entries. The default catalog is
// embedded from catalog.toml; Load accepts a replacement in TOML or YAML.
//
// Panel and PlainPanel render a Section for the terminal and for plain text
// respectively. Both satisfy tabs.Renderer so they can be handed straight to
// a tabs container as pane content.
package content
