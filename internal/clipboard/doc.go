// Package clipboard copies rendered scorebook output to the system
// clipboard. Hosts without a clipboard utility get a noop implementation so
// commands degrade to printing alone.
package clipboard
