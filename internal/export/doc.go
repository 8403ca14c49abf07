// Package export writes rendered scorebook grids to spreadsheet workbooks.
package export
