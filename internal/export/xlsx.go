package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// SheetName is the workbook sheet holding the scorebook grid.
const SheetName = "Scorebook"

// WriteXLSX writes the grid to an XLSX workbook at path, creating parent
// directories as needed. The header row is bolded and frozen so long games
// stay readable when scrolled.
func WriteXLSX(path string, headers []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure workbook directory: %w", err)
		}
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	if err := writeRow(file, 1, headers); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeRow(file, i+2, row); err != nil {
			return err
		}
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("build header style: %w", err)
	}
	if err := file.SetRowStyle(SheetName, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("style header row: %w", err)
	}
	if err := file.SetColWidth(SheetName, "A", "A", 22); err != nil {
		return fmt.Errorf("size batter column: %w", err)
	}
	if err := file.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header row: %w", err)
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRow(file *excelize.File, number int, values []string) error {
	for i, value := range values {
		if value == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, number)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := file.SetCellValue(SheetName, cell, value); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
