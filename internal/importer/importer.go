// Package importer provides CSV and Excel import of shape batches.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/chandramohan-1/mobius-strip/internal/model"
)

// ShapeRow is one imported shape with the label it was given in the file.
type ShapeRow struct {
	Label      string
	Shape      model.ShapeConfig
	Quadrature model.QuadratureRule
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Shapes   []ShapeRow
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label      int
	Radius     int
	Width      int
	Resolution int
	Quadrature int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":      {"label", "name", "shape", "id", "description", "desc"},
	"radius":     {"radius", "r", "major radius", "centerline radius"},
	"width":      {"width", "w", "strip width"},
	"resolution": {"resolution", "n", "samples", "res", "grid"},
	"quadrature": {"quadrature", "rule", "integration", "method"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping (Label, Radius, Width, Resolution, Quadrature) and false otherwise.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Radius: -1, Width: -1, Resolution: -1, Quadrature: -1}
	slots := map[string]*int{
		"label":      &mapping.Label,
		"radius":     &mapping.Radius,
		"width":      &mapping.Width,
		"resolution": &mapping.Resolution,
		"quadrature": &mapping.Quadrature,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if slot := slots[role]; *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Label: 0, Radius: 1, Width: 2, Resolution: 3, Quadrature: 4}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a shape from a row using the given column mapping.
// Returns the shape, any error message, and any warnings.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, shapeCount int) (ShapeRow, string, []string) {
	var warnings []string

	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Shape %d", shapeCount+1)
	}

	radiusStr := getCell(row, mapping.Radius)
	if radiusStr == "" {
		return ShapeRow{}, fmt.Sprintf("%s: Missing radius value", rowLabel), nil
	}
	radius, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil {
		return ShapeRow{}, fmt.Sprintf("%s: Invalid radius '%s'", rowLabel, radiusStr), nil
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return ShapeRow{}, fmt.Sprintf("%s: Missing width value", rowLabel), nil
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return ShapeRow{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), nil
	}

	resolution := model.DefaultShapeConfig().Resolution
	resStr := getCell(row, mapping.Resolution)
	if resStr == "" {
		warnings = append(warnings, fmt.Sprintf("%s: Missing resolution, defaulting to %d", rowLabel, resolution))
	} else {
		resolution, err = strconv.Atoi(resStr)
		if err != nil {
			return ShapeRow{}, fmt.Sprintf("%s: Invalid resolution '%s'", rowLabel, resStr), nil
		}
	}

	shape := model.ShapeConfig{Radius: radius, Width: width, Resolution: resolution}
	if err := shape.Validate(); err != nil {
		return ShapeRow{}, fmt.Sprintf("%s: %v", rowLabel, err), nil
	}

	rule := model.QuadratureSimpson
	if ruleStr := getCell(row, mapping.Quadrature); ruleStr != "" {
		parsed, ok := model.ParseQuadratureRule(strings.ToLower(ruleStr))
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown quadrature '%s', defaulting to simpson", rowLabel, ruleStr))
		}
		rule = parsed
	}

	return ShapeRow{Label: label, Shape: shape, Quadrature: rule}, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportFile dispatches on the file extension.
func ImportFile(path string) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// ImportCSV imports shapes from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports shapes from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports shapes from the first sheet of an Excel workbook.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Radius == -1 {
			missing = append(missing, "Radius")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// A non-numeric radius in the first row is an unrecognized header.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		shape, errMsg, warnings := parseRow(row, mapping, rowLabel, len(result.Shapes))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Shapes = append(result.Shapes, shape)
	}

	return result
}
