package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nmfalves/sentinela/internal/pkg/models"
)

// ExportFilename is the fixed download name of the location report.
const ExportFilename = "export-localizacoes.xlsx"

var exportHeader = []interface{}{"Name", "Unit", "DateTime", "Latitude", "Longitude", "Heading", "Speed"}

// BuildExportRows joins samples with roster identity and flattens them
// into report rows. The unit filter applies after the join because a
// sample carries no unit of its own. Samples of operatives missing
// from the roster keep empty name and unit rather than failing.
func BuildExportRows(samples []*models.LocationSample, roster []*models.Operative, filter models.StatsFilter) []models.ExportRow {
	byID := make(map[string]*models.Operative, len(roster))
	for _, op := range roster {
		byID[op.ID.String()] = op
	}

	rows := make([]models.ExportRow, 0, len(samples))
	for _, s := range samples {
		op := byID[s.OperativeID.String()]
		if filter.Unit != "" && (op == nil || op.Unit != filter.Unit) {
			continue
		}

		row := models.ExportRow{
			DateTime:  models.DisplayDateTime(s.CreatedAt),
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
			Heading:   s.Heading,
			Speed:     s.Speed,
		}
		if op != nil {
			row.Name = op.Name
			row.Unit = op.Unit
		}
		rows = append(rows, row)
	}

	return rows
}

// BuildPartitions groups export rows into the three sheet families.
// The day key is the display date with hyphens in place of slashes so
// it stays sheet-name safe.
func BuildPartitions(rows []models.ExportRow) *models.Partitions {
	p := &models.Partitions{
		ByOperative: map[string][]models.ExportRow{},
		ByUnit:      map[string][]models.ExportRow{},
		ByDay:       map[string][]models.ExportRow{},
	}

	for _, row := range rows {
		p.ByOperative[row.Name] = append(p.ByOperative[row.Name], row)
		p.ByUnit[row.Unit] = append(p.ByUnit[row.Unit], row)

		day := strings.ReplaceAll(strings.SplitN(row.DateTime, ",", 2)[0], "/", "-")
		p.ByDay[day] = append(p.ByDay[day], row)
	}

	return p
}

// BuildWorkbook renders the partitions into an xlsx workbook: one
// sheet per operative, per unit, and per day.
func BuildWorkbook(p *models.Partitions) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := addSheets(f, "Utilizador_", p.ByOperative); err != nil {
		return nil, err
	}
	if err := addSheets(f, "Unidade_", p.ByUnit); err != nil {
		return nil, err
	}
	if err := addSheets(f, "Dia_", p.ByDay); err != nil {
		return nil, err
	}

	// Drop the default sheet once real ones exist.
	if f.SheetCount > 1 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func addSheets(f *excelize.File, prefix string, partition map[string][]models.ExportRow) error {
	keys := make([]string, 0, len(partition))
	for key := range partition {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		name := sanitizeSheetName(prefix + key)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
		if err := f.SetSheetRow(name, "A1", &exportHeader); err != nil {
			return err
		}
		for i, row := range partition[key] {
			cell := fmt.Sprintf("A%d", i+2)
			values := []interface{}{
				row.Name,
				row.Unit,
				row.DateTime,
				floatCell(row.Latitude),
				floatCell(row.Longitude),
				floatCell(row.Heading),
				floatCell(row.Speed),
			}
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				return err
			}
		}
	}

	return nil
}

func floatCell(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// sanitizeSheetName fits a partition key into Excel's sheet naming
// rules: 31 characters max, no :\/?*[] characters.
func sanitizeSheetName(name string) string {
	replacer := strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_")
	name = replacer.Replace(name)
	if len(name) > 31 {
		name = name[:31]
	}
	if name == "" {
		name = "_"
	}
	return name
}
