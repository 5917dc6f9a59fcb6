package usecase

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nmfalves/sentinela/internal/pkg/models"
)

func TestBuildExportRows_JoinsRosterIdentity(t *testing.T) {
	op := newOperative("Ana", "Alpha", true, true)
	sample := newSample(op, time.Date(2024, 6, 5, 14, 30, 0, 0, time.UTC), 38.7, -9.1)

	rows := BuildExportRows(
		[]*models.LocationSample{sample},
		[]*models.Operative{op},
		models.StatsFilter{})

	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].Name)
	assert.Equal(t, "Alpha", rows[0].Unit)
	assert.Equal(t, "05/06/24, 14:30:00", rows[0].DateTime)
	assert.Equal(t, 38.7, *rows[0].Latitude)
	assert.Equal(t, -9.1, *rows[0].Longitude)
}

func TestBuildExportRows_UnknownOperativeKeepsEmptyIdentity(t *testing.T) {
	orphan := &models.LocationSample{
		ID:          uuid.New(),
		OperativeID: uuid.New(),
		CreatedAt:   time.Date(2024, 6, 5, 14, 30, 0, 0, time.UTC),
	}

	rows := BuildExportRows([]*models.LocationSample{orphan}, nil, models.StatsFilter{})

	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Name)
	assert.Empty(t, rows[0].Unit)
	assert.Nil(t, rows[0].Latitude)
}

func TestBuildExportRows_UnitFilterAppliesAfterJoin(t *testing.T) {
	alpha := newOperative("Ana", "Alpha", true, true)
	bravo := newOperative("Bruno", "Bravo", true, true)
	at := time.Date(2024, 6, 5, 14, 30, 0, 0, time.UTC)

	rows := BuildExportRows(
		[]*models.LocationSample{
			newSample(alpha, at, 38.7, -9.1),
			newSample(bravo, at, 41.15, -8.61),
		},
		[]*models.Operative{alpha, bravo},
		models.StatsFilter{Unit: "Alpha"})

	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].Name)
}

func TestBuildPartitions_DayKeysUseHyphens(t *testing.T) {
	rows := []models.ExportRow{
		{Name: "Ana", Unit: "Alpha", DateTime: "05/06/24, 14:30:00"},
		{Name: "Ana", Unit: "Alpha", DateTime: "05/06/24, 15:00:00"},
		{Name: "Bruno", Unit: "Bravo", DateTime: "06/06/24, 09:00:00"},
	}

	p := BuildPartitions(rows)

	assert.Len(t, p.ByOperative["Ana"], 2)
	assert.Len(t, p.ByOperative["Bruno"], 1)
	assert.Len(t, p.ByUnit["Alpha"], 2)
	assert.Len(t, p.ByDay["05-06-24"], 2)
	assert.Len(t, p.ByDay["06-06-24"], 1)
	assert.NotContains(t, p.ByDay, "05/06/24")
}

func TestBuildWorkbook_SheetPerPartition(t *testing.T) {
	rows := []models.ExportRow{
		{Name: "Ana", Unit: "Alpha", DateTime: "05/06/24, 14:30:00"},
		{Name: "Bruno", Unit: "Bravo", DateTime: "06/06/24, 09:00:00"},
	}

	workbook, err := BuildWorkbook(BuildPartitions(rows))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Utilizador_Ana")
	assert.Contains(t, sheets, "Utilizador_Bruno")
	assert.Contains(t, sheets, "Unidade_Alpha")
	assert.Contains(t, sheets, "Unidade_Bravo")
	assert.Contains(t, sheets, "Dia_05-06-24")
	assert.Contains(t, sheets, "Dia_06-06-24")
	assert.NotContains(t, sheets, "Sheet1")

	name, err := f.GetCellValue("Utilizador_Ana", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)
}

func TestSanitizeSheetName(t *testing.T) {
	assert.Equal(t, "Dia_05-06-24", sanitizeSheetName("Dia_05-06-24"))
	assert.Equal(t, "Unidade_Alpha_Bravo", sanitizeSheetName("Unidade_Alpha/Bravo"))
	assert.Len(t, sanitizeSheetName("Utilizador_"+strings.Repeat("x", 64)), 31)
	assert.Equal(t, "_", sanitizeSheetName(""))
}
