package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/comptaflow/backend/internal/domain/vat"
)

func TestMarshalSummaryWorkbook(t *testing.T) {
	rows := []vat.SummaryRow{
		{
			Period:       "2025-01",
			SalesBase:    decimal.NewFromInt(10000),
			PurchaseBase: decimal.NewFromInt(4000),
			Collected:    decimal.NewFromInt(2000),
			Deductible:   decimal.NewFromInt(800),
			Net:          decimal.NewFromInt(1200),
		},
		{
			Period: "2025-02",
			Net:    decimal.NewFromInt(-150),
		},
	}

	data, err := MarshalSummaryWorkbook(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(summarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Période", header)

	period, err := f.GetCellValue(summarySheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2025-01", period)

	collected, err := f.GetCellValue(summarySheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "2000", collected)

	net, err := f.GetCellValue(summarySheet, "F3")
	require.NoError(t, err)
	assert.Equal(t, "-150", net)
}

func TestMarshalSummaryWorkbook_Empty(t *testing.T) {
	data, err := MarshalSummaryWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Equal(t, []string{summarySheet}, sheets)
}

func TestSummaryWorkbookFilename(t *testing.T) {
	now := time.UnixMilli(1737000000000)
	assert.Equal(t, "tva-summary-1737000000000.xlsx", SummaryWorkbookFilename(now))
}
