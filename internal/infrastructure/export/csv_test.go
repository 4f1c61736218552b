package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comptaflow/backend/internal/domain/shared/valueobject"
	"github.com/comptaflow/backend/internal/infrastructure/format"
)

func TestMarshalCSV(t *testing.T) {
	// The "en" locale keeps grouping separators deterministic in assertions.
	formatter := format.New("en", valueobject.MAD)

	table := Table{
		Header: []string{"Période", "Montant", "Date", "Note"},
		Rows: [][]Cell{
			{
				PlainCell("2025-01"),
				CurrencyCell(decimal.NewFromFloat(1234.5)),
				DateCell(valueobject.NewDate(2025, time.January, 15)),
				CustomCell("déjà formaté"),
			},
		},
	}

	data, err := MarshalCSV(table, formatter)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, utf8BOM))

	lines := strings.Split(strings.TrimRight(string(data[len(utf8BOM):]), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Période;Montant;Date;Note", lines[0])
	assert.Equal(t, "2025-01;1,234.50 MAD;2025-01-15;déjà formaté", lines[1])
}

func TestMarshalCSV_EmptyTable(t *testing.T) {
	formatter := format.New("en", valueobject.MAD)

	data, err := MarshalCSV(Table{Header: []string{"A", "B"}}, formatter)
	require.NoError(t, err)
	assert.Equal(t, "A;B\n", string(data[len(utf8BOM):]))
}

func TestCSVFilename(t *testing.T) {
	now := time.UnixMilli(1737000000000)
	assert.Equal(t, "tva-summary-1737000000000.csv", CSVFilename("tva-summary", now))
}
