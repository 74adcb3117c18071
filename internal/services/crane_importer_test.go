package services

import (
	"context"
	"strings"
	"testing"

	"fleet-system/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNormalizeCraneType(t *testing.T) {
	assert.Equal(t, "PALETLI", normalizeCraneType("KAFES BOM VINC"))
	assert.Equal(t, "PALETLI", normalizeCraneType("paletli vinc"))
	assert.Equal(t, "SEPET", normalizeCraneType("Sepetli Platform"))
	assert.Equal(t, "MOBILE", normalizeCraneType("TELESKOPIK"))
	assert.Equal(t, "MOBILE", normalizeCraneType(""))
}

func TestParseFleetNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.234,5", 1234.5, true},
		{"120", 120, true},
		{"12.000", 12000, true},
		{"85,5", 85.5, true},
		{"  300  ", 300, true},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, c := range cases {
		got := parseFleetNumber(c.in)
		if !c.ok {
			assert.Nil(t, got, "input %q", c.in)
			continue
		}
		require.NotNil(t, got, "input %q", c.in)
		assert.Equal(t, c.want, *got, "input %q", c.in)
	}
}

func TestDeriveCraneStatus(t *testing.T) {
	assert.Equal(t, "RETIRED", deriveCraneStatus("SATILDI"))
	assert.Equal(t, "MAINTENANCE", deriveCraneStatus("arizali - serviste"))
	assert.Equal(t, "MAINTENANCE", deriveCraneStatus("HASARLI"))
	assert.Equal(t, "ACTIVE", deriveCraneStatus("Tuzla Santiye"))
	assert.Equal(t, "ACTIVE", deriveCraneStatus(""))
}

const fleetListSample = `FILO LISTESI;;;;;;;;
PLAKA;TONAJ;KATEGORI;MARKA MODEL;SERI NO;MODEL YILI;LOKASYON;KM;MOTOR SAATI
34 VNC 101;1.234,5;TELESKOPIK;Liebherr LTM 1100;LTM-001;2015;Tuzla Santiye;12.000;3.450,5
-;80;KAFES BOM;Kobelco CKE 800;CKE-77;2010;SATILDI;;
-;60;SEPETLI;;;;ARIZALI;;
;;;;;;;;
06 VNC 202;40;TELESKOPIK;;;;Merkez Garaj;500;120
`

func TestImportFleetList(t *testing.T) {
	var imported []entities.Crane
	craneRepo := &stubCraneRepo{
		upsertFn: func(crane *entities.Crane) error {
			imported = append(imported, *crane)
			return nil
		},
	}

	importer := NewCraneImporter(craneRepo, zap.NewNop())

	result, err := importer.ImportFleetList(context.Background(), strings.NewReader(fleetListSample))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Parsed, "two header lines and the blank row are not data")
	assert.Equal(t, 4, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, imported, 4)

	liebherr := imported[0]
	require.NotNil(t, liebherr.PlateNo)
	assert.Equal(t, "34 VNC 101", *liebherr.PlateNo)
	assert.Equal(t, "Liebherr LTM 1100 [LTM-001]", liebherr.Name)
	assert.Equal(t, "MOBILE", liebherr.Type)
	assert.Equal(t, "ACTIVE", liebherr.Status)
	require.NotNil(t, liebherr.Tonnage)
	assert.Equal(t, 1234.5, *liebherr.Tonnage)
	require.NotNil(t, liebherr.KmReading)
	assert.Equal(t, 12000.0, *liebherr.KmReading)
	require.NotNil(t, liebherr.EngineHours)
	assert.Equal(t, 3450.5, *liebherr.EngineHours)
	require.NotNil(t, liebherr.ModelYear)
	assert.Equal(t, 2015, *liebherr.ModelYear)

	kobelco := imported[1]
	require.NotNil(t, kobelco.PlateNo)
	assert.Equal(t, "PLATELESS-CKE-77", *kobelco.PlateNo, "plateless machine keyed by serial")
	assert.Equal(t, "PALETLI", kobelco.Type)
	assert.Equal(t, "RETIRED", kobelco.Status, "sold machines retire")

	basket := imported[2]
	require.NotNil(t, basket.PlateNo)
	assert.Equal(t, "PLATELESS-2", *basket.PlateNo, "no serial, synthetic index key")
	assert.Equal(t, "SEPET", basket.Type)
	assert.Equal(t, "MAINTENANCE", basket.Status)
	assert.Equal(t, "SEPETLI", basket.Model, "category stands in when the brand is empty")

	noBrand := imported[3]
	assert.Equal(t, "06 VNC 202", noBrand.Name, "plate is the display name without a brand")
	assert.Equal(t, "TELESKOPIK", noBrand.Model)
}

func TestImportFleetListCountsUpsertFailures(t *testing.T) {
	calls := 0
	craneRepo := &stubCraneRepo{
		upsertFn: func(crane *entities.Crane) error {
			calls++
			if calls == 1 {
				return assert.AnError
			}
			return nil
		},
	}

	importer := NewCraneImporter(craneRepo, zap.NewNop())

	result, err := importer.ImportFleetList(context.Background(), strings.NewReader(fleetListSample))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Parsed)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 2, result.Skipped, "blank row plus the failed upsert")
}
