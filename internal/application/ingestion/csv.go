package ingestion

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/disease"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
)

// Column headers of the disease source data.  The reader resolves columns by
// header name, so column order in the file does not matter.
const (
	columnNameAlias   = "病害名称(别名)"
	columnPathogen    = "病原"
	columnSymptoms    = "为害特征"
	columnTreatment   = "防治措施"
	columnGrowthStage = "病害发生生育期"
	columnPlantPart   = "病害发生部位"
	columnWeather     = "气象"
	columnRegion      = "发病地区"
)

// requiredColumns must be present in the header row.  Attribute columns are
// optional; a missing column reads as empty for every row.
var requiredColumns = []string{columnNameAlias, columnPathogen, columnSymptoms, columnTreatment}

// ReadRecordsFile reads the disease source CSV at path.
func ReadRecordsFile(path string) ([]disease.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeGraphCSVParseFailed, "failed to open source data").WithDetail(path)
	}
	defer f.Close()
	return ReadRecords(f)
}

// ReadRecords parses disease records from CSV data.  The header row names the
// columns; a UTF-8 byte order mark, commonly written by spreadsheet exports,
// is tolerated.
func ReadRecords(r io.Reader) ([]disease.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeGraphCSVParseFailed, "failed to read CSV header")
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, errors.New(errors.ErrCodeGraphCSVParseFailed,
				"CSV header is missing a required column").WithDetail(col)
		}
	}

	field := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []disease.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeGraphCSVParseFailed, "failed to read CSV row")
		}
		records = append(records, disease.Record{
			NameAlias:        field(row, columnNameAlias),
			Pathogen:         field(row, columnPathogen),
			Symptoms:         field(row, columnSymptoms),
			Treatment:        field(row, columnTreatment),
			GrowthStageField: field(row, columnGrowthStage),
			PlantPartField:   field(row, columnPlantPart),
			WeatherField:     field(row, columnWeather),
			RegionField:      field(row, columnRegion),
		})
	}
	return records, nil
}

//Personal.AI order the ending
