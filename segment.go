package elasticemail

import "time"

// ExportFileFormat is the file format of a segment export.
// The zero value selects ExportFileFormatCsv.
type ExportFileFormat int

const (
	ExportFileFormatCsv  ExportFileFormat = 1
	ExportFileFormatXML  ExportFileFormat = 2
	ExportFileFormatJSON ExportFileFormat = 3
)

var exportFileFormats = enumNames[ExportFileFormat]{
	kind: "ExportFileFormat",
	names: map[ExportFileFormat]string{
		ExportFileFormatCsv:  "Csv",
		ExportFileFormatXML:  "Xml",
		ExportFileFormatJSON: "Json",
	},
}

func (f ExportFileFormat) String() string { return exportFileFormats.name(f) }

// Valid reports whether f is a known export format.
func (f ExportFileFormat) Valid() bool { return exportFileFormats.valid(f) }

// MarshalText encodes the format by name.
func (f ExportFileFormat) MarshalText() ([]byte, error) {
	if err := exportFileFormats.check(f); err != nil {
		return nil, err
	}
	return []byte(f.String()), nil
}

// UnmarshalText accepts the format name, e.g. "Csv".
func (f *ExportFileFormat) UnmarshalText(text []byte) error {
	v, err := exportFileFormats.parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// CompressionFormat is the compression applied to an export file.
type CompressionFormat int

const (
	CompressionFormatNone CompressionFormat = 0
	CompressionFormatZip  CompressionFormat = 1
)

var compressionFormats = enumNames[CompressionFormat]{
	kind: "CompressionFormat",
	names: map[CompressionFormat]string{
		CompressionFormatNone: "None",
		CompressionFormatZip:  "Zip",
	},
}

func (f CompressionFormat) String() string { return compressionFormats.name(f) }

// Valid reports whether f is a known compression format.
func (f CompressionFormat) Valid() bool { return compressionFormats.valid(f) }

// MarshalText encodes the compression format by name.
func (f CompressionFormat) MarshalText() ([]byte, error) {
	if err := compressionFormats.check(f); err != nil {
		return nil, err
	}
	return []byte(f.String()), nil
}

// UnmarshalText accepts the compression format name, e.g. "Zip".
func (f *CompressionFormat) UnmarshalText(text []byte) error {
	v, err := compressionFormats.parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Segment is a rule-filtered set of contacts maintained by the service.
type Segment struct {
	SegmentID int64            `json:"SegmentID" xml:"SegmentID"`
	Name      string           `json:"Name" xml:"Name"`
	Rule      string           `json:"Rule" xml:"Rule"`
	LastCount int64            `json:"LastCount" xml:"LastCount"`
	History   []SegmentHistory `json:"History" xml:"History>SegmentHistory"`
}

// SegmentHistory holds the daily contact counts of a segment.
type SegmentHistory struct {
	SegmentHistoryID  int64  `json:"SegmentHistoryID" xml:"SegmentHistoryID"`
	SegmentID         int64  `json:"SegmentID" xml:"SegmentID"`
	Day               int    `json:"Day" xml:"Day"`
	SegmentName       string `json:"SegmentName" xml:"SegmentName"`
	Count             int64  `json:"Count" xml:"Count"`
	EngagedCount      int64  `json:"EngagedCount" xml:"EngagedCount"`
	ActiveCount       int64  `json:"ActiveCount" xml:"ActiveCount"`
	BouncedCount      int64  `json:"BouncedCount" xml:"BouncedCount"`
	UnsubscribedCount int64  `json:"UnsubscribedCount" xml:"UnsubscribedCount"`
	AbuseCount        int64  `json:"AbuseCount" xml:"AbuseCount"`
	InactiveCount     int64  `json:"InactiveCount" xml:"InactiveCount"`
}

// ExportLink points at a finished export file.
type ExportLink struct {
	Link string `json:"Link" xml:"Link"`
}

// CopySegmentOptions configures Copy. Empty fields keep the source values.
type CopySegmentOptions struct {
	NewSegmentName string
	Rule           string
}

// UpdateSegmentOptions configures Update. Empty fields are left unchanged.
type UpdateSegmentOptions struct {
	NewSegmentName string
	Rule           string
}

// ExportSegmentOptions configures Export.
type ExportSegmentOptions struct {
	FileFormat        ExportFileFormat
	CompressionFormat CompressionFormat
	FileName          string
}

// ListSegmentsOptions configures List and LoadByName.
type ListSegmentsOptions struct {
	// IncludeHistory adds the last 30 days of history to each segment.
	IncludeHistory bool
	// From and To bound the history window and are sent in UTC. Nil leaves
	// the bound to the API.
	From *time.Time
	To   *time.Time
}
