package elasticemail

import (
	"context"

	"github.com/elasticemail/client-go/internal/api"
)

// SegmentService manages segments, the dynamically computed lists of contacts.
type SegmentService interface {
	// Add creates a segment from a rule.
	Add(ctx context.Context, segmentName, rule string) (*Segment, error)

	// Copy duplicates a segment, optionally renaming it or replacing its rule.
	Copy(ctx context.Context, sourceSegmentName string, opts CopySegmentOptions) (*Segment, error)

	// Delete removes a segment.
	Delete(ctx context.Context, segmentName string) error

	// Export starts an export of the contacts in a segment.
	Export(ctx context.Context, segmentName string, opts ExportSegmentOptions) (*ExportLink, error)

	// List returns every segment of the account.
	List(ctx context.Context, opts ListSegmentsOptions) ([]Segment, error)

	// LoadByName returns the named segments. An empty list loads all contacts.
	LoadByName(ctx context.Context, segmentNames []string, opts ListSegmentsOptions) ([]Segment, error)

	// Update renames a segment or changes its rule.
	Update(ctx context.Context, segmentName string, opts UpdateSegmentOptions) (*Segment, error)
}

// segmentImpl implements the SegmentService interface.
type segmentImpl struct {
	apiClient *api.Client
}

// Segment returns the SegmentService bound to this client.
func (c *Client) Segment() SegmentService {
	return &segmentImpl{apiClient: c.apiClient}
}

func (s *segmentImpl) Add(ctx context.Context, segmentName, rule string) (*Segment, error) {
	return s.one(ctx, api.EndpointSegmentAdd, addSegmentParams(segmentName, rule))
}

func (s *segmentImpl) Copy(ctx context.Context, sourceSegmentName string, opts CopySegmentOptions) (*Segment, error) {
	return s.one(ctx, api.EndpointSegmentCopy, copySegmentParams(sourceSegmentName, opts))
}

func (s *segmentImpl) Delete(ctx context.Context, segmentName string) error {
	p := api.NewParams()
	p.Set("segmentName", segmentName)
	return s.apiClient.Request(ctx, &api.Request{Endpoint: api.EndpointSegmentDelete, Params: p}, nil)
}

func (s *segmentImpl) Export(ctx context.Context, segmentName string, opts ExportSegmentOptions) (*ExportLink, error) {
	p, err := exportSegmentParams(segmentName, opts)
	if err != nil {
		return nil, err
	}

	var result ExportLink
	if err := s.apiClient.Request(ctx, &api.Request{Endpoint: api.EndpointSegmentExport, Params: p}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *segmentImpl) List(ctx context.Context, opts ListSegmentsOptions) ([]Segment, error) {
	return s.many(ctx, api.EndpointSegmentList, listSegmentsParams(nil, opts))
}

func (s *segmentImpl) LoadByName(ctx context.Context, segmentNames []string, opts ListSegmentsOptions) ([]Segment, error) {
	p := api.NewParams()
	p.SetList("segmentNames", segmentNames)
	return s.many(ctx, api.EndpointSegmentLoadByName, listSegmentsParams(p, opts))
}

func (s *segmentImpl) Update(ctx context.Context, segmentName string, opts UpdateSegmentOptions) (*Segment, error) {
	p := api.NewParams()
	p.Set("segmentName", segmentName)
	p.SetOptional("newSegmentName", opts.NewSegmentName)
	p.SetOptional("rule", opts.Rule)
	return s.one(ctx, api.EndpointSegmentUpdate, p)
}

func (s *segmentImpl) one(ctx context.Context, endpoint string, p *api.Params) (*Segment, error) {
	var result Segment
	if err := s.apiClient.Request(ctx, &api.Request{Endpoint: endpoint, Params: p}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *segmentImpl) many(ctx context.Context, endpoint string, p *api.Params) ([]Segment, error) {
	result := make([]Segment, 0)
	if err := s.apiClient.Request(ctx, &api.Request{Endpoint: endpoint, Params: p}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func addSegmentParams(segmentName, rule string) *api.Params {
	p := api.NewParams()
	p.Set("segmentName", segmentName)
	p.Set("rule", rule)
	return p
}

func copySegmentParams(sourceSegmentName string, opts CopySegmentOptions) *api.Params {
	p := api.NewParams()
	p.Set("sourceSegmentName", sourceSegmentName)
	p.SetOptional("newSegmentName", opts.NewSegmentName)
	p.SetOptional("rule", opts.Rule)
	return p
}

func exportSegmentParams(segmentName string, opts ExportSegmentOptions) (*api.Params, error) {
	fileFormat := opts.FileFormat
	if fileFormat == 0 {
		fileFormat = ExportFileFormatCsv
	}
	if err := exportFileFormats.check(fileFormat); err != nil {
		return nil, err
	}
	if err := compressionFormats.check(opts.CompressionFormat); err != nil {
		return nil, err
	}

	p := api.NewParams()
	p.Set("segmentName", segmentName)
	p.SetInt("fileFormat", int(fileFormat))
	p.SetInt("compressionFormat", int(opts.CompressionFormat))
	p.SetOptional("fileName", opts.FileName)
	return p, nil
}

// listSegmentsParams appends the shared list options to p, creating it if nil.
func listSegmentsParams(p *api.Params, opts ListSegmentsOptions) *api.Params {
	if p == nil {
		p = api.NewParams()
	}
	p.SetBool("includeHistory", opts.IncludeHistory)
	p.SetTime("from", opts.From)
	p.SetTime("to", opts.To)
	return p
}
