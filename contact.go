package elasticemail

import (
	"context"

	"github.com/elasticemail/client-go/internal/api"
)

// ContactStatus is the state of a contact.
type ContactStatus int

const (
	ContactStatusTransactional ContactStatus = -2
	ContactStatusEngaged       ContactStatus = -1
	ContactStatusActive        ContactStatus = 0
	ContactStatusBounced       ContactStatus = 1
	ContactStatusUnsubscribed  ContactStatus = 2
	ContactStatusAbuse         ContactStatus = 3
	ContactStatusInactive      ContactStatus = 4
	ContactStatusStale         ContactStatus = 5
	ContactStatusNotConfirmed  ContactStatus = 6
)

var contactStatuses = enumNames[ContactStatus]{
	kind: "ContactStatus",
	names: map[ContactStatus]string{
		ContactStatusTransactional: "Transactional",
		ContactStatusEngaged:       "Engaged",
		ContactStatusActive:        "Active",
		ContactStatusBounced:       "Bounced",
		ContactStatusUnsubscribed:  "Unsubscribed",
		ContactStatusAbuse:         "Abuse",
		ContactStatusInactive:      "Inactive",
		ContactStatusStale:         "Stale",
		ContactStatusNotConfirmed:  "NotConfirmed",
	},
}

func (s ContactStatus) String() string { return contactStatuses.name(s) }

// Valid reports whether s is a known contact status.
func (s ContactStatus) Valid() bool { return contactStatuses.valid(s) }

// MarshalText encodes the status by name.
func (s ContactStatus) MarshalText() ([]byte, error) {
	if err := contactStatuses.check(s); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts the status name, e.g. "Bounced".
func (s *ContactStatus) UnmarshalText(text []byte) error {
	v, err := contactStatuses.parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseContactStatus converts a name such as "Abuse" to a ContactStatus.
func ParseContactStatus(name string) (ContactStatus, error) {
	return contactStatuses.parse(name)
}

// BlockedContact is a contact that returned hard bounces.
// All fields are passed through as sent by the API.
type BlockedContact struct {
	// Email is the contact address.
	Email string `json:"Email" xml:"Email"`
	// Status is one of Active, Engaged, Inactive, Abuse, Bounced, Unsubscribed.
	Status string `json:"Status" xml:"Status"`
	// FriendlyErrorMessage is the RFC error message.
	FriendlyErrorMessage string `json:"FriendlyErrorMessage" xml:"FriendlyErrorMessage"`
	// DateUpdated is the date of the last change.
	DateUpdated string `json:"DateUpdated" xml:"DateUpdated"`
}

// LoadBlockedOptions configures LoadBlocked.
type LoadBlockedOptions struct {
	// Statuses restricts the result. Empty means no restriction.
	Statuses []ContactStatus
	// Search matches against contact addresses.
	Search string
	Limit  int
	Offset int
}

// ContactService reads contact data.
type ContactService interface {
	// LoadBlocked returns contacts that can no longer receive email.
	LoadBlocked(ctx context.Context, opts LoadBlockedOptions) ([]BlockedContact, error)
}

// contactImpl implements the ContactService interface.
type contactImpl struct {
	apiClient *api.Client
}

// Contact returns the ContactService bound to this client.
func (c *Client) Contact() ContactService {
	return &contactImpl{apiClient: c.apiClient}
}

func (ci *contactImpl) LoadBlocked(ctx context.Context, opts LoadBlockedOptions) ([]BlockedContact, error) {
	p, err := loadBlockedParams(opts)
	if err != nil {
		return nil, err
	}

	result := make([]BlockedContact, 0)
	if err := ci.apiClient.Request(ctx, &api.Request{Endpoint: api.EndpointContactLoadBlocked, Params: p}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func loadBlockedParams(opts LoadBlockedOptions) (*api.Params, error) {
	codes := make([]int, 0, len(opts.Statuses))
	for _, s := range opts.Statuses {
		if err := contactStatuses.check(s); err != nil {
			return nil, err
		}
		codes = append(codes, int(s))
	}

	p := api.NewParams()
	p.SetIntList("statuses", codes)
	p.SetOptional("search", opts.Search)
	p.SetInt("limit", opts.Limit)
	p.SetInt("offset", opts.Offset)
	return p, nil
}
