package api

// Endpoint paths, relative to the base URL.
const (
	EndpointEmailGetStatus = "email/getstatus"
	EndpointEmailSend      = "email/send"
	EndpointEmailStatus    = "email/status"
	EndpointEmailView      = "email/view"

	EndpointSegmentAdd        = "segment/add"
	EndpointSegmentCopy       = "segment/copy"
	EndpointSegmentDelete     = "segment/delete"
	EndpointSegmentExport     = "segment/export"
	EndpointSegmentList       = "segment/list"
	EndpointSegmentLoadByName = "segment/loadbyname"
	EndpointSegmentUpdate     = "segment/update"

	EndpointContactLoadBlocked = "contact/loadblocked"
)

// Endpoints lists every endpoint the client calls.
var Endpoints = []string{
	EndpointEmailGetStatus,
	EndpointEmailSend,
	EndpointEmailStatus,
	EndpointEmailView,
	EndpointSegmentAdd,
	EndpointSegmentCopy,
	EndpointSegmentDelete,
	EndpointSegmentExport,
	EndpointSegmentList,
	EndpointSegmentLoadByName,
	EndpointSegmentUpdate,
	EndpointContactLoadBlocked,
}
