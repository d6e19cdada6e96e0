// Package elasticemail provides a Go client for the Elastic Email HTTP API:
// sending transactional email, checking delivery status, managing segments
// and reading blocked contacts.
//
// Every operation is a single request/response round trip. Options are
// explicit structs whose zero values are the documented defaults, results
// are typed records, and failures are either an [*APIError], carrying the
// provider's message verbatim, or a [*NetworkError]. The client never retries.
//
// Basic usage:
//
//	client, err := elasticemail.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sent, err := client.Email().Send(ctx, &elasticemail.SendRequest{
//	    From:            "noreply@example.com",
//	    To:              []string{"jane@example.com"},
//	    Subject:         "Welcome, {firstname}",
//	    BodyText:        "Hello {firstname}!",
//	    Merge:           map[string]string{"firstname": "Jane"},
//	    IsTransactional: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Message ID:", sent.MessageID)
package elasticemail
