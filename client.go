/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * IPP client: connection, request builder and HTTP transport
 */

package ippctl

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
)

const (
	// ContentType is the MIME type of IPP message bodies
	ContentType = "application/ipp"

	// DefaultPort is the registered IPP port
	DefaultPort = 631

	// DefaultBasePath is the conventional IPP endpoint path
	DefaultBasePath = "/ipp/print"

	// DefaultRequestingUser is sent as requesting-user-name when
	// the caller doesn't set one
	DefaultRequestingUser = "ippctl"
)

// Connection describes how to reach a printer's IPP endpoint.
// It is immutable once constructed and owned by the caller.
type Connection struct {
	Host      string // Printer host name or address
	Port      int    // TCP port, conventionally 631
	BasePath  string // Endpoint path, conventionally "/ipp/print"
	TLS       bool   // Use HTTPS/ipps schemes
	VerifyTLS bool   // Verify the device certificate
}

// URL returns the HTTP endpoint URL of the connection
func (conn *Connection) URL() string {
	scheme := "http"
	if conn.TLS {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s:%d%s",
		scheme, conn.Host, conn.Port, conn.BasePath)
}

// PrinterURI returns the printer-uri of the connection
func (conn *Connection) PrinterURI() string {
	scheme := "ipp"
	if conn.TLS {
		scheme = "ipps"
	}

	return fmt.Sprintf("%s://%s:%d%s",
		scheme, conn.Host, conn.Port, conn.BasePath)
}

// JobURI returns the job-uri for a job on this printer. The job id is
// appended to the printer-uri path, which is the convention CUPS uses.
func (conn *Connection) JobURI(jobID int) string {
	return fmt.Sprintf("%s/%d", conn.PrinterURI(), jobID)
}

// Client is an IPP client bound to a single printer endpoint.
//
// A Client is safe for concurrent use. The only mutable state shared
// between calls is the request-id counter, which is advanced
// atomically; everything else is built fresh per call.
type Client struct {
	// Conn is the connection descriptor. Treat as read-only after
	// the client is created.
	Conn Connection

	// RequestingUser is sent as requesting-user-name with every
	// request. Defaults to DefaultRequestingUser.
	RequestingUser string

	// HTTPClient performs the HTTP exchanges. NewClient installs
	// one honoring Conn.VerifyTLS; replace it for testing.
	HTTPClient *http.Client

	requestID uint32 // Last issued request-id, advanced atomically
}

// NewClient creates a Client for the given connection. Unset
// connection fields get the conventional IPP defaults.
func NewClient(conn Connection) *Client {
	if conn.Port == 0 {
		conn.Port = DefaultPort
	}
	if conn.BasePath == "" {
		conn.BasePath = DefaultBasePath
	}

	httpc := &http.Client{}
	if conn.TLS && !conn.VerifyTLS {
		httpc.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		Conn:           conn,
		RequestingUser: DefaultRequestingUser,
		HTTPClient:     httpc,
	}
}

// nextRequestID returns the next request-id. Ids start at 1, increase
// monotonically and wrap at the 31-bit boundary, skipping 0 so the id
// is never zero and never negative when seen as a signed integer.
func (c *Client) nextRequestID() uint32 {
	for {
		id := atomic.AddUint32(&c.requestID, 1) & 0x7fffffff
		if id != 0 {
			return id
		}
	}
}

// newRequest assembles a request for the given operation. The
// operation attributes group is built in the mandatory order:
// attributes-charset, attributes-natural-language, then the target.
// Printer operations address the printer-uri; job operations address
// the job-uri plus a job-id integer, matching what CUPS accepts.
func (c *Client) newRequest(op Op, jobID int, extra Attributes) *Request {
	rq := &Request{
		Version:   DefaultVersion,
		Op:        op,
		RequestID: c.nextRequestID(),
	}

	rq.Operation.Add(MakeAttribute("attributes-charset",
		TagCharset, String("utf-8")))
	rq.Operation.Add(MakeAttribute("attributes-natural-language",
		TagLanguage, String("en")))

	if jobID > 0 {
		rq.Operation.Add(MakeAttribute("job-uri",
			TagURI, String(c.Conn.JobURI(jobID))))
		rq.Operation.Add(MakeAttribute("job-id",
			TagInteger, Integer(jobID)))
	} else {
		rq.Operation.Add(MakeAttribute("printer-uri",
			TagURI, String(c.Conn.PrinterURI())))
	}

	user := c.RequestingUser
	if user == "" {
		user = DefaultRequestingUser
	}
	rq.Operation.Add(MakeAttribute("requesting-user-name",
		TagName, String(user)))

	for _, attr := range extra {
		rq.Operation.Add(attr)
	}

	return rq
}

// do performs one full exchange: encode, POST, read, decode, correlate.
// Exactly one HTTP request is issued; there is no retry here. Deadline
// and cancellation come from the caller's context.
func (c *Client) do(ctx context.Context, rq *Request) (*Response, error) {
	opName := rq.Op.String()

	data, err := rq.EncodeBytes()
	if err != nil {
		return nil, err
	}

	url := c.Conn.URL()
	httpRq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		url, bytes.NewReader(data))
	if err != nil {
		return nil, &TransportError{Op: opName, URL: url, Err: err}
	}
	httpRq.Header.Set("Content-Type", ContentType)

	httpRsp, err := c.HTTPClient.Do(httpRq)
	if err != nil {
		return nil, &TransportError{Op: opName, URL: url, Err: err}
	}
	defer httpRsp.Body.Close()

	if httpRsp.StatusCode/100 != 2 {
		return nil, &TransportError{Op: opName, URL: url,
			Err: fmt.Errorf("unexpected HTTP status %s", httpRsp.Status)}
	}

	body, err := io.ReadAll(httpRsp.Body)
	if err != nil {
		return nil, &TransportError{Op: opName, URL: url, Err: err}
	}

	rsp := &Response{}
	err = rsp.DecodeBytes(body)
	if err != nil {
		return nil, err
	}

	if rsp.RequestID != rq.RequestID {
		return nil, &ProtocolMismatchError{Op: opName,
			Sent: rq.RequestID, Received: rsp.RequestID}
	}

	return rsp, nil
}
