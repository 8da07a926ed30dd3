// Package audit records extension editing operations in an append-only,
// hash-chained JSON Lines log.
//
// Key principles:
//   - Audit failure = Operation failure
//   - Extension values are logged by length only, never by content
//   - All timestamps in UTC
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// EventType represents the category of audit event.
type EventType string

const (
	// OID events
	EventOIDValidated EventType = "OID_VALIDATED"
	EventOIDRejected  EventType = "OID_REJECTED"

	// Extended Key Usage events
	EventEKUAccepted EventType = "EKU_ACCEPTED"
	EventEKURejected EventType = "EKU_REJECTED"

	// Custom extension events
	EventExtensionBuilt    EventType = "EXTENSION_BUILT"
	EventExtensionRejected EventType = "EXTENSION_REJECTED"

	// Edit-session documents
	EventDocumentLoaded EventType = "DOCUMENT_LOADED"
)

// Result represents the outcome of an audited operation.
type Result string

const (
	ResultSuccess Result = "success"
	ResultFailure Result = "failure"
)

func resultOf(err error) Result {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}

// Actor represents who performed the action.
type Actor struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Host string `json:"host,omitempty"`
}

// Object represents what was acted upon.
type Object struct {
	Type string   `json:"type"`           // "oid", "eku", "extension", "document"
	OID  string   `json:"oid,omitempty"`  // extension or purpose identifier
	OIDs []string `json:"oids,omitempty"` // ordered EKU purposes
	Path string   `json:"path,omitempty"` // source file
}

// Context provides additional details about the operation.
type Context struct {
	Count     int    `json:"count,omitempty"`      // number of OIDs or extensions
	ValueSize int    `json:"value_size,omitempty"` // extension value length in bytes
	Critical  bool   `json:"critical,omitempty"`
	Reason    string `json:"reason,omitempty"` // failure reason
}

// Event represents a single audit log entry.
type Event struct {
	EventType EventType `json:"event_type"`
	Timestamp string    `json:"timestamp"` // RFC3339 UTC
	Actor     Actor     `json:"actor"`
	Object    Object    `json:"object"`
	Context   Context   `json:"context,omitempty"`
	Result    Result    `json:"result"`
	HashPrev  string    `json:"hash_prev"`
	Hash      string    `json:"hash"`
}

// NewEvent creates an event stamped with the current time and local user.
func NewEvent(eventType EventType, result Result) *Event {
	hostname, _ := os.Hostname()
	username := os.Getenv("USER")
	if username == "" {
		username = os.Getenv("USERNAME")
	}
	if username == "" {
		username = "unknown"
	}

	return &Event{
		EventType: eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Actor:     Actor{Type: "user", ID: username, Host: hostname},
		Result:    result,
	}
}

// WithObject sets the object field.
func (e *Event) WithObject(obj Object) *Event {
	e.Object = obj
	return e
}

// WithContext sets the context field.
func (e *Event) WithContext(ctx Context) *Event {
	e.Context = ctx
	return e
}

// Validate checks that required fields are present.
func (e *Event) Validate() error {
	switch {
	case e.EventType == "":
		return fmt.Errorf("event_type is required")
	case e.Timestamp == "":
		return fmt.Errorf("timestamp is required")
	case e.Actor.Type == "" || e.Actor.ID == "":
		return fmt.Errorf("actor type and id are required")
	case e.Result == "":
		return fmt.Errorf("result is required")
	}
	return nil
}

// canonicalJSON is the hashed form of the event: everything except Hash.
func (e *Event) canonicalJSON() ([]byte, error) {
	type hashed struct {
		EventType EventType `json:"event_type"`
		Timestamp string    `json:"timestamp"`
		Actor     Actor     `json:"actor"`
		Object    Object    `json:"object"`
		Context   Context   `json:"context,omitempty"`
		Result    Result    `json:"result"`
		HashPrev  string    `json:"hash_prev"`
	}
	return json.Marshal(hashed{
		EventType: e.EventType,
		Timestamp: e.Timestamp,
		Actor:     e.Actor,
		Object:    e.Object,
		Context:   e.Context,
		Result:    e.Result,
		HashPrev:  e.HashPrev,
	})
}
