package audit

import (
	"fmt"
	"sync"
)

var (
	globalWriter Writer = NopWriter{}
	globalMu     sync.RWMutex
	enabled      bool
)

// Init installs w as the global audit writer. A nil w disables auditing.
func Init(w Writer) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if w == nil {
		globalWriter, enabled = NopWriter{}, false
		return
	}
	globalWriter, enabled = w, true
}

// InitFile installs a FileWriter for path. An empty path disables auditing.
func InitFile(path string) error {
	if path == "" {
		Init(nil)
		return nil
	}
	w, err := NewFileWriter(path)
	if err != nil {
		return err
	}
	Init(w)
	return nil
}

// Close closes the global writer and disables auditing.
func Close() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	err := globalWriter.Close()
	globalWriter, enabled = NopWriter{}, false
	return err
}

// Enabled reports whether audit logging is active.
func Enabled() bool {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return enabled
}

// Log writes event to the global writer. A non-nil error means the
// audited operation must fail too.
func Log(event *Event) error {
	globalMu.RLock()
	w := globalWriter
	globalMu.RUnlock()

	if err := w.Write(event); err != nil {
		return fmt.Errorf("audit log failed: %w", err)
	}
	return nil
}

func reason(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// LogOIDValidation records the outcome of validating one OID.
func LogOIDValidation(input string, validationErr error) error {
	eventType := EventOIDValidated
	if validationErr != nil {
		eventType = EventOIDRejected
	}
	return Log(NewEvent(eventType, resultOf(validationErr)).
		WithObject(Object{Type: "oid", OID: input}).
		WithContext(Context{Reason: reason(validationErr)}))
}

// LogEKUAcceptance records an attempt to accept an Extended Key Usage set.
// oids is the ordered content on success.
func LogEKUAcceptance(oids []string, acceptErr error) error {
	eventType := EventEKUAccepted
	if acceptErr != nil {
		eventType = EventEKURejected
	}
	return Log(NewEvent(eventType, resultOf(acceptErr)).
		WithObject(Object{Type: "eku", OIDs: oids}).
		WithContext(Context{Count: len(oids), Reason: reason(acceptErr)}))
}

// LogExtensionBuild records an attempt to build a custom extension. Only
// the value size is recorded.
func LogExtensionBuild(oid string, valueSize int, critical bool, buildErr error) error {
	eventType := EventExtensionBuilt
	if buildErr != nil {
		eventType = EventExtensionRejected
	}
	return Log(NewEvent(eventType, resultOf(buildErr)).
		WithObject(Object{Type: "extension", OID: oid}).
		WithContext(Context{ValueSize: valueSize, Critical: critical, Reason: reason(buildErr)}))
}

// LogDocumentLoaded records loading an edit-session document.
func LogDocumentLoaded(path string, extensions int, loadErr error) error {
	return Log(NewEvent(EventDocumentLoaded, resultOf(loadErr)).
		WithObject(Object{Type: "document", Path: path}).
		WithContext(Context{Count: extensions, Reason: reason(loadErr)}))
}
