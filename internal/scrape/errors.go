package scrape

import "fmt"

// Kind tags a scrape failure so the transport layer can pick a status code
// without string-matching messages.
type Kind int

const (
	// KindUpstreamUnavailable means the source site could not be fetched at
	// all (network error, timeout, non-2xx).
	KindUpstreamUnavailable Kind = iota
	// KindSectionNotFound means the home page no longer carries the
	// structural anchor a locator looks for.
	KindSectionNotFound
	// KindRecordsEmpty means the section was located but yielded zero items.
	KindRecordsEmpty
	// KindTargetNotFound means a detail page lacks the expected article root.
	KindTargetNotFound
	// KindPageMalformed means a detail page had the article root but was
	// missing a block the extractor cannot do without.
	KindPageMalformed
)

// Error is the tagged failure produced by the extraction layer.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func errUpstream(err error) *Error {
	return &Error{Kind: KindUpstreamUnavailable, Message: fmt.Sprintf("failed to reach source site: %v", err)}
}

func errSectionNotFound(section string) *Error {
	return &Error{Kind: KindSectionNotFound, Message: fmt.Sprintf("%s section not found on home page", section)}
}

func errRecordsEmpty(what string) *Error {
	return &Error{Kind: KindRecordsEmpty, Message: fmt.Sprintf("no %s found", what)}
}

func errTargetNotFound(what string, id int) *Error {
	return &Error{Kind: KindTargetNotFound, Message: fmt.Sprintf("%s with id %d not found", what, id)}
}

func errPageMalformed(msg string) *Error {
	return &Error{Kind: KindPageMalformed, Message: msg}
}
