package artifact

import (
	"context"
	"fmt"
	"html"
	"net"
	"strconv"
	"strings"

	"digital.vasic.artifacts/pkg/report"
	"digital.vasic.artifacts/pkg/scenario"
)

// TraceLinker renders a link to the external trace viewer for a
// scenario's trace archive. No local file is read; the link may
// point at an archive the report server has not produced yet.
type TraceLinker struct {
	host   string
	port   int
	viewer string
}

// NewTraceLinker creates a linker for the report server at
// host:port and the trace viewer at viewerURL.
func NewTraceLinker(host string, port int, viewerURL string) TraceLinker {
	return TraceLinker{host: host, port: port, viewer: viewerURL}
}

// FileURL is the trace archive URL on the report server.
func (l TraceLinker) FileURL(id scenario.Identity) (string, error) {
	if l.port <= 0 {
		return "", ErrNoReportPort
	}
	return fmt.Sprintf(
		"http://%s/trace/%s.zip",
		net.JoinHostPort(l.host, strconv.Itoa(l.port)), id,
	), nil
}

// ViewerURL opens the trace archive in the trace viewer.
func (l TraceLinker) ViewerURL(id scenario.Identity) (string, error) {
	file, err := l.FileURL(id)
	if err != nil {
		return "", err
	}
	sep := "?"
	if strings.Contains(l.viewer, "?") {
		sep = "&"
	}
	return l.viewer + sep + "trace=" + file, nil
}

// Markup renders the HTML fragment attached to the report.
func (l TraceLinker) Markup(id scenario.Identity) (string, error) {
	viewer, err := l.ViewerURL(id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		`Trace file: <a href="%s">Open /trace/%s</a>`,
		html.EscapeString(viewer), html.EscapeString(id.String()),
	), nil
}

// Attach attaches the trace link as HTML. A missing report port is
// a configuration error and is returned.
func (l TraceLinker) Attach(
	ctx context.Context,
	id scenario.Identity,
	sink report.Sink,
) (Outcome, error) {
	markup, err := l.Markup(id)
	if err != nil {
		err = fmt.Errorf("trace link %s: %w", id, err)
		return failed(KindTrace, err), err
	}

	err = sink.Attach(ctx, report.Attachment{
		Name:      "trace.html",
		MediaType: report.MediaTypeHTML,
		Body:      strings.NewReader(markup),
	})
	if err != nil {
		err = fmt.Errorf("%w: trace: %w", ErrAttach, err)
		return failed(KindTrace, err), err
	}
	return attached(KindTrace, report.MediaTypeHTML), nil
}
