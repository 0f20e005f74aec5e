package delivery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driven"
)

// Compile-time check that DropboxSink implements the DeliverySink interface.
var _ driven.DeliverySink = (*DropboxSink)(nil)

// DropboxSink uploads reports to a folder in a Dropbox account.
type DropboxSink struct {
	client files.Client
	folder string
}

// NewDropboxSink creates a sink uploading into folder, authenticated with the
// given access token.
func NewDropboxSink(token, folder string) (*DropboxSink, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: dropbox access token not configured", domain.ErrAuthRequired)
	}
	cfg := dropbox.Config{
		Token:    token,
		LogLevel: dropbox.LogOff,
	}
	return &DropboxSink{
		client: files.New(cfg),
		folder: folder,
	}, nil
}

// NewDropboxDialer returns a SinkDialer producing DropboxSinks. Every dial
// constructs a fresh client so a retry never reuses the connection of a
// failed attempt.
func NewDropboxDialer(token, folder string) driven.SinkDialer {
	return func(ctx context.Context) (driven.DeliverySink, error) {
		return NewDropboxSink(token, folder)
	}
}

// Deliver deletes any previous report with the same name, then uploads the
// payload in overwrite mode. A missing previous report is not an error.
func (s *DropboxSink) Deliver(ctx context.Context, name string, payload []byte) error {
	path := reportPath(s.folder, name)

	if _, err := s.client.DeleteV2(files.NewDeleteArg(path)); err != nil && !isPathMissing(err) {
		return fmt.Errorf("delete previous report: %w", err)
	}

	arg := files.NewUploadArg(path)
	arg.Mode = &files.WriteMode{Tagged: dropbox.Tagged{Tag: files.WriteModeOverwrite}}
	if _, err := s.client.Upload(arg, bytes.NewReader(payload)); err != nil {
		return fmt.Errorf("upload report: %w", err)
	}
	return nil
}

// reportPath joins folder and name into an absolute Dropbox path.
func reportPath(folder, name string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return "/" + name
	}
	return "/" + folder + "/" + name
}

// isPathMissing reports whether err is a delete failure caused by the target
// path not existing.
func isPathMissing(err error) bool {
	var deleteErr files.DeleteV2APIError
	if !errors.As(err, &deleteErr) {
		return false
	}
	endpointErr := deleteErr.EndpointError
	return endpointErr != nil &&
		endpointErr.Tag == files.DeleteErrorPathLookup &&
		endpointErr.PathLookup != nil &&
		endpointErr.PathLookup.Tag == files.LookupErrorNotFound
}
