package slack

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
)

// uploadSession threads the three upload steps together. It lives for
// one UploadFile call and is discarded afterwards, whatever the
// outcome.
type uploadSession struct {
	uploadURL string
	fileID    string
	channelID string
	title     string
}

// UploadFile shares a local file into a channel via the platform's
// external-upload flow: reserve an upload slot, transfer the raw bytes
// to the short-lived URL the slot names, then finalize the upload. A
// failed transfer or finalize leaves the orphaned slot to the
// platform's own garbage collection.
func (c *Client) UploadFile(ctx context.Context, channelID, path, title string) (*Envelope, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &NotFoundError{Path: path}
	}

	session, err := c.reserveUploadSlot(ctx, filepath.Base(path), info.Size())
	if err != nil {
		return nil, err
	}
	session.channelID = channelID
	session.title = title

	if err := c.transferFile(ctx, session.uploadURL, path); err != nil {
		return nil, err
	}
	return c.completeUpload(ctx, session)
}

// reserveUploadSlot asks the platform for a pre-signed upload URL and
// the file ID it will be known by.
func (c *Client) reserveUploadSlot(ctx context.Context, filename string, length int64) (*uploadSession, error) {
	query := url.Values{}
	query.Set("filename", filename)
	query.Set("length", strconv.FormatInt(length, 10))
	env, err := c.call(ctx, requestSpec{
		method:   http.MethodPost,
		endpoint: "files.getUploadURLExternal",
		query:    query,
	})
	if err != nil {
		return nil, err
	}
	uploadURL, err := env.String("upload_url")
	if err != nil {
		return nil, err
	}
	fileID, err := env.String("file_id")
	if err != nil {
		return nil, err
	}
	return &uploadSession{uploadURL: uploadURL, fileID: fileID}, nil
}

// transferFile streams the raw file contents to the pre-signed URL.
// This call bypasses the dispatcher (different host, no platform
// bearer token) but reports failures as the same RequestError kind.
// The file handle is scoped to this step on every path.
func (c *Client) transferFile(ctx context.Context, uploadURL, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return &NotFoundError{Path: path}
	}
	defer file.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, file)
	if err != nil {
		return &RequestError{Endpoint: uploadURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	c.logf("POST %s (file transfer)", uploadURL)
	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Endpoint: uploadURL, Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Endpoint: uploadURL, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}
	return nil
}

// completeUpload finalizes the slot and shares the file into the
// session's channel, returning the completion envelope.
func (c *Client) completeUpload(ctx context.Context, session *uploadSession) (*Envelope, error) {
	entry := map[string]any{"id": session.fileID}
	if session.title != "" {
		entry["title"] = session.title
	}
	return c.call(ctx, requestSpec{
		method:   http.MethodPost,
		endpoint: "files.completeUploadExternal",
		body: map[string]any{
			"files":      []any{entry},
			"channel_id": session.channelID,
		},
	})
}
