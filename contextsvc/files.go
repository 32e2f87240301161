package contextsvc

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// File is a stored file artifact in a bucket.
type File struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UploadFile streams a file into the bucket and returns the stored record.
func (c *Client) UploadFile(ctx context.Context, bucketID, name string, content io.Reader) (*File, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		part, err := form.CreateFormFile("file", name)
		if err == nil {
			_, err = io.Copy(part, content)
		}
		if err == nil {
			err = form.Close()
		}
		pw.CloseWithError(err)
	}()

	path := "/buckets/" + url.PathEscape(bucketID) + "/files"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, pr)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp)
	}

	var file File
	if err := decodeJSONBody(resp.Body, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// ListFiles lists the bucket's stored files, newest first.
func (c *Client) ListFiles(ctx context.Context, bucketID string) ([]File, error) {
	var out struct {
		Files []File `json:"files"`
	}
	path := "/buckets/" + url.PathEscape(bucketID) + "/files"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Files, nil
}
