package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/shipthis-co/shipthis-go/internal/constants"
	internalhttp "github.com/shipthis-co/shipthis-go/internal/http"
	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
)

// FilesClient implements the shipthis.FilesClient interface. Uploads go to
// the dedicated upload host derived from the API base URL, outside the
// standard response envelope.
type FilesClient struct {
	client *Client
}

// NewFilesClient creates a new FilesClient.
func NewFilesClient(client *Client) *FilesClient {
	return &FilesClient{
		client: client,
	}
}

// Upload implements shipthis.FilesClient.Upload.
func (c *FilesClient) Upload(ctx context.Context, path string, opts *shipthis.UploadOptions) (shipthis.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &shipthis.RequestError{Message: fmt.Sprintf("file not found: %s", path)}
		}
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer func() { _ = f.Close() }()

	fileName := filepath.Base(path)
	if opts != nil && opts.FileName != "" {
		fileName = opts.FileName
	}

	return c.upload(ctx, fileName, f)
}

// UploadReader implements shipthis.FilesClient.UploadReader.
func (c *FilesClient) UploadReader(ctx context.Context, fileName string, r io.Reader) (shipthis.Document, error) {
	err := validateRequired("file name", fileName)
	if err != nil {
		return nil, err
	}

	return c.upload(ctx, fileName, r)
}

func (c *FilesClient) upload(ctx context.Context, fileName string, r io.Reader) (shipthis.Document, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("creating multipart form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("reading file contents: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart form: %w", err)
	}

	resp, err := c.client.httpClient.Do(ctx, &internalhttp.Request{
		Method:      http.MethodPost,
		URL:         deriveUploadURL(c.client.httpClient.BaseURL()),
		RawBody:     buf.Bytes(),
		ContentType: writer.FormDataContentType(),
		Timeout:     c.client.timeout * constants.UploadTimeoutFactor,
		Raw:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading file: %w", err)
	}

	var doc shipthis.Document
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		// Upload endpoint may answer with a bare URL string.
		return shipthis.Document{"url": strings.TrimSpace(string(resp.Body))}, nil
	}

	return doc, nil
}

// deriveUploadURL maps an API base URL onto the upload host, for example
// https://api.shipthis.co/api/v3/ becomes
// https://upload.shipthis.co/api/v3/file-upload.
func deriveUploadURL(baseURL string) string {
	base := strings.TrimSuffix(baseURL, "/")
	base = strings.TrimSuffix(base, "/api/v3")
	base = strings.Replace(base, "api.", "upload.", 1)

	return base + "/" + constants.APIPathFileUpload
}
