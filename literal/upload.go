// Package literal provides a client for the Literal.club GraphQL API.
package literal

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/conatus/literal-tools/filesystem"
	"github.com/conatus/literal-tools/log"
	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"
)

// coverExtensions lists the image formats accepted as cover images.
var coverExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// uploadMap binds multipart part "0" to the $file variable.
const uploadMap = `{"0":["variables.file"]}`

// CheckCover verifies that path names a readable image file without touching the network.
func CheckCover(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !lo.Contains(coverExtensions, ext) {
		return validationError("cover %s: unsupported image type %q", path, ext)
	}

	info, err := filesystem.API().Stat(path)
	if err != nil {
		return validationError("cover %s: %v", path, err)
	}

	if info.IsDir() {
		return validationError("cover %s: is a directory", path)
	}

	return nil
}

// UploadImage uploads the image at path using a GraphQL multipart request and returns the reference
// to pass as a book cover.
func (c *Client) UploadImage(ctx context.Context, token, path string) (string, error) {
	if err := CheckCover(path); err != nil {
		return "", err
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return "", validationError("cover %s: %v", path, err)
	}
	defer file.Close()

	operations, err := json.Marshal(graphQLRequest{
		Query:     uploadImageMutation,
		Variables: map[string]any{"file": nil},
	})
	if err != nil {
		return "", err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	log.Infof("Uploading cover image %s", path)

	req := c.rest.R().
		SetContext(ctx).
		SetHeader("Apollo-Require-Preflight", "true").
		SetMultipartFields(
			&resty.MultipartField{
				Param:       "operations",
				ContentType: "application/json",
				Reader:      strings.NewReader(string(operations)),
			},
			&resty.MultipartField{
				Param:       "map",
				ContentType: "application/json",
				Reader:      strings.NewReader(uploadMap),
			},
			&resty.MultipartField{
				Param:       "0",
				FileName:    filepath.Base(path),
				ContentType: contentType,
				Reader:      file,
			},
		)

	if token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Post(c.endpoint)
	if err != nil {
		log.Error(err)
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	var response struct {
		UploadImage struct {
			URL string `json:"url"`
		} `json:"uploadImage"`
	}

	if err := decode(resp, &response); err != nil {
		return "", err
	}

	if response.UploadImage.URL == "" {
		return "", fmt.Errorf("%w: upload returned no image reference", ErrAPI)
	}

	log.Infof("Cover uploaded to %s", response.UploadImage.URL)
	return response.UploadImage.URL, nil
}
