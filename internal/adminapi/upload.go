package adminapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// MaxUploadSize mirrors the backend's request size limit.
const MaxUploadSize = 16 << 20

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type uploadResult struct {
	ImageURL string `json:"image_url"`
}

// UploadImage sends one image file as multipart form field "image" and
// returns the URL the backend stored it under.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	if !imageExtensions[strings.ToLower(filepath.Ext(filename))] {
		return "", &model.ValidationError{Field: "image", Message: "文件格式不支持"}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filepath.Base(filename))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	n, err := io.Copy(part, io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}
	if n > MaxUploadSize {
		return "", &model.ValidationError{Field: "image", Message: "文件过大"}
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	resp, err := c.send(ctx, http.MethodPost, "/upload/image", &buf, WithHeader("Content-Type", w.FormDataContentType()))
	if err != nil {
		return "", fmt.Errorf("上传失败: %w", err)
	}
	var out uploadResult
	if err := resp.Decode(&out); err != nil {
		return "", fmt.Errorf("上传失败: %w", err)
	}
	return out.ImageURL, nil
}
