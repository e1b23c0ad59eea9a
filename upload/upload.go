// Package upload stores payment proof files submitted for an order.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

const (
	MaxSize = 5 * 1024 * 1024

	MsgSuccess      = "File uploaded successfully"
	MsgFailed       = "Failed to upload file"
	MsgNoFile       = "No file uploaded"
	MsgTypeNotAllow = "File type not allowed. Please upload JPEG, PNG, WebP, or PDF files."
	MsgTooLarge     = "File size too large. Maximum size is 5MB."
)

var AllowedTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
	"application/pdf",
}

// ValidationError is a rejected upload; Message is safe to show the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrNoFile         = &ValidationError{Message: MsgNoFile}
	ErrTypeNotAllowed = &ValidationError{Message: MsgTypeNotAllow}
	ErrTooLarge       = &ValidationError{Message: MsgTooLarge}
)

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// File is an incoming upload. Size may be -1 when unknown.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Result struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Message  string `json:"message"`
}

// Uploader accepts a payment proof for an order.
type Uploader interface {
	Upload(ctx context.Context, orderID string, f File) (Result, error)
}

// Sink persists a validated file and returns the public URL.
type Sink interface {
	Put(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

type Service struct {
	sink Sink
	now  func() time.Time
}

func NewService(sink Sink) *Service {
	return &Service{sink: sink, now: time.Now}
}

// Validate checks presence, type and declared size.
func Validate(f *File) error {
	if f == nil || f.Body == nil {
		return ErrNoFile
	}
	allowed := false
	for _, t := range AllowedTypes {
		if f.ContentType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrTypeNotAllowed
	}
	if f.Size > MaxSize {
		return ErrTooLarge
	}
	return nil
}

// Filename is payment-{orderId}-{unix millis}{ext}.
func Filename(orderID, original string, at time.Time) string {
	return fmt.Sprintf("payment-%s-%d%s", clean(orderID), at.UnixMilli(), clean(filepath.Ext(original)))
}

// clean keeps letters, digits, dot, dash and underscore so names stay inside the upload dir.
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		}
		return -1
	}, s)
}

// Upload validates f and hands it to the sink. Nothing is written when validation fails.
func (s *Service) Upload(ctx context.Context, orderID string, f File) (Result, error) {
	if err := Validate(&f); err != nil {
		return Result{}, err
	}

	data, err := io.ReadAll(io.LimitReader(f.Body, MaxSize+1))
	if err != nil {
		return Result{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxSize {
		return Result{}, ErrTooLarge
	}

	filename := Filename(orderID, f.Name, s.now())
	url, err := s.sink.Put(ctx, filename, f.ContentType, data)
	if err != nil {
		return Result{}, fmt.Errorf("store upload: %w", err)
	}

	return Result{
		Success:  true,
		Filename: filename,
		URL:      url,
		Message:  MsgSuccess,
	}, nil
}

// NewBytesFile wraps in-memory content as a File.
func NewBytesFile(name, contentType string, data []byte) File {
	return File{Name: name, ContentType: contentType, Size: int64(len(data)), Body: bytes.NewReader(data)}
}
