package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/nfnt/resize"
)

//go:generate mockgen -source=prescription.go -destination=prescription_mock.go -package=utils

const (
	maxFileSize       = 5 * 1024 * 1024
	compressThreshold = 100 * 1024
	mainImageWidth    = 800
	previewSize       = 300
)

var (
	ErrFileTooLarge     = errors.New("file size exceeds the 5MB limit")
	ErrUnsupportedImage = errors.New("unsupported file format")
)

// ObjectStorage is the subset of an S3 client the uploader needs.
type ObjectStorage interface {
	PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}

type MinioStorage struct {
	client *minio.Client
	bucket string
}

func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init S3 client: %w", err)
	}
	return &MinioStorage{client: client, bucket: bucket}, nil
}

func (s *MinioStorage) PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

// PrescriptionUploader stores a prescription scan and its preview thumbnail.
type PrescriptionUploader struct {
	storage ObjectStorage
	baseURL string
}

func NewPrescriptionUploader(storage ObjectStorage, publicBaseURL string) *PrescriptionUploader {
	return &PrescriptionUploader{storage: storage, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

type UploadedImage struct {
	URL        string `json:"url"`
	PreviewURL string `json:"previewUrl"`
}

// Upload stores file under prescriptions/<owner>_<unix>. Large images are
// downscaled to 800px wide; the preview always fits in 300x300.
func (u *PrescriptionUploader) Upload(ctx context.Context, owner string, file *multipart.FileHeader) (*UploadedImage, error) {
	if file.Size > maxFileSize {
		return nil, ErrFileTooLarge
	}
	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	original, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read image data: %w", err)
	}
	return u.store(ctx, owner, original, contentType, time.Now())
}

func (u *PrescriptionUploader) store(ctx context.Context, owner string, original []byte, contentType string, at time.Time) (*UploadedImage, error) {
	var img image.Image
	var err error
	if contentType == "image/png" {
		img, err = png.Decode(bytes.NewReader(original))
	} else {
		img, err = jpeg.Decode(bytes.NewReader(original))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	base := fmt.Sprintf("prescriptions/%s_%d", owner, at.Unix())
	mainKey, previewKey := base+".jpg", base+"_preview.jpg"

	var main bytes.Buffer
	mainType := "image/jpeg"
	if len(original) >= compressThreshold {
		resized := resize.Resize(mainImageWidth, 0, img, resize.Lanczos3)
		if err := jpeg.Encode(&main, resized, &jpeg.Options{Quality: 80}); err != nil {
			return nil, fmt.Errorf("encode resized image: %w", err)
		}
	} else {
		main.Write(original)
		mainType = contentType
		if contentType == "image/png" {
			mainKey = base + ".png"
		}
	}
	if err := u.storage.PutObject(ctx, mainKey, &main, int64(main.Len()), mainType); err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	var preview bytes.Buffer
	thumb := resize.Thumbnail(previewSize, previewSize, img, resize.Lanczos3)
	if err := jpeg.Encode(&preview, thumb, &jpeg.Options{Quality: 75}); err != nil {
		return nil, fmt.Errorf("encode preview image: %w", err)
	}
	if err := u.storage.PutObject(ctx, previewKey, &preview, int64(preview.Len()), "image/jpeg"); err != nil {
		return nil, fmt.Errorf("upload preview image: %w", err)
	}

	return &UploadedImage{
		URL:        u.baseURL + "/" + mainKey,
		PreviewURL: u.baseURL + "/" + previewKey,
	}, nil
}
