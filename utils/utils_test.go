package utils

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.NoError(t, VerifyPassword(hash, "s3cret-pass"))
	assert.Error(t, VerifyPassword(hash, "wrong"))
}

func TestTokenIssuer(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)

	signed, claims, err := ti.GenerateToken("user-1", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, claims.TokenID())

	got, err := ti.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)
	assert.Equal(t, "admin", got.Role)
	assert.Equal(t, claims.TokenID(), got.TokenID())
	assert.InDelta(t, time.Hour.Seconds(), got.Remaining(time.Now()).Seconds(), 5)

	other := NewTokenIssuer("another-secret", time.Hour)
	_, err = other.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ti.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuerRejectsExpired(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Nanosecond)
	signed, _, err := ti.GenerateToken("user-1", "staff")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	_, err = ti.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMemoryDenylist(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDenylist()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Minute))
	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = d.IsRevoked(ctx, "jti-2")
	assert.False(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, _ = d.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrescriptionUploaderStoresImageAndPreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := NewMockObjectStorage(ctrl)
	at := time.Unix(1700000000, 0)

	gomock.InOrder(
		storage.EXPECT().
			PutObject(gomock.Any(), "prescriptions/tx1_1700000000.png", gomock.Any(), gomock.Any(), "image/png").
			Return(nil),
		storage.EXPECT().
			PutObject(gomock.Any(), "prescriptions/tx1_1700000000_preview.jpg", gomock.Any(), gomock.Any(), "image/jpeg").
			Return(nil),
	)

	u := NewPrescriptionUploader(storage, "https://cdn.example.com/")
	got, err := u.store(context.Background(), "tx1", pngBytes(t, 40, 30), "image/png", at)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/prescriptions/tx1_1700000000.png", got.URL)
	assert.Equal(t, "https://cdn.example.com/prescriptions/tx1_1700000000_preview.jpg", got.PreviewURL)
}

func TestPrescriptionUploaderPropagatesStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := NewMockObjectStorage(ctrl)
	storage.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("bucket unavailable"))

	u := NewPrescriptionUploader(storage, "https://cdn.example.com")
	_, err := u.store(context.Background(), "tx1", pngBytes(t, 8, 8), "image/png", time.Now())
	assert.ErrorContains(t, err, "bucket unavailable")
}

func TestPrescriptionUploaderRejectsBadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	u := NewPrescriptionUploader(NewMockObjectStorage(ctrl), "https://cdn.example.com")

	_, err := u.Upload(context.Background(), "tx1", &multipart.FileHeader{Size: maxFileSize + 1})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	header := textproto.MIMEHeader{}
	header.Set("Content-Type", "application/pdf")
	_, err = u.Upload(context.Background(), "tx1", &multipart.FileHeader{Size: 10, Header: header})
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = u.store(context.Background(), "tx1", []byte("not an image"), "image/png", time.Now())
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}
