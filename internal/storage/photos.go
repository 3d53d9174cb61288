package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/salonova-app/booking-api/internal/config"
)

const (
	maxPhotoWidth = 1280
	webpQuality   = 85
)

// PhotoStore uploads business photos to S3. Inputs are decoded, scaled
// down and re-encoded as webp so the client never downloads camera-sized
// originals.
type PhotoStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AWSKey,
			cfg.AWSSecret,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &PhotoStore{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: cfg.S3PublicURL,
	}
}

// UploadBusinessPhoto stores the image under businesses/<id>/ and
// returns the public URL.
func (p *PhotoStore) UploadBusinessPhoto(
	ctx context.Context,
	businessID uint,
	r io.Reader,
) (string, error) {

	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	src = scaleDown(src, maxPhotoWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("businesses/%d/%s.webp", businessID, uuid.NewString())

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("%s/%s", p.publicURL, key), nil
}

func scaleDown(src image.Image, maxWidth int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxWidth {
		return src
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
