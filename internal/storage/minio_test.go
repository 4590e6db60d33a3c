package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"staffregistry/internal/config"
)

func TestValidateConfig(t *testing.T) {
	valid := config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "photos"}
	assert.NoError(t, validateConfig(valid))

	tests := map[string]func(*config.MinIOConfig){
		"minio endpoint is required":     func(c *config.MinIOConfig) { c.Endpoint = "" },
		"minio credentials are required": func(c *config.MinIOConfig) { c.SecretKey = "" },
		"minio bucket is required":       func(c *config.MinIOConfig) { c.Bucket = "" },
	}
	for want, mutate := range tests {
		t.Run(want, func(t *testing.T) {
			cfg := valid
			mutate(&cfg)
			assert.EqualError(t, validateConfig(cfg), want)
		})
	}
}

func TestNewMinIO_RejectsIncompleteConfig(t *testing.T) {
	s, err := NewMinIO(context.Background(), config.MinIOConfig{})
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestInlineParams(t *testing.T) {
	p := inlineParams("staff-photos/3f1c.jpg")
	assert.Equal(t, `inline; filename="3f1c.jpg"`, p.Get("response-content-disposition"))
}

func TestTranslate(t *testing.T) {
	missing := minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}
	err := translate("staff-photos/a.png", missing)
	assert.ErrorIs(t, err, ErrObjectNotFound)
	assert.Contains(t, err.Error(), "staff-photos/a.png")

	assert.ErrorIs(t, translate("k", context.Canceled), context.Canceled)

	other := errors.New("connection reset")
	err = translate("k", other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, ErrObjectNotFound)
}
