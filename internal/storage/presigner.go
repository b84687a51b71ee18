package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// UploadTarget is handed to clients so they can PUT the file body directly to
// the object store without routing bytes through the API.
type UploadTarget struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers,omitempty"`
	Expires time.Time         `json:"expires"`
}

//go:generate mockgen -source=presigner.go -destination=mock/presigner_mock.go -package=mock
type Presigner interface {
	PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (UploadTarget, error)
	PresignDownload(ctx context.Context, key string, expires time.Duration) (string, error)
}

// hmacPresigner signs object-store URLs the way a local gateway such as
// MinIO's presign scheme does: an expiry timestamp plus an HMAC over
// method, key and expiry.
type hmacPresigner struct {
	baseURL string
	secret  []byte
	now     func() time.Time
}

func NewHMACPresigner(baseURL, secret string) Presigner {
	return &hmacPresigner{
		baseURL: baseURL,
		secret:  []byte(secret),
		now:     time.Now,
	}
}

func (p *hmacPresigner) PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (UploadTarget, error) {
	exp := p.now().Add(expires).UTC()
	signed, err := p.sign("PUT", key, exp)
	if err != nil {
		return UploadTarget{}, err
	}

	headers := map[string]string{}
	if contentType != "" {
		headers["Content-Type"] = contentType
	}

	return UploadTarget{
		URL:     signed,
		Method:  "PUT",
		Headers: headers,
		Expires: exp,
	}, nil
}

func (p *hmacPresigner) PresignDownload(ctx context.Context, key string, expires time.Duration) (string, error) {
	exp := p.now().Add(expires).UTC()
	return p.sign("GET", key, exp)
}

func (p *hmacPresigner) sign(method, key string, exp time.Time) (string, error) {
	if key == "" {
		return "", fmt.Errorf("storage: empty object key")
	}

	mac := hmac.New(sha256.New, p.secret)
	fmt.Fprintf(mac, "%s\n%s\n%d", method, key, exp.Unix())
	sig := hex.EncodeToString(mac.Sum(nil))

	q := url.Values{}
	q.Set("expires", strconv.FormatInt(exp.Unix(), 10))
	q.Set("signature", sig)

	return fmt.Sprintf("%s/%s?%s", p.baseURL, url.PathEscape(key), q.Encode()), nil
}
