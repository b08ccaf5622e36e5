package imagefetch

import (
	"context"
	"encoding/base64"
	"mime"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/CrestNiraj12/terminalsentiment/domain"
)

// maxImageBytes bounds the payload forwarded to the sentiment backend.
const maxImageBytes = 10 << 20

// Encoder fetches remote images and encodes them as data-URIs.
type Encoder struct {
	rest *resty.Client
}

// New creates an Encoder. rt may be nil for the default transport.
func New(rt http.RoundTripper) *Encoder {
	c := resty.New().SetHeader("Accept", "image/*")
	if rt != nil {
		c.SetTransport(rt)
	}
	return &Encoder{rest: c}
}

// Encode downloads url and returns "data:<mime>;base64,<payload>".
// Every failure is a *domain.ImageFetchError.
func (e *Encoder) Encode(ctx context.Context, url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", &domain.ImageFetchError{URL: url, Err: errors.New("empty url")}
	}
	resp, err := e.rest.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", &domain.ImageFetchError{URL: url, Err: errors.Wrap(err, "request")}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", &domain.ImageFetchError{URL: url, Err: errors.Errorf("status %d", resp.StatusCode())}
	}
	body := resp.Body()
	if len(body) == 0 {
		return "", &domain.ImageFetchError{URL: url, Err: errors.New("empty body")}
	}
	if len(body) > maxImageBytes {
		return "", &domain.ImageFetchError{URL: url, Err: errors.Errorf("image too large: %d bytes", len(body))}
	}
	mediaType := imageMediaType(resp.Header().Get("Content-Type"), body)
	if mediaType == "" {
		return "", &domain.ImageFetchError{URL: url, Err: errors.New("response is not an image")}
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(body), nil
}

// imageMediaType prefers the declared content type and falls back to sniffing.
func imageMediaType(declared string, body []byte) string {
	if mt, _, err := mime.ParseMediaType(declared); err == nil && strings.HasPrefix(mt, "image/") {
		return mt
	}
	sniffed, _, _ := mime.ParseMediaType(http.DetectContentType(body))
	if strings.HasPrefix(sniffed, "image/") {
		return sniffed
	}
	return ""
}
