package mediahost

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"clipstream/internal/config"
)

var (
	ErrCredentialIssuance = errors.New("media host credentials are not configured")
)

// credentialTTL bounds how long an issued upload credential stays valid.
// The media host rejects expire values more than an hour out.
const credentialTTL = 30 * time.Minute

// deleteTimeout caps the advisory delete call so a hung media host cannot
// stall the enclosing video delete.
const deleteTimeout = 10 * time.Second

type UploadCredential struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

// Service issues direct-upload credentials for the media host and deletes
// previously uploaded files through its REST API. Uploads themselves never
// pass through this server.
type Service interface {
	AuthParams() (*UploadCredential, error)
	DeleteFile(ctx context.Context, fileID string) error
}

type service struct {
	privateKey string
	publicKey  string
	apiBase    string
	httpClient *http.Client
}

func NewService(cfg *config.Config) Service {
	return &service{
		privateKey: cfg.ImageKitPrivateKey,
		publicKey:  cfg.ImageKitPublicKey,
		apiBase:    cfg.ImageKitAPIBase,
		httpClient: &http.Client{Timeout: deleteTimeout},
	}
}

// AuthParams returns a single-use signed authorization the browser presents
// to the media host: a random token, a unix expiry, and an HMAC-SHA1 of
// token+expire under the server-held private key. The private key itself
// never leaves the server.
func (s *service) AuthParams() (*UploadCredential, error) {
	if s.privateKey == "" || s.publicKey == "" {
		return nil, ErrCredentialIssuance
	}

	token := uuid.NewString()
	expire := time.Now().Add(credentialTTL).Unix()

	mac := hmac.New(sha1.New, []byte(s.privateKey))
	if _, err := mac.Write([]byte(token + strconv.FormatInt(expire, 10))); err != nil {
		return nil, ErrCredentialIssuance
	}

	return &UploadCredential{
		Token:     token,
		Expire:    expire,
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}, nil
}

func (s *service) DeleteFile(ctx context.Context, fileID string) error {
	if s.privateKey == "" {
		return ErrCredentialIssuance
	}

	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/v1/files/%s", s.apiBase, fileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(s.privateKey, "")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("media host delete request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("media host delete returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
