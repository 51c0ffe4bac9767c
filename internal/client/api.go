package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotFound is returned when the requested resource does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrNotAuthorized is returned when the server rejects the configured
// basic-auth credentials.
var ErrNotAuthorized = errors.New("not authorized")

// Client communicates with the Starfish inventory API.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
}

// New creates a new API client. The Starfish appliance ships with a
// self-signed certificate, so certificate verification is optional.
func New(baseURL, username, password string, insecureSkipVerify bool) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
		http: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: insecureSkipVerify},
			},
		},
	}
}

// Volume is a storage volume record. The service attaches arbitrary
// fields to each volume, so the record is kept semi-structured and only
// the well-known keys get accessors.
type Volume map[string]any

// Name returns the volume name, or "" if the record has none.
func (v Volume) Name() string {
	name, _ := v["vol"].(string)
	return name
}

// Type returns the volume's OS/platform tag, or "" if the record has none.
func (v Volume) Type() string {
	t, _ := v["type"].(string)
	return t
}

// AgentAddress returns the volume's default agent address, or "".
func (v Volume) AgentAddress() string {
	addr, _ := v["default_agent_address"].(string)
	return addr
}

// Pretty returns the full record as indented JSON with sorted keys.
func (v Volume) Pretty() string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "Error formatting JSON"
	}
	return string(data)
}

// Scan is an inspection job record, kept semi-structured like Volume.
type Scan map[string]any

// ID returns the scan identifier, or "".
func (s Scan) ID() string {
	id, _ := s["id"].(string)
	return id
}

// VolumeName returns the name of the volume the scan ran against, or "".
func (s Scan) VolumeName() string {
	vol, _ := s["volume"].(string)
	return vol
}

// ScanList is the envelope returned by the scan collection endpoint.
type ScanList map[string]any

// Scans returns the scan records inside the envelope. The second return
// value is false when the envelope has no "scans" array.
func (l ScanList) Scans() ([]Scan, bool) {
	raw, ok := l["scans"].([]any)
	if !ok {
		return nil, false
	}
	scans := make([]Scan, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			scans = append(scans, Scan(m))
		}
	}
	return scans, true
}

// ListVolumes returns all volumes known to the inventory service.
func (c *Client) ListVolumes(ctx context.Context) ([]Volume, error) {
	resp, err := c.doRequest(ctx, "/volume/")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var volumes []Volume
	if err := json.NewDecoder(resp.Body).Decode(&volumes); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return volumes, nil
}

// GetVolume returns a single volume by name. Returns ErrNotFound if no
// volume with that name exists.
func (c *Client) GetVolume(ctx context.Context, name string) (Volume, error) {
	resp, err := c.doRequest(ctx, "/volume/"+name)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var volume Volume
	if err := json.NewDecoder(resp.Body).Decode(&volume); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return volume, nil
}

// ListScans returns the scan collection envelope.
func (c *Client) ListScans(ctx context.Context) (ScanList, error) {
	resp, err := c.doRequest(ctx, "/scan/")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var scans ScanList
	if err := json.NewDecoder(resp.Body).Decode(&scans); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return scans, nil
}

// GetScan returns a single scan by ID. Returns ErrNotFound if no scan
// with that ID exists.
func (c *Client) GetScan(ctx context.Context, id string) (Scan, error) {
	resp, err := c.doRequest(ctx, "/scan/"+id)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var scan Scan
	if err := json.NewDecoder(resp.Body).Decode(&scan); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return scan, nil
}

func (c *Client) doRequest(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		resp.Body.Close()
		return nil, ErrNotAuthorized
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, ErrNotFound
	case resp.StatusCode >= 400:
		defer resp.Body.Close()
		var errResp struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error != "" {
			return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("server error: %d", resp.StatusCode)
	}

	return resp, nil
}
