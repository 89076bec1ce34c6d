package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/deviill007/ShakeHubInShop/entity"
)

var ErrOrderNotFound = errors.New("order not found")

// AdminClient drives the admin panel's calls: menu curation, image upload
// and order fulfilment.
type AdminClient struct {
	base string
	http *http.Client
}

func NewAdminClient(baseURL string) *AdminClient {
	return &AdminClient{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *AdminClient) doJSON(ctx context.Context, method, path string, payload, out interface{}) (int, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.base+path, body)
	if err != nil {
		return 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := a.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if out != nil && res.StatusCode < 300 {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return res.StatusCode, err
		}
	}
	return res.StatusCode, nil
}

func (a *AdminClient) FetchPending(ctx context.Context) ([]entity.Order, error) {
	var out struct {
		Success bool           `json:"success"`
		Orders  []entity.Order `json:"orders"`
	}
	status, err := a.doJSON(ctx, http.MethodGet, "/api/order/get", nil, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fetch orders: unexpected status %d", status)
	}
	return out.Orders, nil
}

func (a *AdminClient) MarkReady(ctx context.Context, orderID uint) error {
	payload := map[string]uint{"orderId": orderID}
	status, err := a.doJSON(ctx, http.MethodPut, "/api/order/update", payload, nil)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrOrderNotFound
	default:
		return fmt.Errorf("mark ready: unexpected status %d", status)
	}
}

func (a *AdminClient) AddMenuItem(ctx context.Context, name string, price float64, category, imageURL string) (*entity.MenuItem, error) {
	payload := map[string]interface{}{
		"name": name, "price": price, "category": category, "imageUrl": imageURL,
	}
	var out struct {
		Message string           `json:"message"`
		Item    *entity.MenuItem `json:"item"`
	}
	status, err := a.doJSON(ctx, http.MethodPost, "/api/menu/add", payload, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, fmt.Errorf("add menu item: unexpected status %d", status)
	}
	return out.Item, nil
}

func (a *AdminClient) UpdateMenuItem(ctx context.Context, id uint, name string, price float64, category, imageURL string) (*entity.MenuItem, error) {
	payload := map[string]interface{}{
		"id": id, "name": name, "price": price, "category": category, "imageUrl": imageURL,
	}
	var out struct {
		Success bool             `json:"success"`
		Item    *entity.MenuItem `json:"item"`
	}
	status, err := a.doJSON(ctx, http.MethodPut, "/api/menu/update", payload, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("update menu item: unexpected status %d", status)
	}
	return out.Item, nil
}

func (a *AdminClient) DeleteMenuItem(ctx context.Context, id uint) error {
	payload := map[string]uint{"id": id}
	status, err := a.doJSON(ctx, http.MethodDelete, "/api/menu/delete", payload, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("delete menu item: unexpected status %d", status)
	}
	return nil
}

// UploadImage sends the file through the relay and returns the hosted URL.
func (a *AdminClient) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, file); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.base+"/api/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := a.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload: unexpected status %d", res.StatusCode)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.URL, nil
}
