package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/deviill007/ShakeHubInShop/entity"
	"github.com/deviill007/ShakeHubInShop/utils"
)

var ErrEmptyCart = errors.New("cart is empty")

// CustomerView is the menu/cart/checkout flow for one table. It keeps its
// own session token (the session-storage analog) and a cookie jar for the
// one the server issues; the two are independent and never reconciled.
type CustomerView struct {
	base    string
	table   string
	http    *http.Client
	session string

	Cart Cart
}

func NewCustomerView(baseURL, table string) *CustomerView {
	jar, _ := cookiejar.New(nil)
	return &CustomerView{
		base:  strings.TrimRight(baseURL, "/"),
		table: table,
		http:  &http.Client{Jar: jar, Timeout: 10 * time.Second},
	}
}

// SessionID is minted on first use and reused for the rest of the session.
func (v *CustomerView) SessionID() string {
	if v.session == "" {
		v.session = utils.NewSessionID()
	}
	return v.session
}

func (v *CustomerView) FetchMenu(ctx context.Context) ([]entity.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.base+"/api/menu/get", nil)
	if err != nil {
		return nil, err
	}
	res, err := v.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch menu: unexpected status %d", res.StatusCode)
	}

	var items []entity.MenuItem
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// MenuByCategory groups the menu the way the customer page renders it.
func (v *CustomerView) MenuByCategory(ctx context.Context) (map[string][]entity.MenuItem, error) {
	items, err := v.FetchMenu(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]entity.MenuItem)
	for _, it := range items {
		grouped[it.Category] = append(grouped[it.Category], it)
	}
	return grouped, nil
}

// PlaceOrder submits the cart for this view's table and clears it on
// success. The total is computed here, not by the server.
func (v *CustomerView) PlaceOrder(ctx context.Context) (*entity.Order, error) {
	if v.Cart.Len() == 0 {
		return nil, ErrEmptyCart
	}

	payload := map[string]interface{}{
		"sessionId": v.SessionID(),
		"table":     v.table,
		"items":     v.Cart.Items(),
		"total":     v.Cart.Total(),
		"status":    entity.OrderStatusPending,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.base+"/api/order/place", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := v.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("place order: unexpected status %d", res.StatusCode)
	}

	var out struct {
		Success bool          `json:"success"`
		Order   *entity.Order `json:"order"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}

	v.Cart.Clear()
	return out.Order, nil
}
