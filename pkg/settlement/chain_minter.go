package settlement

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/scrapline/claimd/pkg/players"
)

// ChainMinter settles rewards against a remote chain service over HTTP
type ChainMinter struct {
	baseURL string
	client  *http.Client
}

// NewChainMinter creates a ChainMinter for the service at baseURL. The
// timeout bounds each settlement call so a slow chain service cannot hold a
// claim response hostage.
func NewChainMinter(baseURL string, timeout time.Duration) *ChainMinter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ChainMinter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type mintRequest struct {
	Wallet string `json:"wallet"`
	Amount int    `json:"amount"`
}

type mintTokenRequest struct {
	Wallet string `json:"wallet"`
	ItemID string `json:"itemId"`
	DefID  string `json:"defId"`
	Rarity string `json:"rarity"`
}

type mintResponse struct {
	TransactionID string `json:"transaction_id"`
	TokenID       string `json:"token_id"`
	Error         string `json:"error"`
	Detail        string `json:"detail"`
}

// MintCaps implements Minter
func (m *ChainMinter) MintCaps(ctx context.Context, wallet string, amount int) (string, error) {
	var resp mintResponse
	err := m.post(ctx, "/mint", mintRequest{Wallet: wallet, Amount: amount}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", fmt.Errorf("%w: %s (%s)", ErrMintRejected, resp.Error, resp.Detail)
	}
	return resp.TransactionID, nil
}

// MintLootToken implements TokenMinter
func (m *ChainMinter) MintLootToken(ctx context.Context, wallet string, item players.Item) (string, bool, error) {
	if !qualifiesForToken(item.Rarity) {
		return "", false, nil
	}

	var resp mintResponse
	req := mintTokenRequest{Wallet: wallet, ItemID: item.ID, DefID: item.DefID, Rarity: string(item.Rarity)}
	if err := m.post(ctx, "/mint-token", req, &resp); err != nil {
		return "", false, err
	}
	if resp.Error != "" {
		return "", false, fmt.Errorf("%w: %s (%s)", ErrMintRejected, resp.Error, resp.Detail)
	}
	return resp.TokenID, true, nil
}

func (m *ChainMinter) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding mint request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building mint request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling chain service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chain service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding chain response: %w", err)
	}
	return nil
}
