package tron

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/androidmobilestore/mnw-wallet/config"
	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// sunPerTRX converts the chain's smallest unit to whole coins. TRC-20 USDT
// uses the same 6-decimal scale.
var sunPerTRX = decimal.New(1, 6)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.ChainQuerier against a TronGrid-compatible API.
type Client struct {
	httpClient   HTTPClient
	apiURL       string
	usdtContract string
	log          zerolog.Logger
}

// NewClient creates a chain client for the configured API endpoint.
func NewClient(httpClient HTTPClient, cfg config.ChainConfig, log zerolog.Logger) *Client {
	return &Client{
		httpClient:   httpClient,
		apiURL:       cfg.APIURL,
		usdtContract: cfg.USDTContract,
		log:          log,
	}
}

type accountResponse struct {
	Data []struct {
		Balance int64 `json:"balance"` // SUN
	} `json:"data"`
}

type trc20Response struct {
	Data []struct {
		TokenInfo struct {
			Symbol  string `json:"symbol"`
			Address string `json:"address"`
		} `json:"tokenInfo"`
		Balance string `json:"balance"` // smallest unit, stringified
	} `json:"data"`
}

// Balances queries TRX and USDT balances for an address. An address the
// chain has never seen returns zero balances, not an error; callers decide
// how to treat that.
func (c *Client) Balances(ctx context.Context, address string) (domain.ChainBalances, error) {
	var balances domain.ChainBalances

	var account accountResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/v1/accounts/%s", c.apiURL, address), &account); err != nil {
		return balances, fmt.Errorf("querying account: %w", err)
	}
	if len(account.Data) > 0 {
		balances.TRX = decimal.NewFromInt(account.Data[0].Balance).Div(sunPerTRX)
	}

	var tokens trc20Response
	url := fmt.Sprintf("%s/v1/accounts/%s/trc20?contract_address=%s", c.apiURL, address, c.usdtContract)
	if err := c.getJSON(ctx, url, &tokens); err != nil {
		return balances, fmt.Errorf("querying trc20 balance: %w", err)
	}
	for _, token := range tokens.Data {
		if token.TokenInfo.Symbol != "USDT" {
			continue
		}
		raw, err := decimal.NewFromString(token.Balance)
		if err != nil {
			return balances, fmt.Errorf("parsing trc20 balance %q: %w", token.Balance, err)
		}
		balances.USDT = raw.Div(sunPerTRX)
		break
	}

	return balances, nil
}

type broadcastRequest struct {
	FromAddress     string `json:"owner_address"`
	ToAddress       string `json:"to_address"`
	ContractAddress string `json:"contract_address,omitempty"`
	Amount          int64  `json:"amount"`
	Signature       string `json:"signature"`
}

type broadcastResponse struct {
	Result  bool   `json:"result"`
	TxID    string `json:"txid"`
	Message string `json:"message"`
}

// BroadcastTransfer submits a signed transfer and returns the transaction id.
func (c *Client) BroadcastTransfer(ctx context.Context, transfer ports.ChainTransfer) (string, error) {
	body := broadcastRequest{
		FromAddress: transfer.FromAddress,
		ToAddress:   transfer.ToAddress,
		Amount:      transfer.Amount.Mul(sunPerTRX).IntPart(),
		Signature:   hex.EncodeToString(transfer.Signature),
	}
	if transfer.Currency == domain.CurrencyUSDT {
		body.ContractAddress = c.usdtContract
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encoding broadcast request: %w", err)
	}

	url := c.apiURL + "/wallet/broadcasttransaction"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building broadcast request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("broadcasting transfer: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chain api returned status %d", resp.StatusCode)
	}

	var result broadcastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding broadcast response: %w", err)
	}
	if !result.Result {
		return "", fmt.Errorf("broadcast rejected: %s", result.Message)
	}

	c.log.Info().
		Str("txid", result.TxID).
		Str("currency", string(transfer.Currency)).
		Msg("transfer broadcast")

	return result.TxID, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chain api returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
