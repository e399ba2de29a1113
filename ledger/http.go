package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"checkersbot/game"
)

// HTTPClient talks to a remote ledger node over its JSON request/response
// endpoint. The node resolves the caller's identity from the connection,
// so the client only ships method names and positional string parameters.
type HTTPClient struct {
	url    string
	client *http.Client
	nextID int
}

// NewHTTPClient initializes and returns a new HTTPClient for the node at url.
func NewHTTPClient(url string) *HTTPClient {
	return &HTTPClient{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type rpcRequest struct {
	Method string   `json:"method"`
	Params []string `json:"params"`
	ID     int      `json:"id"`
}

type rpcResponse struct {
	Result string    `json:"result"`
	Error  *rpcError `json:"error,omitempty"`
	ID     int       `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("ledger error %d: %s", e.Code, e.Message)
}

func (hc *HTTPClient) call(method string, params ...string) (string, error) {
	hc.nextID++
	body, err := json.Marshal(rpcRequest{Method: method, Params: params, ID: hc.nextID})
	if err != nil {
		return "", err
	}
	resp, err := hc.client.Post(hc.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: ledger returned status %d", method, resp.StatusCode)
	}
	var out rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMalformed, method, err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("%s: %w", method, out.Error)
	}
	return out.Result, nil
}

func (hc *HTTPClient) RegisterPlayer() (string, error) {
	id, err := hc.call("register_my_player")
	if err == nil {
		return id, nil
	}
	// Already registered comes back as an error; the identity is still
	// retrievable.
	id, err2 := hc.call("get_my_player")
	if err2 != nil {
		return "", err
	}
	return id, nil
}

func (hc *HTTPClient) Board(s Slot) (Snapshot, error) {
	text, err := hc.call("get_checkers_board", coord(s.X), coord(s.Y))
	if err != nil {
		return Snapshot{}, err
	}
	return ParseSnapshot(text)
}

func (hc *HTTPClient) NewGame(s Slot) error {
	// The second seat is left open for a joiner.
	_, err := hc.call("new_checkers_game", coord(s.X), coord(s.Y), NoPlayer)
	return err
}

func (hc *HTTPClient) Join(s Slot) error {
	_, err := hc.call("join_checkers_game", coord(s.X), coord(s.Y))
	return err
}

func (hc *HTTPClient) Play(s Slot, mv game.Move) error {
	kind := "move"
	if mv.Jump {
		kind = "jump"
	}
	params := []string{coord(s.X), coord(s.Y), mv.From.String(), kind}
	for _, d := range mv.Path {
		params = append(params, d.String())
	}
	_, err := hc.call("play_checkers", params...)
	return err
}

func coord(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
