package bridge

import (
	"sync"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"github.com/rebasefi/CrossChain-RebaseToken/rpc/client"
)

// LoopbackTransport delivers payloads in process to registered adapters.
// Used in test mode where multiple endpoints run in one process.
type LoopbackTransport struct {
	mutex    sync.RWMutex
	adapters map[string]*Adapter
}

// NewLoopbackTransport new loopback transport
func NewLoopbackTransport() *LoopbackTransport {
	return &LoopbackTransport{
		adapters: make(map[string]*Adapter),
	}
}

// Register adds an adapter as the endpoint of its chain.
func (t *LoopbackTransport) Register(a *Adapter) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.adapters[a.ChainID()] = a
}

// Deliver implements Transport
func (t *LoopbackTransport) Deliver(destChainID string, payload []byte) error {
	t.mutex.RLock()
	adapter := t.adapters[destChainID]
	t.mutex.RUnlock()
	if adapter == nil {
		return ErrUnknownPeerChain
	}
	_, err := adapter.ReceiveIn(payload)
	return err
}

// HTTPTransport posts payloads to peer endpoints' deliver API.
type HTTPTransport struct {
	mutex sync.RWMutex
	peers map[string]string // chain id -> api address
}

// NewHTTPTransport new http transport
func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{
		peers: make(map[string]string),
	}
}

// AddPeer adds or updates a peer endpoint.
func (t *HTTPTransport) AddPeer(chainID, apiAddress string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.peers[chainID] = apiAddress
	log.Info("bridge transport add peer", "chainID", chainID, "apiAddress", apiAddress)
}

// PeerAPIAddress returns the api address of a peer chain.
func (t *HTTPTransport) PeerAPIAddress(chainID string) (string, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	addr, exist := t.peers[chainID]
	return addr, exist
}

// Deliver implements Transport
func (t *HTTPTransport) Deliver(destChainID string, payload []byte) error {
	apiAddress, exist := t.PeerAPIAddress(destChainID)
	if !exist {
		return ErrUnknownPeerChain
	}
	var result string
	return client.RPCPost(&result, apiAddress+"/rpc", "rbt.DeliverPayload", common.ToHex(payload))
}
