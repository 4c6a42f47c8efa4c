// Package endpoint wires one chain's ledger, vault and bridge adapter
// from the loaded config.
package endpoint

import (
	"path/filepath"

	"github.com/rebasefi/CrossChain-RebaseToken/bridge"
	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/ledger"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"github.com/rebasefi/CrossChain-RebaseToken/params"
	"github.com/rebasefi/CrossChain-RebaseToken/vault"
)

// principals of the built in operators on the ledger access list
const (
	VaultPrincipal  = "vault"
	BridgePrincipal = "bridge"
)

var (
	localLedger   *ledger.Ledger
	localVault    *vault.Vault
	localAdapter  *bridge.Adapter
	httpTransport *bridge.HTTPTransport
	transport     bridge.Transport
)

// Ledger returns the chain local ledger.
func Ledger() *ledger.Ledger {
	return localLedger
}

// Vault returns the chain local vault, nil if disabled.
func Vault() *vault.Vault {
	return localVault
}

// Adapter returns the chain local bridge adapter.
func Adapter() *bridge.Adapter {
	return localAdapter
}

// Transport returns the configured cross chain transport.
func Transport() bridge.Transport {
	return transport
}

// AddPeer adds a peer endpoint to the http transport.
// No op in test mode where the loopback transport is wired.
func AddPeer(chainID, apiAddress string) {
	if httpTransport == nil {
		log.Warn("ignore add peer, http transport is not wired", "chainID", chainID)
		return
	}
	httpTransport.AddPeer(chainID, apiAddress)
}

// PeerAPIAddress returns the api address of a peer chain.
func PeerAPIAddress(chainID string) (string, bool) {
	if httpTransport == nil {
		return "", false
	}
	return httpTransport.PeerAPIAddress(chainID)
}

// Init builds the chain local components. Call after params.LoadConfig.
func Init() {
	config := params.GetConfig()

	initialRate, err := common.GetBigIntFromStr(config.Ledger.InitialGlobalRate)
	if err != nil {
		log.Fatalf("wrong initial global rate %v: %v", config.Ledger.InitialGlobalRate, err)
	}
	localLedger, err = ledger.New(initialRate)
	if err != nil {
		log.Fatal("create ledger failed", "err", err)
	}

	acl := localLedger.ACL()
	for _, admin := range config.Ledger.RateAdmins {
		acl.Grant(admin, ledger.CapRateSetter)
	}
	for _, operator := range config.Ledger.Operators {
		acl.Grant(operator, ledger.CapMintBurn)
	}
	acl.Grant(VaultPrincipal, ledger.CapMintBurn)
	acl.Grant(BridgePrincipal, ledger.CapMintBurn)

	if params.IsVaultEnabled() {
		localVault = vault.New(VaultPrincipal, localLedger, vault.NewNativeReserve())
	}

	localAdapter = bridge.NewAdapter(BridgePrincipal, config.ChainID, localLedger, newDeliveredIndex())

	if params.IsTestMode() {
		loopback := bridge.NewLoopbackTransport()
		loopback.Register(localAdapter)
		transport = loopback
	} else {
		httpTransport = bridge.NewHTTPTransport()
		for _, peer := range config.Peers {
			httpTransport.AddPeer(peer.ChainID, peer.APIAddress)
		}
		transport = httpTransport
	}

	log.Info("init endpoint success",
		"chainID", config.ChainID,
		"globalRate", initialRate,
		"vaultEnabled", params.IsVaultEnabled(),
		"peers", len(config.Peers),
		"testMode", params.IsTestMode())
}

func newDeliveredIndex() bridge.DeliveredIndex {
	dataDir := params.GetDataDir()
	if dataDir == "" {
		log.Warn("no '--datadir' specified, delivered payload index is in memory only")
		return bridge.NewMemoryIndex()
	}
	path := filepath.Join(dataDir, "deliveredpayloads")
	index, err := bridge.NewLevelDBIndex(path)
	if err != nil {
		log.Fatal("open delivered payload index failed", "path", path, "err", err)
	}
	return index
}
